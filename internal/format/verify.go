package format

import (
	"bytes"
	"context"
	"fmt"

	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/source"
)

// UnstableError reports that formatting changed the program or did not reach
// a fixed point.
type UnstableError struct {
	Path   string
	Reason string
}

func (e *UnstableError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, diag.FmtUnstable.ID(), e.Reason)
}

// Code returns the diagnostic code carried by the error.
func (e *UnstableError) Code() diag.Code { return diag.FmtUnstable }

// CheckStable formats src, then checks that the significant tokens did not
// change and that formatting the output again yields the same bytes. It
// returns the formatted text; the error is *UnstableError when a check fails.
func (f *Formatter) CheckStable(ctx context.Context, path string, src []byte) ([]byte, error) {
	first, err := f.Format(ctx, src)
	if err != nil {
		return nil, err
	}
	if i, ok := sameSignificant(src, first); !ok {
		return first, &UnstableError{Path: path, Reason: fmt.Sprintf("significant token %d differs after formatting", i)}
	}
	second, err := f.Format(ctx, first)
	if err != nil {
		return first, &UnstableError{Path: path, Reason: "formatted output does not parse: " + err.Error()}
	}
	if !bytes.Equal(first, second) {
		return first, &UnstableError{Path: path, Reason: "second run changed the output"}
	}
	return first, nil
}

// sameSignificant compares the non-trivia tokens of a and b by kind and text.
// On mismatch it returns the index of the first differing token.
func sameSignificant(a, b []byte) (int, bool) {
	fs := source.NewFileSet()
	ta := lexer.Tokenize(fs.Get(fs.AddVirtual("a", a)), lexer.Options{}).Significant()
	tb := lexer.Tokenize(fs.Get(fs.AddVirtual("b", b)), lexer.Options{}).Significant()
	n := min(len(ta), len(tb))
	for i := range n {
		if ta[i].Kind != tb[i].Kind || ta[i].Value != tb[i].Value {
			return i, false
		}
	}
	if len(ta) != len(tb) {
		return n, false
	}
	return 0, true
}
