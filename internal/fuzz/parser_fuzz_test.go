package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"esfmt/internal/diag"
	"esfmt/internal/format"
	"esfmt/internal/lexer"
	"esfmt/internal/parser"
	"esfmt/internal/source"
	"esfmt/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input.
// Longer runs point at an infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))
		rep := diag.BagReporter{Bag: diag.NewBag(128)}

		done := make(chan struct{})
		var (
			err     error
			checked error
		)
		go func() {
			defer close(done)
			tokens := lexer.Tokenize(file, lexer.Options{Reporter: rep})
			tree, perr := parser.Parse(file, tokens, parser.Options{Reporter: rep})
			err = perr
			if perr == nil {
				checked = testkit.CheckTreeInvariants(tree, file)
			}
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
		if err != nil && !parser.IsSyntaxError(err) {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
		if checked != nil {
			t.Fatalf("tree invariants: %v\ninput: %q", checked, truncateForLog(input, 200))
		}
	})
}

// FuzzFormatStable: anything that parses must keep its significant tokens
// and be a fixed point after one run.
func FuzzFormatStable(f *testing.F) {
	addFormatSeeds(f)
	formatter := format.New(format.DefaultOptions())
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		_, err := formatter.CheckStable(ctx, "fuzz.js", input)
		var unstable *format.UnstableError
		switch {
		case err == nil, parser.IsSyntaxError(err):
		case errors.As(err, &unstable):
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		case errors.Is(err, context.DeadlineExceeded):
			t.Fatalf("formatting took longer than %v\ninput: %q", parseTimeout, truncateForLog(input, 200))
		default:
			t.Fatalf("unexpected error %T: %v", err, err)
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
