package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"esfmt/internal/token"
)

type TokenOutput struct {
	Kind      string    `json:"type"`
	Value     string    `json:"value"`
	Range     [2]uint32 `json:"range"`
	StartLine uint32    `json:"start_line"`
	StartCol  uint32    `json:"start_col"`
	EndLine   uint32    `json:"end_line"`
	EndCol    uint32    `json:"end_col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате, trivia включительно.
func FormatTokensPretty(w io.Writer, tokens *token.List) error {
	i := 0
	for tok := tokens.First; tok != nil; tok = tok.Next {
		i++
		if _, err := fmt.Fprintf(w, "%3d: %-17s %q at %d:%d-%d:%d\n",
			i, tok.Kind.String(), tok.Value,
			tok.Loc.Start.Line, tok.Loc.Start.Col,
			tok.Loc.End.Line, tok.Loc.End.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens *token.List) error {
	output := make([]TokenOutput, 0, tokens.Len())
	for tok := tokens.First; tok != nil; tok = tok.Next {
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Value:     tok.Value,
			Range:     [2]uint32{tok.Range.Start, tok.Range.End},
			StartLine: tok.Loc.Start.Line,
			StartCol:  tok.Loc.Start.Col,
			EndLine:   tok.Loc.End.Line,
			EndCol:    tok.Loc.End.Col,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
