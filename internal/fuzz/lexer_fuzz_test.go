package fuzztests

import (
	"testing"

	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/source"
)

// FuzzLexerRoundTrip: the token stream, trivia included, must reproduce the
// normalised input byte for byte.
func FuzzLexerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if got := tokens.String(); got != string(file.Content) {
			t.Fatalf("token stream does not reproduce input\nwant %q\ngot  %q", file.Content, got)
		}
	})
}
