package lexer

import (
	"esfmt/internal/token"
)

// Жадность: сначала 4-символьные, затем 3, 2 и 1.
var punctuators = [...][]string{
	{">>>="},
	{"===", "!==", ">>>", "<<=", ">>="},
	{"<=", ">=", "==", "!=", "++", "--", "<<", ">>", "&&", "||",
		"+=", "-=", "*=", "%=", "&=", "|=", "^=", "/="},
}

const singlePunct = "{}()[];,<>+-*/%&|^!~?:=."

// scanPunctuator returns nil when the byte is not a punctuator.
func (lx *Lexer) scanPunctuator() *token.Token {
	start := lx.cursor.Mark()
	for _, group := range punctuators {
		for _, p := range group {
			if lx.try(p) {
				return lx.emit(token.Punctuator, start)
			}
		}
	}
	ch := lx.cursor.Peek()
	for i := 0; i < len(singlePunct); i++ {
		if singlePunct[i] == ch {
			lx.cursor.Bump()
			return lx.emit(token.Punctuator, start)
		}
	}
	return nil
}
