package lexer

import (
	"unicode"

	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// scanWhiteSpace коалесцирует пробелы, табы и прочие Zs-пробелы в один токен.
func (lx *Lexer) scanWhiteSpace() *token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			lx.cursor.Bump()
			continue
		case b >= utf8RuneSelf && lx.atUnicodeSpace():
			lx.bumpRune()
			continue
		}
		break
	}
	return lx.emit(token.WhiteSpace, start)
}

// scanLineBreak читает ровно один перевод строки: \n, \r\n, \r, U+2028 или U+2029.
func (lx *Lexer) scanLineBreak() *token.Token {
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case '\r':
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
	case '\n':
		lx.cursor.Bump()
	default:
		lx.bumpRune()
	}
	return lx.emit(token.LineBreak, start)
}

// scanComment handles `//` up to (not including) the line terminator and
// `/* ... */`. Block comments do not nest.
func (lx *Lexer) scanComment() *token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	if lx.cursor.Bump() == '/' {
		for !lx.cursor.EOF() && !lx.atLineTerminator() {
			lx.bumpRune()
		}
		return lx.emit(token.LineComment, start)
	}
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return lx.emit(token.BlockComment, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.BlockComment, start)
	lx.errLex(diag.LexUnterminatedBlockComment, tok.Range, "unterminated block comment")
	return tok
}

func (lx *Lexer) atLineTerminator() bool {
	switch lx.cursor.Peek() {
	case '\n', '\r':
		return true
	}
	return lx.atUnicodeLineBreak()
}

func (lx *Lexer) atUnicodeLineBreak() bool {
	r, _ := lx.peekRune()
	return r == '\u2028' || r == '\u2029'
}

func (lx *Lexer) atUnicodeSpace() bool {
	r, _ := lx.peekRune()
	return r == '\uFEFF' || (r != '\u2028' && r != '\u2029' && unicode.Is(unicode.Zs, r))
}
