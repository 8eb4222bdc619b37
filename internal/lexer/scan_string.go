package lexer

import (
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// scanString читает '...' или "..." целиком. Escape-последовательности не
// декодируются: формат нужен только исходный текст. `\` перед переводом строки
// является продолжением строки.
func (lx *Lexer) scanString() *token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			return lx.emit(token.String, start)
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\r' && lx.cursor.PeekAt(1) == '\n' {
				lx.cursor.Bump()
			}
			lx.bumpRune()
		case lx.atLineTerminator():
			return lx.unterminated(start, diag.LexUnterminatedString, "unterminated string literal")
		default:
			lx.bumpRune()
		}
	}
	return lx.unterminated(start, diag.LexUnterminatedString, "unterminated string literal")
}

// scanRegExp читает /body/flags. Внутри класса [...] слэш не завершает литерал.
func (lx *Lexer) scanRegExp() *token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for {
		if lx.cursor.EOF() || lx.atLineTerminator() {
			return lx.unterminated(start, diag.LexUnterminatedRegExp, "unterminated regular expression")
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.atLineTerminator() {
				return lx.unterminated(start, diag.LexUnterminatedRegExp, "unterminated regular expression")
			}
			lx.bumpRune()
			continue
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.RegularExpression, start)
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) unterminated(start Mark, code diag.Code, msg string) *token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(code, tok.Range, msg)
	return tok
}
