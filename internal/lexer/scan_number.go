package lexer

import (
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// Поддержка: 0x..., legacy octal 017, 123, 1.5, .5, 1., 1e-3, 1.5E+10.
// Неверные формы репортятся, токен по возможности завершаем как Numeric.
func (lx *Lexer) scanNumber() *token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Advance(2)
		if !isHex(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected hexadecimal digit")
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('.') {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit in exponent")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.finishNumber(start)
}

// finishNumber rejects an identifier glued to the literal (`3in`).
func (lx *Lexer) finishNumber(start Mark) *token.Token {
	if b := lx.cursor.Peek(); isIdentStartByte(b) || b == '\\' {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(token.Numeric, start)
}

func (lx *Lexer) badNumber(start Mark, msg string) *token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Range, msg)
	return tok
}
