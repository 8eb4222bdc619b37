package lexer

import (
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// scanIdentOrKeyword сканирует IdentifierName и проверяет его через LookupKeyword.
// Escapes вида \uXXXX допускаются; зарезервированное слово с escape остаётся идентификатором.
// Возвращает nil, если в позиции нет начала идентификатора.
func (lx *Lexer) scanIdentOrKeyword() *token.Token {
	start := lx.cursor.Mark()
	escaped := false
	first := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			if !lx.scanUnicodeEscape() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnknownChar, sp, "invalid unicode escape in identifier")
				return lx.emit(token.Invalid, start)
			}
			escaped = true
		case b < utf8RuneSelf:
			if (first && !isIdentStartByte(b)) || (!first && !isIdentContinueByte(b)) {
				return lx.finishIdent(start, escaped)
			}
			lx.cursor.Bump()
		default:
			r, _ := lx.peekRune()
			if (first && !isIdentStartRune(r)) || (!first && !isIdentContinueRune(r)) {
				return lx.finishIdent(start, escaped)
			}
			lx.bumpRune()
		}
		first = false
	}
	return lx.finishIdent(start, escaped)
}

func (lx *Lexer) finishIdent(start Mark, escaped bool) *token.Token {
	if lx.cursor.Mark() == start {
		return nil
	}
	tok := lx.emit(token.Identifier, start)
	if escaped {
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Value); ok {
		tok.Kind = k
	}
	return tok
}

// scanUnicodeEscape consumes `\uXXXX`.
func (lx *Lexer) scanUnicodeEscape() bool {
	if lx.cursor.PeekAt(1) != 'u' {
		return false
	}
	for i := uint32(2); i < 6; i++ {
		if !isHex(lx.cursor.PeekAt(i)) {
			return false
		}
	}
	lx.cursor.Advance(6)
	return true
}
