package parser

import "esfmt/internal/token"

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precNone           = 0
	precLogicalOr      = 1  // ||
	precLogicalAnd     = 2  // &&
	precBitwiseOr      = 3  // |
	precBitwiseXor     = 4  // ^
	precBitwiseAnd     = 5  // &
	precEquality       = 6  // == != === !==
	precRelational     = 7  // < > <= >= instanceof in
	precShift          = 8  // << >> >>>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

// binaryPrec возвращает приоритет бинарного оператора или precNone.
// `in` не считается оператором внутри заголовка for(...;...;...).
func (p *Parser) binaryPrec(tok *token.Token) int {
	if tok == nil || (tok.Kind != token.Punctuator && tok.Kind != token.Keyword) {
		return precNone
	}
	switch tok.Value {
	case "||":
		return precLogicalOr
	case "&&":
		return precLogicalAnd
	case "|":
		return precBitwiseOr
	case "^":
		return precBitwiseXor
	case "&":
		return precBitwiseAnd
	case "==", "!=", "===", "!==":
		return precEquality
	case "<", ">", "<=", ">=", "instanceof":
		return precRelational
	case "in":
		if p.allowIn {
			return precRelational
		}
	case "<<", ">>", ">>>":
		return precShift
	case "+", "-":
		return precAdditive
	case "*", "/", "%":
		return precMultiplicative
	}
	return precNone
}

func isAssignOp(tok *token.Token) bool {
	if tok == nil || tok.Kind != token.Punctuator {
		return false
	}
	switch tok.Value {
	case "=", "+=", "-=", "*=", "/=", "%=", "<<=", ">>=", ">>>=", "&=", "|=", "^=":
		return true
	}
	return false
}

func isUnaryOp(tok *token.Token) bool {
	if tok == nil {
		return false
	}
	switch tok.Value {
	case "+", "-", "~", "!":
		return tok.Kind == token.Punctuator
	case "delete", "void", "typeof":
		return tok.Kind == token.Keyword
	}
	return false
}
