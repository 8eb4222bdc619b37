package parser

import (
	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/source"
	"esfmt/internal/token"
)

func (p *Parser) node(id ast.NodeID) *ast.Node {
	return p.tree.Get(id)
}

// start открывает узел на текущем токене.
func (p *Parser) start(k ast.Kind) ast.NodeID {
	return p.tree.New(k, p.peek())
}

// startAt открывает узел на заданном токене (для узлов, начатых раньше).
func (p *Parser) startAt(k ast.Kind, tok *token.Token) ast.NodeID {
	return p.tree.New(k, tok)
}

// finish закрывает узел последним съеденным токеном.
func (p *Parser) finish(id ast.NodeID) ast.NodeID {
	p.node(id).End = p.last
	return id
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *Parser) peek() *token.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) *token.Token {
	if p.pos+n >= len(p.toks) {
		return nil
	}
	return p.toks[p.pos+n]
}

// newlineBefore reports whether a line terminator separates the current token from the previous one.
func (p *Parser) newlineBefore() bool {
	return p.pos < len(p.nl) && p.nl[p.pos]
}

func (p *Parser) at(value string) bool {
	return p.peek().Is(value)
}

func (p *Parser) atKind(k token.Kind) bool {
	tok := p.peek()
	return tok != nil && tok.Kind == k
}

// advance: съедает текущий токен
func (p *Parser) advance() *token.Token {
	tok := p.peek()
	if tok == nil {
		p.unexpected(nil)
	}
	if tok.Kind == token.Invalid {
		p.unexpected(tok)
	}
	p.pos++
	p.last = tok
	return tok
}

// eat съедает токен, если он совпадает.
func (p *Parser) eat(value string) *token.Token {
	if p.at(value) {
		return p.advance()
	}
	return nil
}

// expect: ожидаем конкретный punctuator/keyword, иначе SyntaxError.
func (p *Parser) expect(value string) *token.Token {
	if !p.at(value) {
		p.unexpected(p.peek())
	}
	return p.advance()
}

// consumeSemicolon implements automatic semicolon insertion.
func (p *Parser) consumeSemicolon() {
	if p.eat(";") != nil {
		return
	}
	if p.eof() || p.at("}") || p.newlineBefore() {
		return
	}
	p.unexpected(p.peek())
}

func (p *Parser) unexpected(tok *token.Token) {
	if tok == nil {
		p.fail(nil, diag.SynUnexpectedEOF, "Unexpected end of input")
	}
	msg := "Unexpected token " + tok.Value
	switch tok.Kind {
	case token.Invalid:
		msg = "Unexpected token ILLEGAL"
	case token.Identifier:
		msg = "Unexpected identifier"
	case token.Numeric:
		msg = "Unexpected number"
	case token.String:
		msg = "Unexpected string"
	}
	p.fail(tok, diag.SynUnexpectedToken, msg)
}

// fail репортит ошибку и прерывает разбор.
func (p *Parser) fail(tok *token.Token, code diag.Code, msg string) {
	var sp source.Span
	var pos source.LineCol
	switch {
	case tok != nil:
		sp, pos = tok.Range, tok.Loc.Start
	case len(p.toks) > 0:
		lastTok := p.toks[len(p.toks)-1]
		sp = source.Span{File: lastTok.Range.File, Start: lastTok.Range.End, End: lastTok.Range.End}
		pos = lastTok.Loc.End
	default:
		sp, pos = source.Span{File: p.file.ID}, source.LineCol{Line: 1, Col: 1}
	}
	diag.ReportError(p.opts.Reporter, code, sp, msg)
	panic(bailout{err: &SyntaxError{Code: code, Span: sp, Pos: pos, Msg: msg}})
}

// isIdentifierName: после `.` и в ключах объекта допустимы и зарезервированные слова.
func isIdentifierName(tok *token.Token) bool {
	if tok == nil {
		return false
	}
	switch tok.Kind {
	case token.Identifier, token.Keyword, token.Boolean, token.Null:
		return true
	}
	return false
}

// with временно переключает флаг контекста на время fn.
func with[T any](flag *bool, value bool, fn func() T) T {
	saved := *flag
	*flag = value
	defer func() { *flag = saved }()
	return fn()
}
