package parser

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

func (p *Parser) parseArray() ast.NodeID {
	id := p.start(ast.ArrayExpression)
	lbrack := p.expect("[")
	var elems []ast.NodeID
	var commas []*token.Token
	for !p.at("]") {
		if p.at(",") {
			elems = append(elems, ast.NoNodeID) // дырка
			commas = append(commas, p.advance())
			continue
		}
		elems = append(elems, with(&p.allowIn, true, p.parseAssignment))
		if !p.at("]") {
			commas = append(commas, p.expect(","))
		}
	}
	rbrack := p.expect("]")
	n := p.node(id)
	n.Elements, n.Commas = elems, commas
	n.Open, n.Close = lbrack, rbrack
	return p.finish(id)
}

func (p *Parser) parseObject() ast.NodeID {
	id := p.start(ast.ObjectExpression)
	lbrace := p.expect("{")
	var props []ast.NodeID
	var commas []*token.Token
	for !p.at("}") {
		props = append(props, p.parseProperty())
		if !p.at("}") {
			commas = append(commas, p.expect(","))
		}
	}
	rbrace := p.expect("}")
	n := p.node(id)
	n.Properties, n.Commas = props, commas
	n.Open, n.Close = lbrace, rbrace
	return p.finish(id)
}

// parseProperty: key ':' value | get key() {...} | set key(v) {...}
func (p *Parser) parseProperty() ast.NodeID {
	id := p.start(ast.Property)
	tok := p.peek()
	if tok != nil && tok.Kind == token.Identifier && (tok.Value == "get" || tok.Value == "set") {
		if next := p.peekAt(1); next != nil && !next.Is(":") && !next.Is(",") && !next.Is("}") {
			p.advance()
			key := p.parsePropertyKey()
			value := p.parseFunctionRest(ast.FunctionExpression, p.peek(), ast.NoNodeID)
			n := p.node(id)
			n.Key, n.Value, n.DeclKind = key, value, tok.Value
			return p.finish(id)
		}
	}
	key := p.parsePropertyKey()
	colon := p.expect(":")
	value := with(&p.allowIn, true, p.parseAssignment)
	n := p.node(id)
	n.Key, n.Value, n.Op, n.DeclKind = key, value, colon, "init"
	return p.finish(id)
}

func (p *Parser) parsePropertyKey() ast.NodeID {
	tok := p.peek()
	switch {
	case tok == nil:
		p.unexpected(nil)
	case tok.Kind == token.String || tok.Kind == token.Numeric:
		id := p.start(ast.Literal)
		p.node(id).Raw = p.advance().Value
		return p.finish(id)
	case isIdentifierName(tok):
		return p.parseIdentifierName()
	}
	p.unexpected(tok)
	return ast.NoNodeID
}

// parseFunction разбирает `function name?(params) { body }`.
func (p *Parser) parseFunction(kind ast.Kind) ast.NodeID {
	kw := p.expect("function")
	var name ast.NodeID
	if p.atKind(token.Identifier) {
		name = p.parseIdentifier()
	} else if kind == ast.FunctionDeclaration {
		p.unexpected(p.peek())
	}
	return p.parseFunctionRest(kind, kw, name)
}

// parseFunctionRest разбирает список параметров и тело; start: первый токен узла.
func (p *Parser) parseFunctionRest(kind ast.Kind, start *token.Token, name ast.NodeID) ast.NodeID {
	id := p.startAt(kind, start)
	lparen := p.expect("(")
	var params []ast.NodeID
	var commas []*token.Token
	for !p.at(")") {
		params = append(params, p.parseIdentifier())
		if !p.at(")") {
			commas = append(commas, p.expect(","))
		}
	}
	rparen := p.expect(")")

	body := p.parseFunctionBody()

	n := p.node(id)
	n.ID, n.Params, n.Body = name, params, body
	n.Open, n.Close, n.Commas = lparen, rparen, commas
	return p.finish(id)
}

// parseFunctionBody сбрасывает контекст внешнего кода на время тела функции.
func (p *Parser) parseFunctionBody() ast.NodeID {
	inFunction, inIter, inSwitch, allowIn := p.inFunction, p.inIter, p.inSwitch, p.allowIn
	p.inFunction, p.inIter, p.inSwitch, p.allowIn = true, false, false, true
	body := p.parseBlock()
	p.inFunction, p.inIter, p.inSwitch, p.allowIn = inFunction, inIter, inSwitch, allowIn
	return body
}
