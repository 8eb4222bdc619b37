package parser

import (
	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// parseStatement выбирает распознаватель по первому токену.
func (p *Parser) parseStatement() ast.NodeID {
	tok := p.peek()
	if tok == nil {
		p.unexpected(nil)
	}
	switch tok.Kind {
	case token.Punctuator:
		switch tok.Value {
		case "{":
			return p.parseBlock()
		case ";":
			id := p.start(ast.EmptyStatement)
			p.advance()
			return p.finish(id)
		}
	case token.Keyword:
		switch tok.Value {
		case "var", "const":
			return p.parseVarStatement()
		case "function":
			return p.parseFunction(ast.FunctionDeclaration)
		case "if":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "while":
			return p.parseWhile()
		case "do":
			return p.parseDoWhile()
		case "continue", "break":
			return p.parseJump()
		case "return":
			return p.parseReturn()
		case "throw":
			return p.parseThrow()
		case "try":
			return p.parseTry()
		case "switch":
			return p.parseSwitch()
		case "with":
			return p.parseWith()
		case "debugger":
			id := p.start(ast.DebuggerStatement)
			p.advance()
			p.consumeSemicolon()
			return p.finish(id)
		}
	case token.Identifier:
		if next := p.peekAt(1); next != nil {
			if next.Is(":") {
				return p.parseLabeled()
			}
			if tok.Value == "let" && next.Kind == token.Identifier {
				return p.parseVarStatement()
			}
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseBlock() ast.NodeID {
	id := p.start(ast.BlockStatement)
	lbrace := p.expect("{")
	var body []ast.NodeID
	for !p.at("}") {
		body = append(body, p.parseStatement())
	}
	rbrace := p.expect("}")
	n := p.node(id)
	n.Statements = body
	n.Open, n.Close = lbrace, rbrace
	return p.finish(id)
}

func (p *Parser) parseExpressionStatement() ast.NodeID {
	id := p.start(ast.ExpressionStatement)
	expr := p.parseExpression()
	p.consumeSemicolon()
	p.node(id).Expression = expr
	return p.finish(id)
}

func (p *Parser) parseVarStatement() ast.NodeID {
	id := p.parseVarDeclaration()
	p.consumeSemicolon()
	return p.finish(id)
}

// parseVarDeclaration разбирает `var a = 1, b` без завершающей ';'
// (нужно и для заголовка for).
func (p *Parser) parseVarDeclaration() ast.NodeID {
	id := p.start(ast.VariableDeclaration)
	kw := p.advance()
	var decls []ast.NodeID
	var commas []*token.Token
	for {
		decls = append(decls, p.parseDeclarator())
		if !p.at(",") {
			break
		}
		commas = append(commas, p.advance())
	}
	n := p.node(id)
	n.Op, n.DeclKind = kw, kw.Value
	n.Declarations, n.Commas = decls, commas
	return p.finish(id)
}

func (p *Parser) parseDeclarator() ast.NodeID {
	id := p.start(ast.VariableDeclarator)
	name := p.parseIdentifier()
	var eq *token.Token
	var init ast.NodeID
	if p.at("=") {
		eq = p.advance()
		init = p.parseAssignment()
	}
	n := p.node(id)
	n.ID, n.Init, n.Op = name, init, eq
	return p.finish(id)
}

func (p *Parser) parseLabeled() ast.NodeID {
	id := p.start(ast.LabeledStatement)
	label := p.parseIdentifier()
	colon := p.expect(":")
	body := p.parseStatement()
	n := p.node(id)
	n.Label, n.Body, n.Op = label, body, colon
	return p.finish(id)
}

func (p *Parser) parseJump() ast.NodeID {
	kind := ast.BreakStatement
	if p.at("continue") {
		kind = ast.ContinueStatement
	}
	id := p.start(kind)
	kw := p.advance()
	var label ast.NodeID
	if p.atKind(token.Identifier) && !p.newlineBefore() {
		label = p.parseIdentifier()
	}
	if !label.IsValid() {
		if kind == ast.ContinueStatement && !p.inIter {
			p.fail(kw, diag.SynIllegalBreak, "Illegal continue statement")
		}
		if kind == ast.BreakStatement && !p.inIter && !p.inSwitch {
			p.fail(kw, diag.SynIllegalBreak, "Illegal break statement")
		}
	}
	p.consumeSemicolon()
	p.node(id).Label = label
	return p.finish(id)
}

func (p *Parser) parseReturn() ast.NodeID {
	id := p.start(ast.ReturnStatement)
	kw := p.advance()
	if !p.inFunction {
		p.fail(kw, diag.SynIllegalReturn, "Illegal return statement")
	}
	var arg ast.NodeID
	if !p.eof() && !p.at(";") && !p.at("}") && !p.newlineBefore() {
		arg = p.parseExpression()
	}
	p.consumeSemicolon()
	p.node(id).Argument = arg
	return p.finish(id)
}

func (p *Parser) parseThrow() ast.NodeID {
	id := p.start(ast.ThrowStatement)
	p.advance()
	if p.newlineBefore() {
		p.fail(p.peek(), diag.SynUnexpectedToken, "Illegal newline after throw")
	}
	arg := p.parseExpression()
	p.consumeSemicolon()
	p.node(id).Argument = arg
	return p.finish(id)
}
