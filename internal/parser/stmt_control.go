package parser

import (
	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// parseParenExpr разбирает `( Expression )` и возвращает скобки для форматтера.
func (p *Parser) parseParenExpr() (expr ast.NodeID, lparen, rparen *token.Token) {
	lparen = p.expect("(")
	expr = with(&p.allowIn, true, p.parseExpression)
	rparen = p.expect(")")
	return expr, lparen, rparen
}

func (p *Parser) parseIf() ast.NodeID {
	id := p.start(ast.IfStatement)
	p.expect("if")
	test, lparen, rparen := p.parseParenExpr()
	consequent := p.parseStatement()
	var elseTok *token.Token
	var alternate ast.NodeID
	if p.at("else") {
		elseTok = p.advance()
		alternate = p.parseStatement()
	}
	n := p.node(id)
	n.Test, n.Consequent, n.Alternate = test, consequent, alternate
	n.Open, n.Close, n.Op = lparen, rparen, elseTok
	return p.finish(id)
}

func (p *Parser) parseLoopBody() ast.NodeID {
	return with(&p.inIter, true, p.parseStatement)
}

func (p *Parser) parseWhile() ast.NodeID {
	id := p.start(ast.WhileStatement)
	p.expect("while")
	test, lparen, rparen := p.parseParenExpr()
	body := p.parseLoopBody()
	n := p.node(id)
	n.Test, n.Body = test, body
	n.Open, n.Close = lparen, rparen
	return p.finish(id)
}

func (p *Parser) parseDoWhile() ast.NodeID {
	id := p.start(ast.DoWhileStatement)
	p.expect("do")
	body := p.parseLoopBody()
	whileTok := p.expect("while")
	test, lparen, rparen := p.parseParenExpr()
	// после do-while ';' необязательна даже без перевода строки
	p.eat(";")
	n := p.node(id)
	n.Body, n.Test, n.Op = body, test, whileTok
	n.Open, n.Close = lparen, rparen
	return p.finish(id)
}

// parseFor разбирает for(;;) и for-in; решение принимается после init.
func (p *Parser) parseFor() ast.NodeID {
	forTok := p.expect("for")
	lparen := p.expect("(")

	var init ast.NodeID
	if !p.at(";") {
		initStart := p.peek()
		init = with(&p.allowIn, false, func() ast.NodeID {
			if p.at("var") || p.at("const") || (p.atKind(token.Identifier) && p.peek().Value == "let" && p.peekAt(1) != nil && p.peekAt(1).Kind == token.Identifier) {
				return p.parseVarDeclaration()
			}
			return p.parseExpression()
		})
		if p.at("in") {
			if k := p.tree.Kind(init); k == ast.VariableDeclaration {
				if len(p.node(init).Declarations) != 1 {
					p.fail(initStart, diag.SynInvalidAssignTarget, "Invalid left-hand side in for-in")
				}
			} else {
				p.checkAssignTarget(init, initStart)
			}
			inTok := p.advance()
			right := with(&p.allowIn, true, p.parseExpression)
			rparen := p.expect(")")
			body := p.parseLoopBody()
			id := p.startAt(ast.ForInStatement, forTok)
			n := p.node(id)
			n.Left, n.Right, n.Body, n.Op = init, right, body, inTok
			n.Open, n.Close = lparen, rparen
			return p.finish(id)
		}
	}
	p.expect(";")
	var test, update ast.NodeID
	if !p.at(";") {
		test = with(&p.allowIn, true, p.parseExpression)
	}
	p.expect(";")
	if !p.at(")") {
		update = with(&p.allowIn, true, p.parseExpression)
	}
	rparen := p.expect(")")
	body := p.parseLoopBody()

	id := p.startAt(ast.ForStatement, forTok)
	n := p.node(id)
	n.Init, n.Test, n.Update, n.Body = init, test, update, body
	n.Open, n.Close = lparen, rparen
	return p.finish(id)
}

func (p *Parser) parseWith() ast.NodeID {
	id := p.start(ast.WithStatement)
	p.expect("with")
	object, lparen, rparen := p.parseParenExpr()
	body := p.parseStatement()
	n := p.node(id)
	n.Object, n.Body = object, body
	n.Open, n.Close = lparen, rparen
	return p.finish(id)
}

func (p *Parser) parseTry() ast.NodeID {
	id := p.start(ast.TryStatement)
	tryTok := p.expect("try")
	block := p.parseBlock()
	var handler, finalizer ast.NodeID
	if p.at("catch") {
		handler = p.parseCatch()
	}
	if p.eat("finally") != nil {
		finalizer = p.parseBlock()
	}
	if !handler.IsValid() && !finalizer.IsValid() {
		if p.eof() {
			p.unexpected(nil)
		}
		p.fail(p.peek(), diag.SynUnexpectedToken, "Missing catch or finally after try")
	}
	n := p.node(id)
	n.Block, n.Handler, n.Finalizer, n.Op = block, handler, finalizer, tryTok
	return p.finish(id)
}

func (p *Parser) parseCatch() ast.NodeID {
	id := p.start(ast.CatchClause)
	p.expect("catch")
	lparen := p.expect("(")
	param := p.parseIdentifier()
	rparen := p.expect(")")
	body := p.parseBlock()
	n := p.node(id)
	n.Param, n.Body = param, body
	n.Open, n.Close = lparen, rparen
	return p.finish(id)
}

func (p *Parser) parseSwitch() ast.NodeID {
	id := p.start(ast.SwitchStatement)
	p.expect("switch")
	disc, lparen, rparen := p.parseParenExpr()
	lbrace := p.expect("{")
	var cases []ast.NodeID
	sawDefault := false
	for !p.at("}") {
		if p.at("default") {
			if sawDefault {
				p.fail(p.peek(), diag.SynUnexpectedToken, "More than one default clause in switch statement")
			}
			sawDefault = true
		}
		cases = append(cases, with(&p.inSwitch, true, p.parseSwitchCase))
	}
	p.expect("}")
	n := p.node(id)
	n.Discriminant, n.Cases = disc, cases
	n.Open, n.Close, n.Op = lparen, rparen, lbrace
	return p.finish(id)
}

func (p *Parser) parseSwitchCase() ast.NodeID {
	id := p.start(ast.SwitchCase)
	var test ast.NodeID
	if p.eat("default") == nil {
		p.expect("case")
		test = with(&p.allowIn, true, p.parseExpression)
	}
	colon := p.expect(":")
	var body []ast.NodeID
	for !p.eof() && !p.at("case") && !p.at("default") && !p.at("}") {
		body = append(body, p.parseStatement())
	}
	n := p.node(id)
	n.Test, n.Statements, n.Op = test, body, colon
	return p.finish(id)
}
