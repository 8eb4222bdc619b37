package parser

import (
	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/token"
)

// parseExpression: AssignmentExpression (',' AssignmentExpression)*
func (p *Parser) parseExpression() ast.NodeID {
	start := p.peek()
	first := p.parseAssignment()
	if !p.at(",") {
		return first
	}
	exprs := []ast.NodeID{first}
	var commas []*token.Token
	for p.at(",") {
		commas = append(commas, p.advance())
		exprs = append(exprs, p.parseAssignment())
	}
	id := p.startAt(ast.SequenceExpression, start)
	n := p.node(id)
	n.Expressions = exprs
	n.Commas = commas
	return p.finish(id)
}

func (p *Parser) parseAssignment() ast.NodeID {
	start := p.peek()
	left := p.parseConditional()
	if !isAssignOp(p.peek()) {
		return left
	}
	p.checkAssignTarget(left, start)
	op := p.advance()
	right := p.parseAssignment()

	id := p.startAt(ast.AssignmentExpression, start)
	n := p.node(id)
	n.Left, n.Right = left, right
	n.Op, n.Operator = op, op.Value
	return p.finish(id)
}

func (p *Parser) checkAssignTarget(target ast.NodeID, at *token.Token) {
	switch p.tree.Kind(target) {
	case ast.Identifier, ast.MemberExpression:
		return
	}
	p.fail(at, diag.SynInvalidAssignTarget, "Invalid left-hand side in assignment")
}

func (p *Parser) parseConditional() ast.NodeID {
	start := p.peek()
	test := p.parseBinary(precNone)
	if !p.at("?") {
		return test
	}
	q := p.advance()
	consequent := with(&p.allowIn, true, p.parseAssignment)
	p.expect(":")
	alternate := p.parseAssignment()

	id := p.startAt(ast.ConditionalExpression, start)
	n := p.node(id)
	n.Test, n.Consequent, n.Alternate = test, consequent, alternate
	n.Op = q
	return p.finish(id)
}

// parseBinary: precedence climbing; все бинарные операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int) ast.NodeID {
	start := p.peek()
	left := p.parseUnary()
	for {
		op := p.peek()
		prec := p.binaryPrec(op)
		if prec == precNone || prec <= minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(prec)

		kind := ast.BinaryExpression
		if op.Value == "&&" || op.Value == "||" {
			kind = ast.LogicalExpression
		}
		id := p.startAt(kind, start)
		n := p.node(id)
		n.Left, n.Right = left, right
		n.Op, n.Operator = op, op.Value
		left = p.finish(id)
	}
}

func (p *Parser) parseUnary() ast.NodeID {
	tok := p.peek()
	switch {
	case isUnaryOp(tok):
		op := p.advance()
		arg := p.parseUnary()
		id := p.startAt(ast.UnaryExpression, op)
		n := p.node(id)
		n.Argument, n.Op, n.Operator, n.Prefix = arg, op, op.Value, true
		return p.finish(id)
	case tok.Is("++") || tok.Is("--"):
		op := p.advance()
		argStart := p.peek()
		arg := p.parseUnary()
		p.checkAssignTarget(arg, argStart)
		id := p.startAt(ast.UpdateExpression, op)
		n := p.node(id)
		n.Argument, n.Op, n.Operator, n.Prefix = arg, op, op.Value, true
		return p.finish(id)
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.NodeID {
	start := p.peek()
	expr := p.parseLeftHandSide(true)
	if (p.at("++") || p.at("--")) && !p.newlineBefore() {
		p.checkAssignTarget(expr, start)
		op := p.advance()
		id := p.startAt(ast.UpdateExpression, start)
		n := p.node(id)
		n.Argument, n.Op, n.Operator = expr, op, op.Value
		return p.finish(id)
	}
	return expr
}

// parseLeftHandSide разбирает member/call цепочки; allowCall=false внутри `new X.y(...)`.
func (p *Parser) parseLeftHandSide(allowCall bool) ast.NodeID {
	start := p.peek()
	var expr ast.NodeID
	if p.at("new") {
		expr = p.parseNew()
	} else {
		expr = p.parsePrimary()
	}
	for {
		switch {
		case p.at("."):
			p.advance()
			if !isIdentifierName(p.peek()) {
				p.unexpected(p.peek())
			}
			prop := p.parseIdentifierName()
			id := p.startAt(ast.MemberExpression, start)
			n := p.node(id)
			n.Object, n.Property = expr, prop
			expr = p.finish(id)
		case p.at("["):
			lbrack := p.advance()
			prop := with(&p.allowIn, true, p.parseExpression)
			rbrack := p.expect("]")
			id := p.startAt(ast.MemberExpression, start)
			n := p.node(id)
			n.Object, n.Property, n.Computed = expr, prop, true
			n.Open, n.Close = lbrack, rbrack
			expr = p.finish(id)
		case allowCall && p.at("("):
			id := p.startAt(ast.CallExpression, start)
			args, lparen, rparen, commas := p.parseArguments()
			n := p.node(id)
			n.Callee, n.Arguments = expr, args
			n.Open, n.Close, n.Commas = lparen, rparen, commas
			expr = p.finish(id)
		default:
			return expr
		}
	}
}

func (p *Parser) parseNew() ast.NodeID {
	id := p.start(ast.NewExpression)
	p.expect("new")
	callee := p.parseLeftHandSide(false)
	n := p.node(id)
	n.Callee = callee
	if p.at("(") {
		args, lparen, rparen, commas := p.parseArguments()
		n = p.node(id)
		n.Arguments, n.Open, n.Close, n.Commas = args, lparen, rparen, commas
	}
	return p.finish(id)
}

func (p *Parser) parseArguments() (args []ast.NodeID, lparen, rparen *token.Token, commas []*token.Token) {
	lparen = p.expect("(")
	for !p.at(")") {
		args = append(args, with(&p.allowIn, true, p.parseAssignment))
		if p.at(")") {
			break
		}
		commas = append(commas, p.expect(","))
	}
	rparen = p.expect(")")
	return args, lparen, rparen, commas
}

func (p *Parser) parsePrimary() ast.NodeID {
	tok := p.peek()
	if tok == nil {
		p.unexpected(nil)
	}
	switch tok.Kind {
	case token.Identifier:
		return p.parseIdentifier()
	case token.Numeric, token.String, token.RegularExpression, token.Boolean, token.Null:
		id := p.start(ast.Literal)
		p.node(id).Raw = p.advance().Value
		return p.finish(id)
	case token.Keyword:
		switch tok.Value {
		case "this":
			id := p.start(ast.ThisExpression)
			p.advance()
			return p.finish(id)
		case "function":
			return p.parseFunction(ast.FunctionExpression)
		}
	case token.Punctuator:
		switch tok.Value {
		case "(":
			p.advance()
			expr := with(&p.allowIn, true, p.parseExpression)
			p.expect(")")
			return expr
		case "[":
			return p.parseArray()
		case "{":
			return p.parseObject()
		}
	}
	p.unexpected(tok)
	return ast.NoNodeID
}

func (p *Parser) parseIdentifier() ast.NodeID {
	if !p.atKind(token.Identifier) {
		p.unexpected(p.peek())
	}
	return p.parseIdentifierName()
}

// parseIdentifierName принимает и зарезервированные слова (после '.', в ключах).
func (p *Parser) parseIdentifierName() ast.NodeID {
	id := p.start(ast.Identifier)
	p.node(id).Name = p.advance().Value
	return p.finish(id)
}
