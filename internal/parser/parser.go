package parser

import (
	"errors"
	"fmt"

	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/source"
	"esfmt/internal/token"
)

type Options struct {
	Reporter diag.Reporter // может быть nil
}

// SyntaxError is returned when the token stream is not a valid ES5 program.
// Parsing stops at the first error; there is no recovery.
type SyntaxError struct {
	Code diag.Code
	Span source.Span
	Pos  source.LineCol
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Pos.Line, e.Msg)
}

// IsSyntaxError reports whether err wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// bailout переносит SyntaxError через panic до Parse.
type bailout struct{ err *SyntaxError }

// Parser: состояние парсера на один файл
type Parser struct {
	file *source.File
	tree *ast.Tree
	opts Options

	toks []*token.Token // только значимые токены
	nl   []bool         // был ли перевод строки перед toks[i]
	pos  int
	last *token.Token // последний съеденный токен

	allowIn    bool
	inFunction bool
	inIter     bool
	inSwitch   bool
}

// Parse builds the syntax tree over tokens. The tree keeps pointers into the
// list, so later mutation of trivia by the formatter leaves it valid.
func Parse(file *source.File, tokens *token.List, opts Options) (tree *ast.Tree, err error) {
	p := &Parser{
		file:    file,
		tree:    ast.NewTree(tokens, uint(tokens.Len()/2+1)),
		opts:    opts,
		allowIn: true,
	}
	p.index(tokens)

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tree, err = nil, b.err
		}
	}()

	p.tree.Root = p.parseProgram(tokens)
	p.tree.LinkParents()
	return p.tree, nil
}

// index раскладывает поток на значимые токены и запоминает переводы строк между ними.
func (p *Parser) index(tokens *token.List) {
	p.toks = make([]*token.Token, 0, tokens.Len())
	p.nl = make([]bool, 0, tokens.Len())
	sawBreak := false
	for tok := tokens.First; tok != nil; tok = tok.Next {
		switch {
		case tok.Kind == token.LineBreak:
			sawBreak = true
		case tok.Kind == token.BlockComment && tok.Loc.Start.Line != tok.Loc.End.Line:
			sawBreak = true
		case tok.Kind.IsTrivia():
		default:
			p.toks = append(p.toks, tok)
			p.nl = append(p.nl, sawBreak)
			sawBreak = false
		}
	}
}

func (p *Parser) parseProgram(tokens *token.List) ast.NodeID {
	id := p.tree.New(ast.Program, tokens.First)
	var body []ast.NodeID
	for !p.eof() {
		body = append(body, p.parseStatement())
	}
	n := p.node(id)
	n.Statements = body
	n.End = tokens.Last
	return id
}
