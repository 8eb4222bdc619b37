package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/source"
	"esfmt/internal/token"
	"esfmt/internal/trace"
)

// Context is the private state of one formatting run. Hooks receive it and
// must not retain it after they return.
type Context struct {
	opts   *Options
	file   *source.File
	tree   *ast.Tree
	tokens *token.List
	hooks  map[ast.Kind]Hook

	tracer trace.Tracer
	span   uint64

	raw       []int32                  // memo уровней, -1 = ещё не считали
	indents   map[*token.Token]int     // запрошенные отступы, применяются после обхода
	processed map[*token.Token]struct{} // комментарии, которые уже обработаны
}

func newContext(opts *Options, file *source.File, tokens *token.List, hooks map[ast.Kind]Hook) *Context {
	return &Context{
		opts:      opts,
		file:      file,
		tokens:    tokens,
		hooks:     hooks,
		tracer:    trace.Nop,
		indents:   make(map[*token.Token]int),
		processed: make(map[*token.Token]struct{}),
	}
}

// attach binds the parsed tree; it must happen before the walk.
func (c *Context) attach(tree *ast.Tree) {
	c.tree = tree
	c.raw = make([]int32, tree.Len()+1)
	for i := range c.raw {
		c.raw[i] = -1
	}
}

// Tree returns the syntax tree being formatted.
func (c *Context) Tree() *ast.Tree { return c.tree }

// Node is a shortcut for Tree().Get(id).
func (c *Context) Node(id ast.NodeID) *ast.Node { return c.tree.Get(id) }

// Tokens returns the token stream being mutated.
func (c *Context) Tokens() *token.List { return c.tokens }

// Options returns the configuration of the run. It must be treated as read-only.
func (c *Context) Options() *Options { return c.opts }

// File returns the source file of the run.
func (c *Context) File() *source.File { return c.file }

func (c *Context) parentKind(id ast.NodeID) ast.Kind {
	return c.tree.Kind(c.tree.Parent(id))
}

func (c *Context) isBlock(id ast.NodeID) bool {
	return c.tree.Kind(id) == ast.BlockStatement
}

// statementOf returns the ExpressionStatement whose expression is id, when that
// statement sits directly in a Program or BlockStatement.
func (c *Context) statementOf(id ast.NodeID) (ast.NodeID, bool) {
	stmt := c.tree.Parent(id)
	if c.tree.Kind(stmt) != ast.ExpressionStatement {
		return ast.NoNodeID, false
	}
	if !statementList(c.parentKind(stmt)) {
		return ast.NoNodeID, false
	}
	return stmt, true
}

// inForHead reports whether id is the init/left part of a for or for-in header.
func (c *Context) inForHead(id ast.NodeID) bool {
	p := c.tree.Get(c.tree.Parent(id))
	if p == nil {
		return false
	}
	switch p.Kind {
	case ast.ForStatement:
		return p.Init == id
	case ast.ForInStatement:
		return p.Left == id
	}
	return false
}
