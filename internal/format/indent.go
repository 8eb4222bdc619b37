package format

import (
	"strings"

	"esfmt/internal/ast"
	"esfmt/internal/token"
)

// triggers reports whether children of kind k gain one indent level.
func (c *Context) triggers(k ast.Kind) bool {
	return c.opts.Indent.Nodes[k.String()]
}

// isElseIf: IfStatement, стоящий в else другого IfStatement.
func (c *Context) isElseIf(id ast.NodeID) bool {
	if c.tree.Kind(id) != ast.IfStatement {
		return false
	}
	p := c.tree.Get(c.tree.Parent(id))
	return p != nil && p.Kind == ast.IfStatement && p.Alternate == id
}

// chainHead returns the first IfStatement of an if / else if chain.
func (c *Context) chainHead(id ast.NodeID) ast.NodeID {
	for c.isElseIf(id) {
		id = c.tree.Parent(id)
	}
	return id
}

// rawLevel counts the indent-triggering parents on the way to the root. The
// root counts itself. The edge from an else-if to its parent if adds nothing,
// so a chain keeps one level. Results are memoised per node.
func (c *Context) rawLevel(id ast.NodeID) int {
	if !id.IsValid() {
		return 0
	}
	if v := c.raw[id]; v >= 0 {
		return int(v)
	}
	// поднимаемся до посчитанного предка, потом считаем сверху вниз
	chain := []ast.NodeID{id}
	for p := c.tree.Parent(id); p.IsValid() && c.raw[p] < 0; p = c.tree.Parent(p) {
		chain = append(chain, p)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		parent := c.tree.Parent(n)
		var level int32
		switch {
		case !parent.IsValid():
			if c.triggers(c.tree.Kind(n)) {
				level = 1
			}
		default:
			level = c.raw[parent]
			if c.triggers(c.tree.Kind(parent)) && !c.isElseIf(n) {
				level++
			}
		}
		c.raw[n] = level
	}
	return int(c.raw[id])
}

// IndentLevel returns the level for the start token of id. ok is false when
// the node's placement is left to its parent or its children.
func (c *Context) IndentLevel(id ast.NodeID) (level int, ok bool) {
	k := c.tree.Kind(id)
	if bypassIndent(k) || bypassChildIndent(c.parentKind(id)) {
		return 0, false
	}
	return c.rawLevel(id), true
}

// ClosingIndentLevel returns the level for the closing delimiter of id: its
// own level when it has one, otherwise the level of the containing node.
func (c *Context) ClosingIndentLevel(id ast.NodeID) int {
	if level, ok := c.IndentLevel(id); ok {
		return level
	}
	if p := c.tree.Parent(id); p.IsValid() {
		return c.rawLevel(p)
	}
	return c.rawLevel(id)
}

// SetIndent requests level units of indentation before tok. The request is
// applied after the walk and only if tok starts a line; a later request for
// the same token replaces an earlier one.
func (c *Context) SetIndent(tok *token.Token, level int) {
	if tok == nil {
		return
	}
	c.indents[tok] = max(level, 0)
}

// Indent renders level units.
func (c *Context) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(c.opts.Indent.Value, level)
}

// materialise writes the requested indentation in front of every token that
// starts a line. Each line gets at most one indent token.
func (c *Context) materialise() int {
	written := 0
	lineStart := true
	for tok := c.tokens.First; tok != nil; {
		next := tok.Next
		switch {
		case tok.Kind == token.LineBreak:
			lineStart = true
		case lineStart && tok.Kind == token.WhiteSpace:
			// остаток старого отступа или пробел, оказавшийся в начале строки
			if next != nil && next.Kind != token.LineBreak {
				c.tokens.Remove(tok)
			}
		case lineStart:
			if level, ok := c.indents[tok]; ok && level > 0 {
				c.InsertSpaceBefore(tok, c.Indent(level))
				written++
			}
			lineStart = false
		}
		tok = next
	}
	return written
}
