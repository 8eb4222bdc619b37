package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
	"esfmt/internal/trace"
)

// walk visits every node once, children first.
func (c *Context) walk() {
	c.tree.PostOrder(c.tree.Root, c.transform)
}

// transform: indent annotation, automatic break before, comments, hook,
// automatic break after.
func (c *Context) transform(id ast.NodeID) {
	n := c.tree.Get(id)
	if n == nil || n.Start == nil {
		return
	}
	label := n.Kind.String()

	if level, ok := c.IndentLevel(id); ok {
		c.SetIndent(n.Start, level)
	}

	auto := c.automaticLineBreaks(id)
	if auto {
		c.LineBreakBefore(n.Start, label)
	}

	c.processComments(id)

	if n.Kind == ast.BlockStatement {
		c.formatBlock(id)
	}

	if hook := c.hooks[n.Kind]; hook != nil {
		trace.Point(c.tracer, trace.ScopeNode, "hook", c.span, label)
		hook(c, id)
	}

	if auto {
		c.LineBreakAfter(n.End, label)
	}
}

// automaticLineBreaks: the generic before/after check keyed by the node type.
// Call and assignment break only from their hooks; an else-if and a for header
// declaration are not statements of their own.
func (c *Context) automaticLineBreaks(id ast.NodeID) bool {
	k := c.tree.Kind(id)
	if bypassAutomaticLineBreak(k) {
		return false
	}
	return !c.isElseIf(id) && !c.inForHead(id)
}

// processComments handles every comment inside the node that no descendant
// claimed: space before it per policy, and, when it starts a line, the
// indentation a direct child of the node would get.
func (c *Context) processComments(id ast.NodeID) {
	n := c.tree.Get(id)
	for tok := n.Start; tok != nil; tok = tok.Next {
		if tok.Kind.IsComment() {
			if _, done := c.processed[tok]; !done {
				c.SpaceBefore(tok, tok.Kind.String())
				if tok.Prev != nil && tok.Prev.Kind == token.LineBreak {
					c.SetIndent(tok, c.commentLevel(id))
				}
				c.processed[tok] = struct{}{}
			}
		}
		if tok == n.End {
			break
		}
	}
}

func (c *Context) commentLevel(owner ast.NodeID) int {
	k := c.tree.Kind(owner)
	level := c.rawLevel(owner)
	if k != ast.Program && k != ast.ExpressionStatement && c.triggers(k) {
		level++
	}
	return level
}

// formatBlock aligns a block's closing brace with the construct owning the
// block; hooks of if/function run later and may refine it.
func (c *Context) formatBlock(id ast.NodeID) {
	n := c.tree.Get(id)
	if n.Open == nil || n.Close == nil {
		return
	}
	if statementList(c.parentKind(id)) {
		c.SetIndent(n.Open, c.rawLevel(id))
	}
	c.LineBreakAround(n.Close, "BlockStatementClosingBrace")
	c.SetIndent(n.Close, c.ClosingIndentLevel(id))
}
