package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

// formatVariableDeclaration: the first declarator stays on the keyword line,
// the following ones go on their own lines one level deeper. Inside a for
// header everything stays inline.
func formatVariableDeclaration(c *Context, id ast.NodeID) {
	n := c.Node(id)
	level, ok := c.IndentLevel(id)
	if !ok {
		level = c.rawLevel(id)
	}
	inline := c.inForHead(id)

	for i, did := range n.Declarations {
		decl := c.Node(did)
		name := c.Node(decl.ID)

		switch {
		case i == 0:
			c.RemoveRunBefore(name.Start, token.LineBreak)
		case !inline:
			c.LineBreakBefore(name.Start, "VariableName")
			c.SetIndent(name.Start, level+1)
		}

		if !decl.Init.IsValid() {
			continue
		}
		init := c.Node(decl.Init)
		if decl.Op != nil {
			c.RemoveRunBefore(decl.Op, token.LineBreak)
			c.RemoveRunAfter(decl.Op, token.LineBreak)
		}
		c.SpaceAfter(name.End, "VariableName")
		c.LineBreakBefore(init.Start, "VariableValue")
		c.SpaceBefore(init.Start, "VariableValue")
	}

	c.SpaceAfter(n.Op, "VarToken")
}
