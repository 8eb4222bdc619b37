package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

func formatCall(c *Context, id ast.NodeID) {
	n := c.Node(id)
	formatArguments(c, n.Arguments, n.Commas)
	isolateStatement(c, id, "CallExpression")
}

// formatNew applies the argument list rules to `new X(...)`.
func formatNew(c *Context, id ast.NodeID) {
	n := c.Node(id)
	formatArguments(c, n.Arguments, n.Commas)
}

// formatArguments: пустой список аргументов ничего не меняет.
func formatArguments(c *Context, args []ast.NodeID, commas []*token.Token) {
	if len(args) == 0 {
		return
	}
	c.SpaceBefore(c.Node(args[0]).Start, "ArgumentList")
	for _, comma := range commas {
		c.SpaceAround(comma, "ArgumentComma")
	}
	c.SpaceAfter(c.Node(args[len(args)-1]).End, "ArgumentList")
}

// isolateStatement puts an expression that forms a whole statement of a block
// or program on its own line; the break after goes past the `;` if present.
func isolateStatement(c *Context, id ast.NodeID, label string) {
	stmt, ok := c.statementOf(id)
	if !ok {
		return
	}
	n := c.Node(id)
	c.LineBreakBefore(n.Start, label)

	end := n.End
	if s := c.Node(stmt); s.End != nil && s.End != end && s.End.Is(";") {
		end = s.End
	}
	c.LineBreakAfter(end, label)
}
