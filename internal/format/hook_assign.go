package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

// formatAssignment keeps the operator on the line of its operands, spaces it
// per policy and isolates statement-level assignments.
func formatAssignment(c *Context, id ast.NodeID) {
	op := c.Node(id).Op
	c.RemoveRunBefore(op, token.LineBreak)
	c.RemoveRunAfter(op, token.LineBreak)

	c.SpaceAround(op, "AssignmentOperator")

	isolateStatement(c, id, "AssignmentExpression")
}
