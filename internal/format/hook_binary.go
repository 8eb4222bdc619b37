package format

import "esfmt/internal/ast"

// formatBinary: one space (or none, per policy) on each side of the operator.
// Shared by binary and logical expressions.
func formatBinary(c *Context, id ast.NodeID) {
	c.SpaceAround(c.Node(id).Op, "BinaryExpressionOperator")
}
