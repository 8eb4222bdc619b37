package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

// formatObject puts every property on its own line in `key : value` form and
// aligns the closing brace with the construct containing the literal.
func formatObject(c *Context, id ast.NodeID) {
	n := c.Node(id)
	if len(n.Properties) == 0 {
		return
	}

	c.LineBreakAround(n.Open, "ObjectExpressionOpeningBrace")

	for _, pid := range n.Properties {
		prop := c.Node(pid)
		c.LineBreakBefore(prop.Start, "Property")

		if prop.Op != nil {
			c.RemoveRunBefore(prop.Op, token.LineBreak)
			c.RemoveRunAfter(prop.Op, token.LineBreak)
			c.SpaceAfter(c.Node(prop.Key).End, "PropertyName")
			c.SpaceBefore(c.Node(prop.Value).Start, "PropertyValue")
		}

		// comma-first: переводы строк между значением и ',' убираем.
		// Перевод строки перед '}' остаётся.
		if sep := prop.End.NextSignificant(); sep.Is(",") {
			for tok := prop.End.Next; tok != nil && tok != sep; {
				next := tok.Next
				if tok.Kind == token.LineBreak && !c.unlink(tok) {
					break
				}
				tok = next
			}
		}

		c.LineBreakAfter(prop.End, "Property")
	}

	c.LineBreakAround(n.Close, "ObjectExpressionClosingBrace")
	c.SetIndent(n.Close, c.ClosingIndentLevel(id))
}
