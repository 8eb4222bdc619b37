package format

import "esfmt/internal/ast"

// formatIf formats one link of an if / else if / else chain. An else-if is
// formatted by its own call with the ElseIf* labels; the parent only joins
// `} else if` onto one line.
func formatIf(c *Context, id ast.NodeID) {
	n := c.Node(id)
	prefix := "If"
	if c.isElseIf(id) {
		prefix = "ElseIf"
	}
	head := c.rawLevel(c.chainHead(id))

	c.SpaceBefore(n.Open, "IfTest")
	c.SpaceAfter(n.Close, "IfTest")

	cons := c.Node(n.Consequent)
	block := cons.Kind == ast.BlockStatement
	if block {
		c.SpaceAround(cons.Open, prefix+"OpeningBrace")
		c.LineBreakAround(cons.Open, prefix+"OpeningBrace")
		c.LineBreakAround(cons.Close, prefix+"ClosingBrace")
		c.SetIndent(cons.Close, head)
	} else {
		c.SetIndent(cons.Start, head+1)
	}

	if alt := c.Node(n.Alternate); alt != nil {
		if block {
			// `}` и `else` всегда на одной строке, разделитель решает IfClosingBrace
			c.clearGap(cons.Close, n.Op)
			c.SpaceAfter(cons.Close, "IfClosingBrace")
		} else {
			// `b(); else`: после однострочной ветки тот же разделитель
			c.SpaceAfter(cons.End, "IfClosingBrace")
		}
		switch alt.Kind {
		case ast.IfStatement:
			c.clearGap(n.Op, alt.Start)
		case ast.BlockStatement:
			c.SpaceAround(alt.Open, "ElseOpeningBrace")
			c.LineBreakAround(alt.Open, "ElseOpeningBrace")
			c.SpaceAround(alt.Close, "ElseClosingBrace")
			c.LineBreakAround(alt.Close, "ElseClosingBrace")
			c.SetIndent(alt.Close, head)
		default:
			c.SetIndent(alt.Start, head+1)
		}
		return
	}

	if block {
		c.SpaceAround(cons.Close, prefix+"ClosingBrace")
	}
}
