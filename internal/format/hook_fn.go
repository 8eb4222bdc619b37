package format

import "esfmt/internal/ast"

// formatFunction handles declarations and expressions; the brace labels are
// prefixed with the node type (FunctionDeclarationOpeningBrace, ...).
func formatFunction(c *Context, id ast.NodeID) {
	n := c.Node(id)
	label := n.Kind.String()

	if n.ID.IsValid() {
		c.SpaceAfter(c.Node(n.ID).End, "FunctionName")
	}

	if len(n.Params) > 0 {
		c.SpaceBefore(c.Node(n.Params[0]).Start, "ParameterList")
		for _, comma := range n.Commas {
			c.SpaceAround(comma, "ParameterComma")
		}
		c.SpaceAfter(c.Node(n.Params[len(n.Params)-1]).End, "ParameterList")
	}

	body := c.Node(n.Body)
	if body == nil || body.Open == nil || body.Close == nil {
		return
	}
	level := c.ClosingIndentLevel(id)
	opening, closing := label+"OpeningBrace", label+"ClosingBrace"

	// брейс либо через пробел после сигнатуры, либо на своей строке с отступом функции
	if !c.NeedsLineBreak(Before, opening) {
		c.SpaceBefore(body.Open, opening)
	} else {
		c.SetIndent(body.Open, level)
	}
	c.LineBreakAround(body.Open, opening)

	if !c.NeedsLineBreak(Before, closing) {
		c.SpaceBefore(body.Close, closing)
	}
	c.LineBreakAround(body.Close, closing)
	c.SetIndent(body.Close, level)
}
