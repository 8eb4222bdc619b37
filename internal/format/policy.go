package format

import "esfmt/internal/token"

// Side selects the neighbour a rule looks at.
type Side uint8

const (
	Before Side = iota
	After
)

func (s Side) String() string {
	if s == After {
		return "after"
	}
	return "before"
}

// Layout is the kind of separator a rule asks for.
type Layout uint8

const (
	Space Layout = iota
	LineBreak
)

type action uint8

const (
	actNone action = iota
	actSpace
	actLineBreak
)

// NeedsSpace reports whether the white_space table asks for a space on side of label.
func (c *Context) NeedsSpace(side Side, label string) bool {
	if side == After {
		return c.opts.WhiteSpace.After[label]
	}
	return c.opts.WhiteSpace.Before[label]
}

// NeedsLineBreak reports whether the line_break table asks for a break on side of label.
func (c *Context) NeedsLineBreak(side Side, label string) bool {
	if side == After {
		return c.opts.LineBreak.After[label]
	}
	return c.opts.LineBreak.Before[label]
}

// plan is the single policy function: given a token playing the role label,
// it decides what, if anything, to insert on side.
//
// Spaces go in only next to a token that is not already whitespace or a line
// break. Line breaks go in only when the pair still shares a source line, so
// layout the author already split is left alone and reruns converge.
func (c *Context) plan(tok *token.Token, label string, side Side, layout Layout) action {
	if tok == nil {
		return actNone
	}
	switch layout {
	case Space:
		if !c.NeedsSpace(side, label) {
			return actNone
		}
		adj := tok.Prev
		if side == After {
			adj = tok.Next
		}
		if adj == nil || adj.Kind == token.WhiteSpace || adj.Kind == token.LineBreak {
			return actNone
		}
		return actSpace

	case LineBreak:
		if !c.NeedsLineBreak(side, label) {
			return actNone
		}
		if side == Before {
			prev := tok.Prev
			// перед самым первым токеном файла перевод строки не вставляем
			if prev == nil || prev.Kind == token.LineBreak || prev.Kind == token.WhiteSpace {
				return actNone
			}
			if prev.Loc.End.Line != tok.Loc.Start.Line {
				return actNone
			}
			return actLineBreak
		}
		next := tok.Next
		if next == nil {
			return actLineBreak
		}
		switch next.Kind {
		case token.LineBreak, token.LineComment, token.BlockComment:
			return actNone
		case token.WhiteSpace:
			if nn := next.Next; nn == nil || nn.Kind == token.LineBreak || nn.Kind.IsComment() {
				return actNone
			}
		}
		if next.Loc.Start.Line != tok.Loc.End.Line {
			return actNone
		}
		return actLineBreak
	}
	return actNone
}

func (c *Context) apply(tok *token.Token, label string, side Side, layout Layout) bool {
	switch c.plan(tok, label, side, layout) {
	case actSpace:
		if side == After {
			c.InsertSpaceAfter(tok, c.opts.WhiteSpace.Value)
		} else {
			c.InsertSpaceBefore(tok, c.opts.WhiteSpace.Value)
		}
	case actLineBreak:
		if side == After {
			c.InsertLineBreakAfter(tok)
		} else {
			c.InsertLineBreakBefore(tok)
		}
	default:
		return false
	}
	return true
}

// SpaceBefore inserts a space before tok when label asks for one and none is there.
func (c *Context) SpaceBefore(tok *token.Token, label string) bool {
	return c.apply(tok, label, Before, Space)
}

// SpaceAfter inserts a space after tok when label asks for one and none is there.
func (c *Context) SpaceAfter(tok *token.Token, label string) bool {
	return c.apply(tok, label, After, Space)
}

func (c *Context) SpaceAround(tok *token.Token, label string) {
	c.SpaceBefore(tok, label)
	c.SpaceAfter(tok, label)
}

// LineBreakBefore breaks the line before tok when label asks for it.
func (c *Context) LineBreakBefore(tok *token.Token, label string) bool {
	return c.apply(tok, label, Before, LineBreak)
}

// LineBreakAfter breaks the line after tok when label asks for it.
func (c *Context) LineBreakAfter(tok *token.Token, label string) bool {
	return c.apply(tok, label, After, LineBreak)
}

func (c *Context) LineBreakAround(tok *token.Token, label string) {
	c.LineBreakBefore(tok, label)
	c.LineBreakAfter(tok, label)
}
