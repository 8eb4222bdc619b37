package format

import "esfmt/internal/token"

// strip removes layout the formatter regenerates: indentation always,
// trailing blanks when white_space.remove_trailing is set, and blank lines when
// line_break.keep_empty_lines is off. It works on tokens, so string and
// comment contents are never touched.
func (c *Context) strip() (removed int) {
	for tok := c.tokens.First; tok != nil; {
		next := tok.Next
		drop := false
		switch tok.Kind {
		case token.WhiteSpace:
			atStart := tok.Prev == nil || tok.Prev.Kind == token.LineBreak
			atEnd := tok.Next == nil || tok.Next.Kind == token.LineBreak
			drop = atStart || (atEnd && c.opts.WhiteSpace.RemoveTrailing)
		case token.LineBreak:
			drop = !c.opts.LineBreak.KeepEmptyLines && (tok.Prev == nil || tok.Prev.Kind == token.LineBreak)
		}
		if drop {
			c.tokens.Remove(tok)
			removed++
		}
		tok = next
	}
	return removed
}

// sanitize drops whitespace next to tokens that never need it (other trivia
// and punctuators), unless the neighbours would then glue together.
func (c *Context) sanitize() (removed int) {
	for tok := c.tokens.First; tok != nil; {
		next := tok.Next
		if tok.Kind == token.WhiteSpace && c.unnecessary(tok) && !fuses(tok.Prev, tok.Next) {
			c.tokens.Remove(tok)
			removed++
		}
		tok = next
	}
	return removed
}

func (c *Context) unnecessary(ws *token.Token) bool {
	if ws.Next != nil && ws.Next.Kind == token.LineBreak && !c.opts.WhiteSpace.RemoveTrailing {
		return false
	}
	return (ws.Prev != nil && unnecessaryWhiteSpace(ws.Prev.Kind)) ||
		(ws.Next != nil && unnecessaryWhiteSpace(ws.Next.Kind))
}
