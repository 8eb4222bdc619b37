package format

import (
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"esfmt/internal/source"
	"esfmt/internal/token"
)

// synth builds a trivia token positioned at the start of at (before) or at
// its end (after). Line breaks end one line below their start.
func (c *Context) synth(kind token.Kind, value string, at *token.Token, after bool) *token.Token {
	off, lc := at.Range.Start, at.Loc.Start
	if after {
		off, lc = at.Range.End, at.Loc.End
	}
	n, err := safecast.Conv[uint32](len(value))
	if err != nil {
		n = 0
	}
	end := source.LineCol{Line: lc.Line, Col: lc.Col + n}
	if kind == token.LineBreak {
		end = source.LineCol{Line: lc.Line + 1, Col: 1}
	}
	return &token.Token{
		Kind:      kind,
		Value:     value,
		Range:     source.Span{File: at.Range.File, Start: off, End: off + n},
		Loc:       token.Loc{Start: lc, End: end},
		Synthetic: true,
	}
}

// InsertSpaceBefore puts a WhiteSpace token with exactly text right before tok.
// Empty text is a no-op.
func (c *Context) InsertSpaceBefore(tok *token.Token, text string) *token.Token {
	if tok == nil || text == "" {
		return nil
	}
	ws := c.synth(token.WhiteSpace, text, tok, false)
	c.tokens.InsertBefore(tok, ws)
	return ws
}

// InsertSpaceAfter puts a WhiteSpace token with exactly text right after tok.
func (c *Context) InsertSpaceAfter(tok *token.Token, text string) *token.Token {
	if tok == nil || text == "" {
		return nil
	}
	ws := c.synth(token.WhiteSpace, text, tok, true)
	c.tokens.InsertAfter(tok, ws)
	return ws
}

// InsertLineBreakBefore inserts the configured line break before tok.
func (c *Context) InsertLineBreakBefore(tok *token.Token) *token.Token {
	if tok == nil {
		return nil
	}
	br := c.synth(token.LineBreak, c.opts.LineBreak.Value, tok, false)
	c.tokens.InsertBefore(tok, br)
	return br
}

// InsertLineBreakAfter inserts the configured line break after tok.
func (c *Context) InsertLineBreakAfter(tok *token.Token) *token.Token {
	if tok == nil {
		return nil
	}
	br := c.synth(token.LineBreak, c.opts.LineBreak.Value, tok, true)
	c.tokens.InsertAfter(tok, br)
	return br
}

// RemoveRunBefore deletes the contiguous tokens of kind directly before tok
// and returns how many were unlinked.
func (c *Context) RemoveRunBefore(tok *token.Token, kind token.Kind) int {
	if tok == nil {
		return 0
	}
	removed := 0
	for p := tok.Prev; p != nil && p.Kind == kind; {
		prev := p.Prev
		if !c.unlink(p) {
			break
		}
		removed++
		p = prev
	}
	return removed
}

// RemoveRunAfter deletes the contiguous tokens of kind directly after tok.
func (c *Context) RemoveRunAfter(tok *token.Token, kind token.Kind) int {
	if tok == nil {
		return 0
	}
	removed := 0
	for n := tok.Next; n != nil && n.Kind == kind; {
		next := n.Next
		if !c.unlink(n) {
			break
		}
		removed++
		n = next
	}
	return removed
}

// clearGap removes every WhiteSpace and LineBreak between a and b, stopping at
// the first comment. If a and b would then glue together, one space is left.
func (c *Context) clearGap(a, b *token.Token) {
	if a == nil || b == nil {
		return
	}
	for t := a.Next; t != nil && t != b; {
		next := t.Next
		if t.Kind != token.WhiteSpace && t.Kind != token.LineBreak {
			return
		}
		if t.Kind == token.LineBreak && endsLineComment(t) {
			return
		}
		c.tokens.Remove(t)
		t = next
	}
	if a.Next == b && fuses(a, b) {
		c.InsertSpaceAfter(a, c.space())
	}
}

// unlink removes one WhiteSpace or LineBreak token. A line break closing a
// line comment stays. When the neighbours would glue into different tokens a
// line break becomes one space and a whitespace token stays.
func (c *Context) unlink(t *token.Token) bool {
	if t.Kind == token.LineBreak && endsLineComment(t) {
		return false
	}
	if fuses(t.Prev, t.Next) {
		if t.Kind != token.LineBreak {
			return false
		}
		c.InsertSpaceBefore(t, c.space())
	}
	c.tokens.Remove(t)
	return true
}

func (c *Context) space() string {
	if c.opts.WhiteSpace.Value != "" {
		return c.opts.WhiteSpace.Value
	}
	return " "
}

// endsLineComment: перевод строки завершает однострочный комментарий.
func endsLineComment(br *token.Token) bool {
	p := br.Prev
	for p != nil && p.Kind == token.WhiteSpace {
		p = p.Prev
	}
	return p != nil && p.Kind == token.LineComment
}

// fuses reports whether a and b, written without anything between them,
// would be read back as different tokens (`a - -b`, `1 .x`, `a / /re/`).
func fuses(a, b *token.Token) bool {
	if a == nil || b == nil || a.Kind.IsTrivia() || b.Kind.IsTrivia() {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(a.Value)
	first, _ := utf8.DecodeRuneInString(b.Value)
	switch {
	case wordRune(last) && wordRune(first):
		return true
	case a.Kind == token.Numeric && first == '.':
		return true
	case (last == '+' || last == '-') && last == first:
		return true
	case last == '/' && (first == '/' || first == '*'):
		return true
	case last == '<' && first == '!', last == '-' && first == '>':
		return true
	}
	return false
}

func wordRune(r rune) bool {
	return r == '_' || r == '$' || r == '\\' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r) ||
		r == '\u200c' || r == '\u200d'
}
