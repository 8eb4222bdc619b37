package token

import "strings"

// List is the mutable token stream of one file.
// It is owned by a single formatting run and is not safe for concurrent use.
type List struct {
	First *Token
	Last  *Token
	n     int
}

// Len returns the number of tokens currently linked.
func (l *List) Len() int { return l.n }

// Append links t at the end of the stream.
func (l *List) Append(t *Token) {
	l.claim(t)
	t.Prev = l.Last
	t.Next = nil
	if l.Last != nil {
		l.Last.Next = t
	} else {
		l.First = t
	}
	l.Last = t
}

// InsertBefore links t immediately before mark.
func (l *List) InsertBefore(mark, t *Token) {
	if mark == nil || mark.list != l {
		panic("token: InsertBefore with a mark outside the list")
	}
	l.claim(t)
	t.Prev = mark.Prev
	t.Next = mark
	if mark.Prev != nil {
		mark.Prev.Next = t
	} else {
		l.First = t
	}
	mark.Prev = t
}

// InsertAfter links t immediately after mark.
func (l *List) InsertAfter(mark, t *Token) {
	if mark == nil || mark.list != l {
		panic("token: InsertAfter with a mark outside the list")
	}
	l.claim(t)
	t.Prev = mark
	t.Next = mark.Next
	if mark.Next != nil {
		mark.Next.Prev = t
	} else {
		l.Last = t
	}
	mark.Next = t
}

// Remove unlinks t. Its Prev/Next are cleared, so callers iterating the list
// must read the neighbour they continue with before removing.
func (l *List) Remove(t *Token) {
	if t == nil || t.list != l {
		return
	}
	if t.Prev != nil {
		t.Prev.Next = t.Next
	} else {
		l.First = t.Next
	}
	if t.Next != nil {
		t.Next.Prev = t.Prev
	} else {
		l.Last = t.Prev
	}
	t.Prev, t.Next, t.list = nil, nil, nil
	l.n--
}

func (l *List) claim(t *Token) {
	if t.list != nil {
		panic("token: token already belongs to a list")
	}
	t.list = l
	l.n++
}

// String serialises the stream back to source text.
func (l *List) String() string {
	var sb strings.Builder
	for t := l.First; t != nil; t = t.Next {
		sb.WriteString(t.Value)
	}
	return sb.String()
}

// Slice returns the tokens in stream order.
func (l *List) Slice() []*Token {
	out := make([]*Token, 0, l.n)
	for t := l.First; t != nil; t = t.Next {
		out = append(out, t)
	}
	return out
}

// Significant returns the non-trivia tokens in stream order.
func (l *List) Significant() []*Token {
	out := make([]*Token, 0, l.n)
	for t := l.First; t != nil; t = t.Next {
		if !t.Kind.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}
