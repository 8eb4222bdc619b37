package token

import (
	"esfmt/internal/source"
)

// Loc is the line/column extent of a token.
type Loc struct {
	Start source.LineCol
	End   source.LineCol
}

// Token is one node of the doubly linked token stream.
type Token struct {
	Kind  Kind
	Value string
	Range source.Span
	Loc   Loc

	// Synthetic marks tokens inserted by the formatter.
	Synthetic bool

	Prev *Token
	Next *Token
	list *List
}

// Is reports whether the token is a punctuator or keyword with the given text.
func (t *Token) Is(value string) bool {
	return t != nil && (t.Kind == Punctuator || t.Kind == Keyword) && t.Value == value
}

// IsTrivia reports whether the token carries no program semantics.
func (t *Token) IsTrivia() bool {
	return t != nil && t.Kind.IsTrivia()
}

// NextSignificant returns the first non-trivia token after t, or nil.
func (t *Token) NextSignificant() *Token {
	for n := t.Next; n != nil; n = n.Next {
		if !n.Kind.IsTrivia() {
			return n
		}
	}
	return nil
}

// PrevSignificant returns the first non-trivia token before t, or nil.
func (t *Token) PrevSignificant() *Token {
	for p := t.Prev; p != nil; p = p.Prev {
		if !p.Kind.IsTrivia() {
			return p
		}
	}
	return nil
}

// Attached reports whether the token still belongs to a list.
func (t *Token) Attached() bool {
	return t.list != nil
}
