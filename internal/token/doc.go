// Package token defines ECMAScript token kinds and the mutable token stream
// the formatter works on.
// Invariants:
//   - Every byte of the input belongs to exactly one token; trivia
//     (WhiteSpace, LineBreak, LineComment, BlockComment) are first-class tokens.
//   - A LineBreak token holds exactly one line terminator.
//   - List.String() is the concatenation of every Value in stream order and is
//     therefore always the current text of the file.
//   - Synthetic tokens borrow Range/Loc from the token they were attached to.
package token
