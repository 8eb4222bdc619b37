package lexer

import (
	"esfmt/internal/diag"
	"esfmt/internal/source"
	"esfmt/internal/token"
)

// Lexer turns a file into the full token stream, trivia included.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	prev   *token.Token // последний значимый токен, нужен для regex/деления
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes the whole file into a fresh token list.
// Lexical errors are reported and leave an Invalid token in the stream.
func Tokenize(file *source.File, opts Options) *token.List {
	lx := New(file, opts)
	list := &token.List{}
	for tok := lx.Next(); tok != nil; tok = lx.Next() {
		list.Append(tok)
	}
	return list
}

// Next возвращает следующий токен (включая trivia) или nil после конца файла.
func (lx *Lexer) Next() *token.Token {
	if lx.cursor.EOF() {
		return nil
	}
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	var tok *token.Token
	switch {
	case ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f':
		tok = lx.scanWhiteSpace()
	case ch == '\n' || ch == '\r':
		tok = lx.scanLineBreak()
	case ch >= utf8RuneSelf && lx.atUnicodeSpace():
		tok = lx.scanWhiteSpace()
	case ch >= utf8RuneSelf && lx.atUnicodeLineBreak():
		tok = lx.scanLineBreak()
	case ch == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		tok = lx.scanComment()
	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegExp()
	case isIdentStartByte(ch) || ch == '\\' || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString()
	default:
		tok = lx.scanPunctuator()
	}

	if tok == nil {
		// неизвестный символ: съедаем руну целиком и идём дальше
		lx.cursor.Reset(start)
		lx.bumpRune()
		tok = lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Range, "unexpected character "+quoteRune(tok.Value))
	}
	if !tok.Kind.IsTrivia() {
		lx.prev = tok
	}
	return tok
}

// emit builds a token for the bytes consumed since start.
func (lx *Lexer) emit(kind token.Kind, start Mark) *token.Token {
	sp := lx.cursor.SpanFrom(start)
	return &token.Token{
		Kind:  kind,
		Value: string(lx.file.Content[sp.Start:sp.End]),
		Range: sp,
		Loc: token.Loc{
			Start: lx.file.Position(sp.Start),
			End:   lx.file.Position(sp.End),
		},
	}
}

// regexAllowed decides whether '/' starts a regular expression, judging by
// the previous significant token the way ES5 tokenizers usually do.
func (lx *Lexer) regexAllowed() bool {
	p := lx.prev
	if p == nil {
		return true
	}
	switch p.Kind {
	case token.Identifier, token.Numeric, token.String, token.RegularExpression,
		token.Boolean, token.Null, token.Invalid:
		return false
	case token.Keyword:
		return p.Value != "this" && p.Value != "super"
	case token.Punctuator:
		switch p.Value {
		case ")", "]", "}", "++", "--":
			return false
		}
	}
	return true
}
