package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedRegExp       Code = 1005

	// Синтаксические
	SynUnexpectedToken     Code = 2001
	SynUnexpectedEOF       Code = 2002
	SynInvalidAssignTarget Code = 2003
	SynIllegalReturn       Code = 2004
	SynIllegalBreak        Code = 2005

	// IO
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Formatter
	FmtUnstable Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexUnterminatedRegExp:       "Unterminated regular expression",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedEOF:            "Unexpected end of input",
	SynInvalidAssignTarget:      "Invalid left-hand side in assignment",
	SynIllegalReturn:            "Illegal return statement",
	SynIllegalBreak:             "Illegal break or continue statement",
	IOReadFailed:                "Failed to read file",
	IOWriteFailed:               "Failed to write file",
	FmtUnstable:                 "Formatting did not reach a fixed point",
}

// ID returns the stable short identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return fmt.Sprintf("E%04d", int(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
