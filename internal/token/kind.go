package token

// Kind represents the category of a source token.
// Names follow the token types reported by common ECMAScript parsers, so they
// double as labels in dumps and configuration.
type Kind uint8

const (
	// Invalid indicates an erroneous token (unterminated string, stray byte).
	Invalid Kind = iota
	// WhiteSpace is a run of spaces, tabs and other non-breaking blanks.
	WhiteSpace
	// LineBreak is a single line terminator.
	LineBreak
	// LineComment is a `// ...` comment without its terminator.
	LineComment
	// BlockComment is a `/* ... */` comment.
	BlockComment
	// Identifier is a name that is not a reserved word.
	Identifier
	// Keyword is a reserved word (var, function, if, ...).
	Keyword
	// Punctuator is an operator or punctuation mark.
	Punctuator
	// Numeric is a number literal.
	Numeric
	// String is a quoted string literal.
	String
	// RegularExpression is a regex literal including its flags.
	RegularExpression
	// Boolean is `true` or `false`.
	Boolean
	// Null is the `null` literal.
	Null
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	WhiteSpace:        "WhiteSpace",
	LineBreak:         "LineBreak",
	LineComment:       "LineComment",
	BlockComment:      "BlockComment",
	Identifier:        "Identifier",
	Keyword:           "Keyword",
	Punctuator:        "Punctuator",
	Numeric:           "Numeric",
	String:            "String",
	RegularExpression: "RegularExpression",
	Boolean:           "Boolean",
	Null:              "Null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind carry no program semantics.
func (k Kind) IsTrivia() bool {
	switch k {
	case WhiteSpace, LineBreak, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsComment reports whether k is a line or block comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsLiteral reports whether k is a literal value kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case Numeric, String, RegularExpression, Boolean, Null:
		return true
	default:
		return false
	}
}
