package token

// ES5 reserved words, including the strict-mode future reserved words that
// common parsers tokenize as keywords.
var keywords = map[string]Kind{
	"break": Keyword, "case": Keyword, "catch": Keyword, "continue": Keyword,
	"debugger": Keyword, "default": Keyword, "delete": Keyword, "do": Keyword,
	"else": Keyword, "finally": Keyword, "for": Keyword, "function": Keyword,
	"if": Keyword, "in": Keyword, "instanceof": Keyword, "new": Keyword,
	"return": Keyword, "switch": Keyword, "this": Keyword, "throw": Keyword,
	"try": Keyword, "typeof": Keyword, "var": Keyword, "void": Keyword,
	"while": Keyword, "with": Keyword,

	"class": Keyword, "const": Keyword, "enum": Keyword, "export": Keyword,
	"extends": Keyword, "import": Keyword, "super": Keyword,

	"true":  Boolean,
	"false": Boolean,
	"null":  Null,
}

// LookupKeyword возвращает вид токена для зарезервированного слова.
// Регистрозависимо: `If` остаётся идентификатором.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
