// Package format reformats ECMAScript source by mutating its token stream.
//
// Назначение: расставить отступы, переводы строк и пробелы между токенами по
// таблицам правил; сами значащие токены не меняются и не переставляются.
// Не делает: переписывание кода конкатенацией строк, перенос длинных строк,
// переформатирование содержимого комментариев.
// Зависимости: internal/lexer, internal/parser, internal/ast, internal/token, internal/trace.
//
// Pipeline of one run:
//
//	lex -> prepare (strip indentation/trailing blanks, sanitize) -> parse ->
//	walk (post-order: indent annotation, automatic breaks, comments, hook) ->
//	materialise indentation -> serialise
//
// Every run owns a private Context; a Formatter can be shared between goroutines
// once all hooks are registered.
package format
