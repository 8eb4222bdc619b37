// Package fuzztests houses Go fuzz harnesses over the whole formatting
// pipeline (source -> lexer -> parser -> formatter). Lexer and parser must
// never panic or hang; the formatter must keep the significant tokens and
// reach a fixed point on everything it accepts.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
