package driver

import (
	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/parser"
	"esfmt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
	// Err is the syntax error, if any; Tree is nil then.
	Err error
}

// Parse loads and parses filePath. I/O failures are returned as the error;
// syntax errors land in the result.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	tree, perr := parser.Parse(file, tokens, parser.Options{Reporter: rep})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Bag:     bag,
		Err:     perr,
	}, nil
}
