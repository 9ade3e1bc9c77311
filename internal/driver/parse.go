package driver

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/parser"
	"vhdlparse/internal/source"
)

// ParseResult bundles the declarations of one parsed file with its
// diagnostics.
type ParseResult struct {
	FileSet      *source.FileSet
	File         *source.File
	Declarations []ast.Declaration
	Bag          *diag.Bag
}

// Parse loads one file and parses its declarative items.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	decls := parser.ParseFile(file, diag.BagReporter{Bag: bag})

	return &ParseResult{
		FileSet:      fs,
		File:         file,
		Declarations: decls,
		Bag:          bag,
	}, nil
}
