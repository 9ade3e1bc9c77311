package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/token"
)

// ParseSelectedName parses "ident{.ident}", the name form accepted for
// type marks, return marks, and assignment targets.
func ParseSelectedName(ts *TokenStream) (ast.SelectedName, error) {
	first, err := ts.ExpectIdent()
	if err != nil {
		return ast.SelectedName{}, err
	}
	name := ast.SelectedName{Parts: []ast.Ident{first}}
	for {
		if _, ok := ts.PopIfKind(token.Dot); !ok {
			return name, nil
		}
		part, err := ts.ExpectIdent()
		if err != nil {
			return ast.SelectedName{}, err
		}
		name.Parts = append(name.Parts, part)
	}
}
