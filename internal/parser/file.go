package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/lexer"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// ParseFile parses a whole source file as a sequence of declarative
// items. Parsing never stops at the first error: failed items are
// reported to rep and the parser resynchronizes at the next token that
// can start an item.
func ParseFile(file *source.File, rep diag.Reporter) []ast.Declaration {
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	ts := NewTokenStream(lx)

	var decls []ast.Declaration
	for ts.PeekKind() != token.EOF {
		items, err := parseDeclarativeItem(ts, rep)
		if err != nil {
			if serr, ok := err.(*SyntaxError); ok {
				diag.ReportError(rep, serr.Code, serr.Pos, serr.Msg)
			} else {
				reportError(rep, ts, err)
			}
			resyncTop(ts)
			continue
		}
		decls = append(decls, items...)
	}
	return decls
}

// resyncTop drops tokens until one that can start a declarative item
// is next. A ';' is consumed as the end of the broken item.
func resyncTop(ts *TokenStream) {
	for {
		switch ts.PeekKind() {
		case token.EOF,
			token.KwAttribute,
			token.KwConstant, token.KwVariable, token.KwSignal,
			token.KwProcedure, token.KwFunction, token.KwImpure:
			return
		case token.Semicolon:
			ts.skip()
			return
		}
		ts.skip()
	}
}
