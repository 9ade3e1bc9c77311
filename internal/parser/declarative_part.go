package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// ParseDeclarativePart parses declarative items until 'begin' or 'end'
// is next. Items that fail to parse are reported to rep and skipped
// past the next ';' so the following items still parse; the terminator
// token itself is left in the stream.
func ParseDeclarativePart(ts *TokenStream, rep diag.Reporter) ([]ast.Declaration, error) {
	var decls []ast.Declaration
	for {
		tok := ts.Peek()
		switch tok.Kind {
		case token.KwBegin, token.KwEnd, token.EOF:
			return decls, nil
		}

		item, err := parseDeclarativeItem(ts, rep)
		if err != nil {
			if serr, ok := err.(*SyntaxError); ok {
				diag.ReportError(rep, serr.Code, serr.Pos, serr.Msg)
			} else {
				return nil, err
			}
			if _, ok := ts.resyncPast(token.Semicolon); !ok {
				return decls, nil
			}
			continue
		}
		decls = append(decls, item...)
	}
}

func parseDeclarativeItem(ts *TokenStream, rep diag.Reporter) ([]ast.Declaration, error) {
	tok := ts.Peek()
	items, err := match(ts,
		on(func(tok token.Token) ([]ast.Declaration, error) {
			decl, err := parseObjectDeclaration(ts)
			if err != nil {
				return nil, err
			}
			return []ast.Declaration{decl}, nil
		}, token.KwConstant, token.KwVariable, token.KwSignal),

		on(func(tok token.Token) ([]ast.Declaration, error) {
			return ParseAttribute(ts)
		}, token.KwAttribute),

		on(func(tok token.Token) ([]ast.Declaration, error) {
			decl, err := ParseSubprogram(ts, rep)
			if err != nil {
				return nil, err
			}
			return []ast.Declaration{decl}, nil
		}, token.KwProcedure, token.KwFunction, token.KwImpure),
	)
	if err != nil {
		// A bad leading token means the item kind itself is unknown.
		if serr, ok := err.(*SyntaxError); ok && serr.Pos == tok.Span {
			serr.Code = diag.SynUnexpectedDeclaration
		}
		return nil, err
	}
	return items, nil
}

// parseObjectDeclaration parses "class ident : type_mark [:= expr];".
func parseObjectDeclaration(ts *TokenStream) (*ast.ObjectDeclaration, error) {
	tok, err := ts.Expect()
	if err != nil {
		return nil, err
	}
	var class ast.ObjectClass
	switch tok.Kind {
	case token.KwConstant:
		class = ast.ObjectConstant
	case token.KwVariable:
		class = ast.ObjectVariable
	case token.KwSignal:
		class = ast.ObjectSignal
	default:
		return nil, expectedError(tok, token.KwConstant, token.KwVariable, token.KwSignal)
	}

	ident, err := ts.ExpectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := ts.ExpectKind(token.Colon); err != nil {
		return nil, err
	}
	typeMark, err := ParseSelectedName(ts)
	if err != nil {
		return nil, err
	}

	var value ast.Expr
	if _, ok := ts.PopIfKind(token.ColonAssign); ok {
		value, err = ParseExpression(ts)
		if err != nil {
			return nil, err
		}
	}
	if _, err := ts.ExpectKind(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.ObjectDeclaration{Class: class, Ident: ident, TypeMark: typeMark, Expr: value}, nil
}
