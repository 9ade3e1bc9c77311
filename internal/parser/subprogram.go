package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// ParseSignature parses "[type_mark{, type_mark} [return type_mark]]".
// The loop is deliberately permissive about where the return mark
// appears; only a second 'return' is an error, flagged at that token.
func ParseSignature(ts *TokenStream) (ast.Signature, error) {
	if _, err := ts.ExpectKind(token.LBracket); err != nil {
		return ast.Signature{}, err
	}

	var typeMarks []ast.SelectedName
	var returnMark *ast.SelectedName

	setReturn := func(at token.Token) error {
		if returnMark != nil {
			return syntaxError(at.Span, diag.SynDuplicateReturn, "duplicate return in signature")
		}
		mark, err := ParseSelectedName(ts)
		if err != nil {
			return err
		}
		returnMark = &mark
		return nil
	}

loop:
	for {
		tok, err := ts.PeekExpect()
		if err != nil {
			return ast.Signature{}, err
		}
		switch tok.Kind {
		case token.Ident:
			mark, err := ParseSelectedName(ts)
			if err != nil {
				return ast.Signature{}, err
			}
			typeMarks = append(typeMarks, mark)

			sep, err := ts.Expect()
			if err != nil {
				return ast.Signature{}, err
			}
			switch sep.Kind {
			case token.Comma:
			case token.RBracket:
				break loop
			case token.KwReturn:
				if err := setReturn(sep); err != nil {
					return ast.Signature{}, err
				}
			default:
				return ast.Signature{}, expectedError(sep, token.Comma, token.RBracket, token.KwReturn)
			}

		case token.KwReturn:
			ts.MoveAfter(tok)
			if err := setReturn(tok); err != nil {
				return ast.Signature{}, err
			}

		case token.RBracket:
			ts.MoveAfter(tok)
			break loop

		default:
			return ast.Signature{}, expectedError(tok, token.Ident, token.KwReturn, token.RBracket)
		}
	}

	if returnMark != nil {
		return ast.Signature{Kind: ast.SignatureFunction, TypeMarks: typeMarks, Return: *returnMark}, nil
	}
	return ast.Signature{Kind: ast.SignatureProcedure, TypeMarks: typeMarks}, nil
}

func parseDesignator(ts *TokenStream) (ast.Designator, error) {
	return match(ts,
		on(func(tok token.Token) (ast.Designator, error) {
			ts.MoveAfter(tok)
			return ast.Designator{Kind: ast.DesignatorIdentifier, Text: tok.Text, Pos: tok.Span}, nil
		}, token.Ident),

		on(func(tok token.Token) (ast.Designator, error) {
			ts.MoveAfter(tok)
			symbol, _ := tok.StringValue()
			return ast.Designator{Kind: ast.DesignatorOperatorSymbol, Text: symbol, Pos: tok.Span}, nil
		}, token.StringLit),
	)
}

// ParseSubprogramDeclarationNoSemicolon parses a subprogram header up
// to but not including the trailing ';' or 'is'.
func ParseSubprogramDeclarationNoSemicolon(ts *TokenStream, rep diag.Reporter) (ast.SubprogramDeclaration, error) {
	tok, err := ts.Expect()
	if err != nil {
		return nil, err
	}

	var isFunction, isPure bool
	switch tok.Kind {
	case token.KwProcedure:
	case token.KwFunction:
		isFunction = true
		isPure = true
	case token.KwImpure:
		if _, err := ts.ExpectKind(token.KwFunction); err != nil {
			return nil, err
		}
		isFunction = true
	default:
		return nil, expectedError(tok, token.KwProcedure, token.KwFunction, token.KwImpure)
	}

	designator, err := parseDesignator(ts)
	if err != nil {
		return nil, err
	}

	var params []ast.InterfaceObject
	if ts.PeekKind() == token.LParen {
		params, err = ParseParameterInterfaceList(ts, rep)
		if err != nil {
			return nil, err
		}
	}

	if !isFunction {
		return &ast.ProcedureSpecification{Designator: designator, ParameterList: params}, nil
	}

	if _, err := ts.ExpectKind(token.KwReturn); err != nil {
		return nil, err
	}
	returnType, err := ParseSelectedName(ts)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionSpecification{
		Pure:          isPure,
		Designator:    designator,
		ParameterList: params,
		ReturnType:    returnType,
	}, nil
}

// ParseSubprogramDeclaration parses a subprogram header terminated by
// ';'.
func ParseSubprogramDeclaration(ts *TokenStream, rep diag.Reporter) (ast.SubprogramDeclaration, error) {
	spec, err := ParseSubprogramDeclarationNoSemicolon(ts, rep)
	if err != nil {
		return nil, err
	}
	if _, err := ts.ExpectKind(token.Semicolon); err != nil {
		return nil, err
	}
	return spec, nil
}

// ParseSubprogramBody parses the body following a header's 'is': the
// declarative part, 'begin', the statement part, and the end line. The
// end line may echo the subprogram kind and the designator.
func ParseSubprogramBody(ts *TokenStream, rep diag.Reporter, spec ast.SubprogramDeclaration) (*ast.SubprogramBody, error) {
	endKind := token.KwProcedure
	if _, ok := spec.(*ast.FunctionSpecification); ok {
		endKind = token.KwFunction
	}

	decls, err := ParseDeclarativePart(ts, rep)
	if err != nil {
		return nil, err
	}
	if _, err := ts.ExpectKind(token.KwBegin); err != nil {
		return nil, err
	}

	stmts, endToken, err := ParseLabeledSequentialStatements(ts, rep)
	if err != nil {
		return nil, err
	}
	if endToken.Kind != token.KwEnd {
		return nil, expectedError(endToken, token.KwEnd)
	}
	ts.PopIfKind(endKind)
	ts.PopIfKind(token.Ident)
	ts.PopIfKind(token.StringLit)
	if _, err := ts.ExpectKind(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.SubprogramBody{Specification: spec, Declarations: decls, Statements: stmts}, nil
}

// ParseSubprogram parses a full subprogram declarative item: a header
// followed by either ';' or an 'is' body.
func ParseSubprogram(ts *TokenStream, rep diag.Reporter) (ast.Declaration, error) {
	spec, err := ParseSubprogramDeclarationNoSemicolon(ts, rep)
	if err != nil {
		return nil, err
	}
	return match(ts,
		on(func(tok token.Token) (ast.Declaration, error) {
			ts.MoveAfter(tok)
			return ParseSubprogramBody(ts, rep, spec)
		}, token.KwIs),

		on(func(tok token.Token) (ast.Declaration, error) {
			ts.MoveAfter(tok)
			return spec, nil
		}, token.Semicolon),
	)
}
