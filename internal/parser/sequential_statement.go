package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// ParseLabeledSequentialStatements parses statements until a token that
// cannot start one is next. That terminator is consumed and returned so
// the caller can dispatch on it. Broken statements are reported to rep
// and skipped past the next ';'.
func ParseLabeledSequentialStatements(ts *TokenStream, rep diag.Reporter) ([]ast.LabeledSequentialStatement, token.Token, error) {
	var stmts []ast.LabeledSequentialStatement
	for {
		tok := ts.Peek()
		switch tok.Kind {
		case token.KwEnd, token.KwElse, token.KwElsif, token.KwWhen:
			ts.MoveAfter(tok)
			return stmts, tok, nil
		case token.EOF:
			return nil, token.Token{}, syntaxError(ts.last.After(), diag.SynUnexpectedEOF, "unexpected end of file")
		}

		stmt, err := parseLabeledStatement(ts)
		if err != nil {
			serr, ok := err.(*SyntaxError)
			if !ok {
				return nil, token.Token{}, err
			}
			diag.ReportError(rep, serr.Code, serr.Pos, serr.Msg)
			if _, found := ts.resyncPast(token.Semicolon); !found {
				return nil, token.Token{}, err
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
}

func parseLabeledStatement(ts *TokenStream) (ast.LabeledSequentialStatement, error) {
	if ts.PeekKind() == token.Ident {
		name, err := ParseSelectedName(ts)
		if err != nil {
			return ast.LabeledSequentialStatement{}, err
		}
		if _, ok := ts.PopIfKind(token.Colon); ok {
			if len(name.Parts) != 1 {
				return ast.LabeledSequentialStatement{}, syntaxError(name.Pos(),
					diag.SynUnexpectedStatement, "statement label must be a simple identifier")
			}
			label := name.Parts[0]
			stmt, err := parseUnlabeledStatement(ts)
			if err != nil {
				return ast.LabeledSequentialStatement{}, err
			}
			return ast.LabeledSequentialStatement{Label: &label, Statement: stmt}, nil
		}
		stmt, err := finishNameStatement(ts, name)
		if err != nil {
			return ast.LabeledSequentialStatement{}, err
		}
		return ast.LabeledSequentialStatement{Statement: stmt}, nil
	}

	stmt, err := parseUnlabeledStatement(ts)
	if err != nil {
		return ast.LabeledSequentialStatement{}, err
	}
	return ast.LabeledSequentialStatement{Statement: stmt}, nil
}

func parseUnlabeledStatement(ts *TokenStream) (ast.SequentialStatement, error) {
	stmt, err := match(ts,
		on(func(tok token.Token) (ast.SequentialStatement, error) {
			ts.MoveAfter(tok)
			if _, err := ts.ExpectKind(token.Semicolon); err != nil {
				return nil, err
			}
			return &ast.NullStatement{}, nil
		}, token.KwNull),

		on(func(tok token.Token) (ast.SequentialStatement, error) {
			ts.MoveAfter(tok)
			if _, ok := ts.PopIfKind(token.Semicolon); ok {
				return &ast.ReturnStatement{}, nil
			}
			value, err := ParseExpression(ts)
			if err != nil {
				return nil, err
			}
			if _, err := ts.ExpectKind(token.Semicolon); err != nil {
				return nil, err
			}
			return &ast.ReturnStatement{Expr: value}, nil
		}, token.KwReturn),

		on(func(tok token.Token) (ast.SequentialStatement, error) {
			name, err := ParseSelectedName(ts)
			if err != nil {
				return nil, err
			}
			return finishNameStatement(ts, name)
		}, token.Ident),
	)
	if err != nil {
		if serr, ok := err.(*SyntaxError); ok && serr.Code == diag.SynUnexpectedToken {
			serr.Code = diag.SynUnexpectedStatement
		}
		return nil, err
	}
	return stmt, nil
}

// finishNameStatement completes a statement whose leading name is
// already parsed: an assignment or a procedure call.
func finishNameStatement(ts *TokenStream, name ast.SelectedName) (ast.SequentialStatement, error) {
	if ts.PeekKind() == token.LParen {
		args, _, err := parseArgumentList(ts)
		if err != nil {
			return nil, err
		}
		if _, err := ts.ExpectKind(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ProcedureCall{Name: name, Args: args}, nil
	}

	tok, err := ts.Expect()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.ColonAssign:
		value, err := ParseExpression(ts)
		if err != nil {
			return nil, err
		}
		if _, err := ts.ExpectKind(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.VariableAssignment{Target: name, Expr: value}, nil

	case token.LtEq:
		value, err := ParseExpression(ts)
		if err != nil {
			return nil, err
		}
		if _, err := ts.ExpectKind(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.SignalAssignment{Target: name, Expr: value}, nil

	case token.Semicolon:
		return &ast.ProcedureCall{Name: name}, nil

	default:
		return nil, expectedError(tok, token.ColonAssign, token.LtEq, token.Semicolon, token.LParen)
	}
}
