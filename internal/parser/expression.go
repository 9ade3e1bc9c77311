package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/token"
)

// ParseExpression parses an expression by precedence climbing over the
// operator table. It covers the value expressions this front end
// needs: literals, names, calls, parentheses, and the unary and binary
// operators.
func ParseExpression(ts *TokenStream) (ast.Expr, error) {
	return parseBinary(ts, precLogical)
}

func parseBinary(ts *TokenStream, minPrec int) (ast.Expr, error) {
	lhs, err := parseUnary(ts)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOps[ts.PeekKind()]
		if !ok || op.prec < minPrec {
			return lhs, nil
		}
		ts.skip()
		// ** is right associative; everything else is left associative.
		next := op.prec + 1
		if op.text == "**" {
			next = op.prec
		}
		rhs, err := parseBinary(ts, next)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Op: op.text, Left: lhs, Right: rhs}
	}
}

func parseUnary(ts *TokenStream) (ast.Expr, error) {
	tok := ts.Peek()
	op, ok := unaryOps[tok.Kind]
	if !ok {
		return parsePrimary(ts)
	}
	ts.MoveAfter(tok)
	// Sign operators bind above adding; abs and not bind tightest.
	minPrec := precMultiplying
	if tok.Kind == token.KwAbs || tok.Kind == token.KwNot {
		minPrec = precMisc
	}
	operand, err := parseBinary(ts, minPrec)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, Operand: operand, Span: tok.Span.Cover(operand.Pos())}, nil
}

func parsePrimary(ts *TokenStream) (ast.Expr, error) {
	return match(ts,
		on(func(tok token.Token) (ast.Expr, error) {
			ts.MoveAfter(tok)
			kind := ast.LitInteger
			if tok.Kind == token.RealLit {
				kind = ast.LitReal
			}
			return &ast.Literal{Kind: kind, Text: tok.Text, Span: tok.Span}, nil
		}, token.IntLit, token.RealLit),

		on(func(tok token.Token) (ast.Expr, error) {
			ts.MoveAfter(tok)
			value, _ := tok.CharValue()
			return &ast.Literal{Kind: ast.LitCharacter, Text: string(value), Span: tok.Span}, nil
		}, token.CharLit),

		on(func(tok token.Token) (ast.Expr, error) {
			ts.MoveAfter(tok)
			value, _ := tok.StringValue()
			return &ast.Literal{Kind: ast.LitString, Text: value, Span: tok.Span}, nil
		}, token.StringLit),

		on(func(tok token.Token) (ast.Expr, error) {
			name, err := ParseSelectedName(ts)
			if err != nil {
				return nil, err
			}
			if ts.PeekKind() != token.LParen {
				return &ast.NameExpr{Name: name}, nil
			}
			args, closing, err := parseArgumentList(ts)
			if err != nil {
				return nil, err
			}
			return &ast.CallExpr{Name: name, Args: args, Span: name.Pos().Cover(closing.Span)}, nil
		}, token.Ident),

		on(func(tok token.Token) (ast.Expr, error) {
			ts.MoveAfter(tok)
			inner, err := ParseExpression(ts)
			if err != nil {
				return nil, err
			}
			closing, err := ts.ExpectKind(token.RParen)
			if err != nil {
				return nil, err
			}
			return &ast.ParenExpr{Inner: inner, Span: tok.Span.Cover(closing.Span)}, nil
		}, token.LParen),
	)
}

// parseArgumentList parses "(expr{, expr})" and returns the closing
// parenthesis so callers can finish their spans.
func parseArgumentList(ts *TokenStream) ([]ast.Expr, token.Token, error) {
	if _, err := ts.ExpectKind(token.LParen); err != nil {
		return nil, token.Token{}, err
	}
	var args []ast.Expr
	for {
		arg, err := ParseExpression(ts)
		if err != nil {
			return nil, token.Token{}, err
		}
		args = append(args, arg)
		sep, err := ts.Expect()
		if err != nil {
			return nil, token.Token{}, err
		}
		switch sep.Kind {
		case token.Comma:
			continue
		case token.RParen:
			return args, sep, nil
		default:
			return nil, token.Token{}, expectedError(sep, token.Comma, token.RParen)
		}
	}
}
