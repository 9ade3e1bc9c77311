package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/token"
)

func parseEntityClass(ts *TokenStream) (ast.EntityClass, error) {
	classOf := func(class ast.EntityClass) func(token.Token) (ast.EntityClass, error) {
		return func(tok token.Token) (ast.EntityClass, error) {
			ts.MoveAfter(tok)
			return class, nil
		}
	}
	return match(ts,
		on(classOf(ast.EntityClassEntity), token.KwEntity),
		on(classOf(ast.EntityClassArchitecture), token.KwArchitecture),
		on(classOf(ast.EntityClassConfiguration), token.KwConfiguration),
		on(classOf(ast.EntityClassPackage), token.KwPackage),
		on(classOf(ast.EntityClassSignal), token.KwSignal),
		on(classOf(ast.EntityClassVariable), token.KwVariable),
		on(classOf(ast.EntityClassProcedure), token.KwProcedure),
		on(classOf(ast.EntityClassFunction), token.KwFunction),
	)
}

// ParseEntityNameList parses the target list of an attribute
// specification: designators with optional signatures, or the single
// keywords 'others' or 'all'. The list ends before the ':' that
// introduces the entity class.
func ParseEntityNameList(ts *TokenStream) ([]ast.EntityName, error) {
	return match(ts,
		on(func(token.Token) ([]ast.EntityName, error) {
			var names []ast.EntityName
			for {
				ident, err := ts.ExpectIdent()
				if err != nil {
					return nil, err
				}
				tag := &ast.EntityTag{
					Designator: ast.Designator{
						Kind: ast.DesignatorIdentifier,
						Text: ident.Name,
						Pos:  ident.Pos,
					},
				}
				if ts.PeekKind() == token.LBracket {
					sig, err := ParseSignature(ts)
					if err != nil {
						return nil, err
					}
					tag.Signature = &sig
				}
				names = append(names, ast.EntityName{Kind: ast.EntityNameName, Tag: tag})

				sep, err := ts.PeekExpect()
				if err != nil {
					return nil, err
				}
				switch sep.Kind {
				case token.Comma:
					ts.MoveAfter(sep)
				case token.Colon:
					return names, nil
				default:
					return nil, expectedError(sep, token.Comma, token.Colon)
				}
			}
		}, token.Ident),

		on(func(tok token.Token) ([]ast.EntityName, error) {
			ts.MoveAfter(tok)
			return []ast.EntityName{{Kind: ast.EntityNameOthers}}, nil
		}, token.KwOthers),

		on(func(tok token.Token) ([]ast.EntityName, error) {
			ts.MoveAfter(tok)
			return []ast.EntityName{{Kind: ast.EntityNameAll}}, nil
		}, token.KwAll),
	)
}

// ParseAttribute parses either form introduced by the 'attribute'
// keyword. A specification naming n entities is expanded into n
// declarations sharing the ident, class, and expression.
func ParseAttribute(ts *TokenStream) ([]ast.Declaration, error) {
	if _, err := ts.ExpectKind(token.KwAttribute); err != nil {
		return nil, err
	}
	ident, err := ts.ExpectIdent()
	if err != nil {
		return nil, err
	}

	return match(ts,
		on(func(tok token.Token) ([]ast.Declaration, error) {
			ts.MoveAfter(tok)
			typeMark, err := ParseSelectedName(ts)
			if err != nil {
				return nil, err
			}
			if _, err := ts.ExpectKind(token.Semicolon); err != nil {
				return nil, err
			}
			return []ast.Declaration{
				&ast.AttributeDeclaration{Ident: ident, TypeMark: typeMark},
			}, nil
		}, token.Colon),

		on(func(tok token.Token) ([]ast.Declaration, error) {
			ts.MoveAfter(tok)
			entityNames, err := ParseEntityNameList(ts)
			if err != nil {
				return nil, err
			}
			if _, err := ts.ExpectKind(token.Colon); err != nil {
				return nil, err
			}
			class, err := parseEntityClass(ts)
			if err != nil {
				return nil, err
			}
			if _, err := ts.ExpectKind(token.KwIs); err != nil {
				return nil, err
			}
			expr, err := ParseExpression(ts)
			if err != nil {
				return nil, err
			}
			if _, err := ts.ExpectKind(token.Semicolon); err != nil {
				return nil, err
			}

			decls := make([]ast.Declaration, len(entityNames))
			for i, name := range entityNames {
				decls[i] = &ast.AttributeSpecification{
					Ident:      ident,
					EntityName: name,
					Class:      class,
					Expr:       expr,
				}
			}
			return decls, nil
		}, token.KwOf),
	)
}
