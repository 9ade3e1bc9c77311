package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// ParseParameterInterfaceList parses a parenthesized parameter list.
// A declaration naming several identifiers is flattened into one
// interface object per identifier. Broken declarations are reported to
// rep and skipped up to the next ';' or ')' so the rest of the list
// still parses.
func ParseParameterInterfaceList(ts *TokenStream, rep diag.Reporter) ([]ast.InterfaceObject, error) {
	if _, err := ts.ExpectKind(token.LParen); err != nil {
		return nil, err
	}

	var objects []ast.InterfaceObject
	for {
		if _, ok := ts.PopIfKind(token.RParen); ok {
			return objects, nil
		}

		decl, err := parseInterfaceObject(ts)
		if err != nil {
			if serr, ok := err.(*SyntaxError); ok {
				diag.ReportError(rep, diag.SynBadInterfaceObject, serr.Pos, serr.Msg)
			} else {
				return nil, err
			}
			ts.resyncBefore(token.Semicolon, token.RParen)
		} else {
			objects = append(objects, decl...)
		}

		sep, err := ts.Expect()
		if err != nil {
			return nil, err
		}
		switch sep.Kind {
		case token.Semicolon:
			continue
		case token.RParen:
			return objects, nil
		default:
			return nil, expectedError(sep, token.Semicolon, token.RParen)
		}
	}
}

// parseInterfaceObject parses one interface declaration:
// "[class] ident{, ident} : [mode] type_mark [:= expr]".
func parseInterfaceObject(ts *TokenStream) ([]ast.InterfaceObject, error) {
	class, explicit, err := parseInterfaceClass(ts)
	if err != nil {
		return nil, err
	}

	idents := []ast.Ident{}
	for {
		ident, err := ts.ExpectIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
		if _, ok := ts.PopIfKind(token.Comma); !ok {
			break
		}
	}

	if _, err := ts.ExpectKind(token.Colon); err != nil {
		return nil, err
	}

	mode := parseMode(ts)
	if explicit && class == ast.ObjectConstant && mode != ast.ModeDefault && mode != ast.ModeIn {
		tok := ts.Peek()
		return nil, syntaxErrorf(tok.Span, diag.SynBadInterfaceObject,
			"constant parameter may only have mode in")
	}

	typeMark, err := ParseSelectedName(ts)
	if err != nil {
		return nil, err
	}

	var def ast.Expr
	if _, ok := ts.PopIfKind(token.ColonAssign); ok {
		def, err = ParseExpression(ts)
		if err != nil {
			return nil, err
		}
	}

	objects := make([]ast.InterfaceObject, len(idents))
	for i, ident := range idents {
		objects[i] = ast.InterfaceObject{
			Class:    class,
			Ident:    ident,
			Mode:     mode,
			TypeMark: typeMark,
			Default:  def,
		}
	}
	return objects, nil
}

// parseInterfaceClass consumes an optional leading object class
// keyword. Parameters without one default to constant; the mode, once
// known, refines the meaning but not the class stored here.
func parseInterfaceClass(ts *TokenStream) (ast.ObjectClass, bool, error) {
	switch ts.PeekKind() {
	case token.KwConstant:
		ts.skip()
		return ast.ObjectConstant, true, nil
	case token.KwVariable:
		ts.skip()
		return ast.ObjectVariable, true, nil
	case token.KwSignal:
		ts.skip()
		return ast.ObjectSignal, true, nil
	}
	return ast.ObjectConstant, false, nil
}

func parseMode(ts *TokenStream) ast.Mode {
	switch ts.PeekKind() {
	case token.KwIn:
		ts.skip()
		return ast.ModeIn
	case token.KwOut:
		ts.skip()
		return ast.ModeOut
	case token.KwInout:
		ts.skip()
		return ast.ModeInout
	case token.KwBuffer:
		ts.skip()
		return ast.ModeBuffer
	}
	return ast.ModeDefault
}
