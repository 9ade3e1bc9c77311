package lexer

import (
	"fmt"

	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// scanPunct scans delimiters and operators, longest match first.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()

	var kind token.Kind
	switch {
	case lx.try2('*', '*'):
		kind = token.Pow
	case lx.try2('/', '='):
		kind = token.Neq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('<', '>'):
		kind = token.Box
	case lx.try2(':', '='):
		kind = token.ColonAssign
	case lx.try2('=', '>'):
		kind = token.Arrow

	default:
		b := lx.cursor.Bump()
		switch b {
		case '+':
			kind = token.Plus
		case '-':
			kind = token.Minus
		case '*':
			kind = token.Star
		case '/':
			kind = token.Slash
		case '&':
			kind = token.Amp
		case '=':
			kind = token.Eq
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case '|':
			kind = token.Bar
		case ':':
			kind = token.Colon
		case ';':
			kind = token.Semicolon
		case ',':
			kind = token.Comma
		case '.':
			kind = token.Dot
		case '\'':
			kind = token.Tick
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		default:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", b))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// try2 consumes two bytes when they match exactly.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
