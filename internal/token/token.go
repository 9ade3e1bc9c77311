package token

import (
	"strings"

	"vhdlparse/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an abstract, character, or string
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	_, ok := keywordText[t.Kind]
	return ok
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// StringValue returns the decoded content of a string literal: quotes
// stripped and doubled quotes collapsed. ok is false for other kinds.
func (t Token) StringValue() (value string, ok bool) {
	if t.Kind != StringLit || len(t.Text) < 2 {
		return "", false
	}
	inner := t.Text[1 : len(t.Text)-1]
	return strings.ReplaceAll(inner, `""`, `"`), true
}

// CharValue returns the character of a character literal. ok is false for
// other kinds.
func (t Token) CharValue() (value byte, ok bool) {
	if t.Kind != CharLit || len(t.Text) != 3 {
		return 0, false
	}
	return t.Text[1], true
}
