package lexer

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// scanString scans "..." where a doubled quote stands for one quote.
// Text keeps the delimiters; token.Token.StringValue decodes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			// doubled quote continues the literal
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanCharLiteral scans 'x'. The caller has already verified the three-byte
// shape via isCharLiteral.
func (lx *Lexer) scanCharLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''
	lx.cursor.Bump() // the character
	lx.cursor.Bump() // '\''
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}
