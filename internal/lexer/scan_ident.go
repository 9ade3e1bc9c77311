package lexer

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// scanIdentOrKeyword scans a basic identifier and checks it against the
// reserved words. Keywords are case-insensitive; Token.Text keeps the source
// spelling.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanExtendedIdent scans \...\ where a doubled backslash stands for one
// backslash inside the name. Text keeps the delimiters.
func (lx *Lexer) scanExtendedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			// doubled backslash continues the identifier
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Ident, Span: sp, Text: lx.text(sp)}
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedExtendedID, sp, "unterminated extended identifier")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
