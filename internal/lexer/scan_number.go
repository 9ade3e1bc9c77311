package lexer

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// scanAbstractLiteral scans decimal abstract literals:
//
//	integer [ . integer ] [ e|E [+|-] integer ]
//
// with underscores permitted between digits. A point makes the literal a
// RealLit; a bare exponent keeps it an IntLit. Based literals (2#1010#) are
// not produced by this front end.
func (lx *Lexer) scanAbstractLiteral() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	lx.scanDigits()

	// fractional part
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.RealLit
		lx.cursor.Bump() // '.'
		lx.scanDigits()
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "10e" was an identifier boundary, not an exponent
			lx.cursor.Reset(mark)
		} else {
			lx.scanDigits()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	// a trailing underscore or a letter glued to the literal is malformed
	if text[len(text)-1] == '_' || isLetter(lx.cursor.Peek()) {
		for isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadAbstractLiteral, sp, "malformed abstract literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanDigits() {
	for {
		b := lx.cursor.Peek()
		if isDec(b) {
			lx.cursor.Bump()
			continue
		}
		// underscore only between digits
		if b == '_' {
			if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			lx.cursor.Bump()
			return
		}
		return
	}
}
