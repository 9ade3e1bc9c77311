package lexer

// Byte classifiers. VHDL identifiers and literals are plain ASCII, so no rune
// decoding is needed here.

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isGraphic matches the printable characters allowed in character and string
// literals.
func isGraphic(b byte) bool {
	return b >= 0x20 && b != 0x7F
}

// isCharLiteral decides whether a leading apostrophe starts a character
// literal ('x') rather than a tick. The lookahead is exactly three bytes:
// quote, one graphic character, quote.
func (lx *Lexer) isCharLiteral() bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	return ok && b0 == '\'' && isGraphic(b1) && b2 == '\''
}
