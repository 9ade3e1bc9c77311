package lexer

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - ' ' and '\t' runs coalesce into one TriviaSpace
//   - '\n' runs coalesce into one TriviaNewline
//   - "--" up to the newline -> TriviaLineComment
//   - "/* ... */" -> TriviaBlockComment (no nesting; unterminated is reported
//     and cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// "--" line comment
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '-' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaLineComment,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// "/* ... */" delimited comment
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if c0, c1, ok2 := lx.cursor.Peek2(); ok2 && c0 == '*' && c1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			if !closed {
				lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaBlockComment,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		break
	}
}
