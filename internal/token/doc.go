// Package token defines lexical token kinds and trivia for the VHDL front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), so string
//     literals keep their quotes and extended identifiers their backslashes.
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are case-insensitive per the language standard; the lexer folds
//     before lookup and Token.Text preserves the source spelling.
//   - Comments and whitespace never appear in the main token stream; they are
//     carried as leading Trivia on the following token.
package token
