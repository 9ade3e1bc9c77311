package parser

import (
	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/lexer"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// TokenStream is the parser's view of the lexer: one token of lookahead
// plus the span of the last consumed token, used to position errors at
// end of file.
type TokenStream struct {
	lx   *lexer.Lexer
	cur  token.Token
	last source.Span
}

// NewTokenStream primes the lookahead from lx.
func NewTokenStream(lx *lexer.Lexer) *TokenStream {
	ts := &TokenStream{lx: lx}
	ts.cur = lx.Next()
	ts.last = source.Span{File: ts.cur.Span.File, Start: ts.cur.Span.Start, End: ts.cur.Span.Start}
	return ts
}

// Peek returns the current token without consuming it. At end of input
// it returns the sticky EOF token.
func (ts *TokenStream) Peek() token.Token {
	return ts.cur
}

// PeekKind returns the kind of the current token.
func (ts *TokenStream) PeekKind() token.Kind {
	return ts.cur.Kind
}

// MoveAfter commits past the most recently peeked token. The argument
// records the consumed span for later EOF diagnostics; passing a token
// other than the current one is a grammar bug.
func (ts *TokenStream) MoveAfter(tok token.Token) {
	ts.last = tok.Span
	ts.cur = ts.lx.Next()
}

// skip consumes the current token.
func (ts *TokenStream) skip() token.Token {
	tok := ts.cur
	ts.MoveAfter(tok)
	return tok
}

// PeekExpect returns the current token, failing on end of file. The
// error is positioned just after the last consumed token.
func (ts *TokenStream) PeekExpect() (token.Token, error) {
	if ts.cur.Kind == token.EOF {
		return token.Token{}, syntaxError(ts.last.After(), diag.SynUnexpectedEOF, "unexpected end of file")
	}
	return ts.cur, nil
}

// Expect consumes and returns the current token, failing on end of file.
func (ts *TokenStream) Expect() (token.Token, error) {
	tok, err := ts.PeekExpect()
	if err != nil {
		return token.Token{}, err
	}
	ts.MoveAfter(tok)
	return tok, nil
}

// ExpectKind consumes the current token and checks that it has the
// wanted kind.
func (ts *TokenStream) ExpectKind(kind token.Kind) (token.Token, error) {
	tok := ts.cur
	if tok.Kind != kind {
		return token.Token{}, expectedError(tok, kind)
	}
	ts.MoveAfter(tok)
	return tok, nil
}

// ExpectIdent consumes an identifier token and returns it as an AST
// ident.
func (ts *TokenStream) ExpectIdent() (ast.Ident, error) {
	tok, err := ts.ExpectKind(token.Ident)
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Name: tok.Text, Pos: tok.Span}, nil
}

// PopIfKind consumes the current token only when it has the wanted
// kind.
func (ts *TokenStream) PopIfKind(kind token.Kind) (token.Token, bool) {
	if ts.cur.Kind != kind {
		return token.Token{}, false
	}
	return ts.skip(), true
}

// resyncPast drops tokens until one of the stop kinds is consumed or
// end of file is hit. The consumed stop token is returned when found.
func (ts *TokenStream) resyncPast(stops ...token.Kind) (token.Token, bool) {
	for ts.cur.Kind != token.EOF {
		tok := ts.skip()
		for _, stop := range stops {
			if tok.Kind == stop {
				return tok, true
			}
		}
	}
	return token.Token{}, false
}

// resyncBefore drops tokens until the current token is one of the stop
// kinds or end of file; the stop token itself is left in the stream.
func (ts *TokenStream) resyncBefore(stops ...token.Kind) {
	for ts.cur.Kind != token.EOF {
		for _, stop := range stops {
			if ts.cur.Kind == stop {
				return
			}
		}
		ts.skip()
	}
}
