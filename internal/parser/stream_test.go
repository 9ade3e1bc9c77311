package parser

import (
	"testing"

	"vhdlparse/internal/token"
)

func TestTokenStream_PeekDoesNotConsume(t *testing.T) {
	f := mkFixture(t, "procedure foo;")
	if got := f.ts.PeekKind(); got != token.KwProcedure {
		t.Fatalf("PeekKind = %v, want KwProcedure", got)
	}
	if got := f.ts.PeekKind(); got != token.KwProcedure {
		t.Fatalf("second PeekKind = %v, want KwProcedure", got)
	}
}

func TestTokenStream_MoveAfterCommits(t *testing.T) {
	f := mkFixture(t, "procedure foo;")
	tok := f.ts.Peek()
	f.ts.MoveAfter(tok)
	if got := f.ts.PeekKind(); got != token.Ident {
		t.Fatalf("PeekKind after MoveAfter = %v, want Ident", got)
	}
}

func TestTokenStream_ExpectKind(t *testing.T) {
	f := mkFixture(t, "foo;")
	tok, err := f.ts.ExpectKind(token.Ident)
	if err != nil {
		t.Fatalf("ExpectKind(Ident): %v", err)
	}
	if tok.Text != "foo" {
		t.Errorf("Text = %q, want foo", tok.Text)
	}

	_, err = f.ts.ExpectKind(token.Colon)
	wantSyntaxError(t, err, f.span(t, ";", 1), "expected ':', found ';'")
	// The mismatching token stays in the stream.
	if got := f.ts.PeekKind(); got != token.Semicolon {
		t.Fatalf("PeekKind after failed ExpectKind = %v, want Semicolon", got)
	}
}

func TestTokenStream_ExpectIdent(t *testing.T) {
	f := mkFixture(t, "foo bar")
	ident, err := f.ts.ExpectIdent()
	if err != nil {
		t.Fatalf("ExpectIdent: %v", err)
	}
	if ident.Name != "foo" {
		t.Errorf("Name = %q, want foo", ident.Name)
	}
	if ident.Pos != f.span(t, "foo", 1) {
		t.Errorf("Pos = %v, want %v", ident.Pos, f.span(t, "foo", 1))
	}
}

func TestTokenStream_ExpectIdentRejectsKeyword(t *testing.T) {
	f := mkFixture(t, "end")
	_, err := f.ts.ExpectIdent()
	wantSyntaxError(t, err, f.span(t, "end", 1), "expected identifier, found 'end'")
}

func TestTokenStream_PopIfKind(t *testing.T) {
	f := mkFixture(t, "; foo")
	if _, ok := f.ts.PopIfKind(token.Comma); ok {
		t.Fatal("PopIfKind(Comma) consumed a semicolon")
	}
	if _, ok := f.ts.PopIfKind(token.Semicolon); !ok {
		t.Fatal("PopIfKind(Semicolon) did not consume")
	}
	if got := f.ts.PeekKind(); got != token.Ident {
		t.Fatalf("PeekKind = %v, want Ident", got)
	}
}

func TestTokenStream_EOFIsSticky(t *testing.T) {
	f := mkFixture(t, "foo")
	f.ts.skip()
	for i := 0; i < 3; i++ {
		if got := f.ts.PeekKind(); got != token.EOF {
			t.Fatalf("PeekKind after end = %v, want EOF", got)
		}
	}
}

func TestTokenStream_PeekExpectAtEOF(t *testing.T) {
	f := mkFixture(t, "foo")
	f.ts.skip()
	_, err := f.ts.PeekExpect()
	if err == nil {
		t.Fatal("PeekExpect at end of input succeeded")
	}
	serr := err.(*SyntaxError)
	// The error sits just past the last consumed token.
	want := f.span(t, "foo", 1)
	if serr.Pos.Start != want.End || !serr.Pos.Empty() {
		t.Errorf("error pos = %v, want empty span at %d", serr.Pos, want.End)
	}
}
