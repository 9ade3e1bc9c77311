package parser

import (
	"strings"
	"testing"

	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/lexer"
	"vhdlparse/internal/source"
)

// fixture wires one virtual source file to a token stream and a
// diagnostic bag, with helpers for locating spans by substring.
type fixture struct {
	src string
	id  source.FileID
	ts  *TokenStream
	bag *diag.Bag
	rep diag.Reporter
}

func mkFixture(t *testing.T, src string) *fixture {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	return &fixture{
		src: src,
		id:  id,
		ts:  NewTokenStream(lx),
		bag: bag,
		rep: rep,
	}
}

// span returns the span of the nth occurrence of substr, counting from
// one.
func (f *fixture) span(t *testing.T, substr string, nth int) source.Span {
	t.Helper()
	off := -1
	for i := 0; i < nth; i++ {
		next := strings.Index(f.src[off+1:], substr)
		if next < 0 {
			t.Fatalf("occurrence %d of %q not found in %q", nth, substr, f.src)
		}
		off += 1 + next
	}
	start := uint32(off)
	return source.Span{File: f.id, Start: start, End: start + uint32(len(substr))}
}

func (f *fixture) ident(t *testing.T, name string) ast.Ident {
	t.Helper()
	return ast.Ident{Name: name, Pos: f.span(t, name, 1)}
}

func (f *fixture) expectNoDiagnostics(t *testing.T) {
	t.Helper()
	for _, d := range f.bag.Items() {
		t.Errorf("unexpected diagnostic: %s", d.Message)
	}
}

func wantSyntaxError(t *testing.T, err error, pos source.Span, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", msg)
	}
	serr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if serr.Msg != msg {
		t.Errorf("message = %q, want %q", serr.Msg, msg)
	}
	if serr.Pos != pos {
		t.Errorf("pos = %v, want %v", serr.Pos, pos)
	}
}
