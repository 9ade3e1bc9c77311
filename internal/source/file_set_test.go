package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("adder.vhd", []byte("attribute foo : bar;"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("adder.vhd")
	if !exists {
		t.Error("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID to be %d, got %d", id1, latestID)
	}

	// Adding the same path again yields a new version.
	id2 := fs.Add("adder.vhd", []byte("attribute foo : baz;"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latestID, _ = fs.GetLatest("adder.vhd")
	if latestID != id2 {
		t.Errorf("expected latest ID to be %d, got %d", id2, latestID)
	}

	if string(fs.Get(id1).Content) != "attribute foo : bar;" {
		t.Error("old version must stay reachable")
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte("procedure p;\nfunction f\n  return bit;\n"))

	tests := []struct {
		name      string
		span      Span
		wantStart LineCol
		wantEnd   LineCol
	}{
		{
			name:      "first line",
			span:      Span{File: id, Start: 0, End: 9},
			wantStart: LineCol{Line: 1, Col: 1},
			wantEnd:   LineCol{Line: 1, Col: 10},
		},
		{
			name:      "second line",
			span:      Span{File: id, Start: 13, End: 21},
			wantStart: LineCol{Line: 2, Col: 1},
			wantEnd:   LineCol{Line: 2, Col: 9},
		},
		{
			name:      "third line with indent",
			span:      Span{File: id, Start: 26, End: 32},
			wantStart: LineCol{Line: 3, Col: 3},
			wantEnd:   LineCol{Line: 3, Col: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Resolve() = %+v..%+v, want %+v..%+v", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.vhd", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.vhd", []byte("a\nb"))
	if fs.Get(id).Flags&FileNormalizedCRLF != 0 {
		t.Error("virtual add must not set CRLF flag")
	}

	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Error("expected CRLF replacement")
	}
	if string(out) != "a\nb\rc" {
		t.Errorf("normalizeCRLF = %q", out)
	}
}
