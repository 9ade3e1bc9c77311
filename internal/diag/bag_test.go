package diag

import (
	"testing"

	"vhdlparse/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken}) {
		t.Fatal("first Add must succeed")
	}
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: SynInfo}) {
		t.Fatal("second Add must succeed")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedEOF}) {
		t.Fatal("third Add must hit the limit")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() {
		t.Error("warning-only bag must not report errors")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	spanA := source.Span{File: 0, Start: 10, End: 12}
	spanB := source.Span{File: 0, Start: 2, End: 4}

	bag.Add(Diagnostic{Severity: SevWarning, Code: SynInfo, Primary: spanA})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: spanB})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: spanB})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup Len = %d, want 2", len(items))
	}
	if items[0].Primary != spanB || items[1].Primary != spanA {
		t.Errorf("sort order wrong: %+v", items)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{SynUnexpectedToken, "SYN2001"},
		{SynDuplicateReturn, "SYN2003"},
		{LexUnterminatedString, "LEX1002"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
