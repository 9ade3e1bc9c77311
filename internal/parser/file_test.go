package parser

import (
	"testing"

	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/source"
)

func parseFileText(t *testing.T, src string) ([]ast.Declaration, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	bag := diag.NewBag(16)
	decls := ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})
	return decls, bag
}

func TestParseFile_Declarations(t *testing.T) {
	decls, bag := parseFileText(t, `
-- widths for the register file
attribute reg_width : natural;
attribute reg_width of rf0, rf1 : signal is 32;

procedure reset;

function next_state(cur : natural) return natural is
  constant step : natural := 1;
begin
  return cur + step;
end function next_state;
`)
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diagnostic: %s", d.Message)
		}
		t.Fatal("unexpected diagnostics")
	}
	if len(decls) != 5 {
		t.Fatalf("got %d declarations, want 5", len(decls))
	}
	if _, ok := decls[4].(*ast.SubprogramBody); !ok {
		t.Errorf("decls[4] = %T, want *ast.SubprogramBody", decls[4])
	}
}

func TestParseFile_RecoversAcrossItems(t *testing.T) {
	decls, bag := parseFileText(t, `
procedure first;
garbage tokens here;
procedure second;
`)
	if !bag.HasErrors() {
		t.Error("garbage produced no diagnostic")
	}
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2 surviving", len(decls))
	}
	names := []string{"first", "second"}
	for i, want := range names {
		proc, ok := decls[i].(*ast.ProcedureSpecification)
		if !ok {
			t.Fatalf("decls[%d] = %T", i, decls[i])
		}
		if proc.Designator.Text != want {
			t.Errorf("decls[%d] = %q, want %q", i, proc.Designator.Text, want)
		}
	}
}

func TestParseFile_EmptyInput(t *testing.T) {
	decls, bag := parseFileText(t, "  -- nothing but a comment\n")
	if bag.HasErrors() {
		t.Error("empty input produced diagnostics")
	}
	if len(decls) != 0 {
		t.Errorf("got %d declarations, want 0", len(decls))
	}
}
