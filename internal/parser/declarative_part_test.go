package parser

import (
	"testing"

	"vhdlparse/internal/ast"
	"vhdlparse/internal/token"
)

func parseDeclarations(t *testing.T, src string) (*fixture, []ast.Declaration) {
	t.Helper()
	f := mkFixture(t, src)
	decls, err := ParseDeclarativePart(f.ts, f.rep)
	if err != nil {
		t.Fatalf("ParseDeclarativePart(%q): %v", src, err)
	}
	return f, decls
}

func TestDeclarativePart_Objects(t *testing.T) {
	f, decls := parseDeclarations(t, `
constant zero : natural := 0;
variable count : natural;
signal clk : std_logic;
begin`)
	f.expectNoDiagnostics(t)
	if len(decls) != 3 {
		t.Fatalf("got %d declarations, want 3", len(decls))
	}
	classes := []ast.ObjectClass{ast.ObjectConstant, ast.ObjectVariable, ast.ObjectSignal}
	for i, want := range classes {
		obj, ok := decls[i].(*ast.ObjectDeclaration)
		if !ok {
			t.Fatalf("declaration %d = %T", i, decls[i])
		}
		if obj.Class != want {
			t.Errorf("declaration %d class = %v, want %v", i, obj.Class, want)
		}
	}
	if decls[1].(*ast.ObjectDeclaration).Expr != nil {
		t.Error("variable without default has expr")
	}
}

func TestDeclarativePart_StopsBeforeTerminator(t *testing.T) {
	for _, term := range []string{"begin", "end"} {
		t.Run(term, func(t *testing.T) {
			f, decls := parseDeclarations(t, "constant c : natural := 0; "+term)
			if len(decls) != 1 {
				t.Fatalf("got %d declarations, want 1", len(decls))
			}
			// The terminator stays in the stream for the caller.
			if got := f.ts.Peek().Text; got != term {
				t.Errorf("next token = %q, want %q", got, term)
			}
		})
	}
}

func TestDeclarativePart_MixedItems(t *testing.T) {
	f, decls := parseDeclarations(t, `
attribute foo : lib.name;
attribute attr of a, b : signal is 1;
procedure p;
impure function f return natural;
begin`)
	f.expectNoDiagnostics(t)
	// The two-name specification expands into two declarations.
	if len(decls) != 5 {
		t.Fatalf("got %d declarations, want 5", len(decls))
	}
	if _, ok := decls[0].(*ast.AttributeDeclaration); !ok {
		t.Errorf("decls[0] = %T", decls[0])
	}
	if _, ok := decls[1].(*ast.AttributeSpecification); !ok {
		t.Errorf("decls[1] = %T", decls[1])
	}
	if _, ok := decls[3].(*ast.ProcedureSpecification); !ok {
		t.Errorf("decls[3] = %T", decls[3])
	}
	if _, ok := decls[4].(*ast.FunctionSpecification); !ok {
		t.Errorf("decls[4] = %T", decls[4])
	}
}

func TestDeclarativePart_NestedSubprogramBody(t *testing.T) {
	f, decls := parseDeclarations(t, `
function helper(x : natural) return natural is
begin
  return x + 1;
end function;
begin`)
	f.expectNoDiagnostics(t)
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	body, ok := decls[0].(*ast.SubprogramBody)
	if !ok {
		t.Fatalf("decls[0] = %T", decls[0])
	}
	if len(body.Statements) != 1 {
		t.Errorf("nested body statements = %d, want 1", len(body.Statements))
	}
	// The outer part stops at its own begin.
	if got := f.ts.PeekKind(); got != token.KwBegin {
		t.Errorf("next token = %v, want KwBegin", got)
	}
}

func TestDeclarativePart_RecoversPerItem(t *testing.T) {
	f, decls := parseDeclarations(t, `
constant broken := 0;
constant ok : natural := 1;
begin`)
	if !f.bag.HasErrors() {
		t.Error("broken item produced no diagnostic")
	}
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1 surviving", len(decls))
	}
	obj := decls[0].(*ast.ObjectDeclaration)
	if obj.Ident.Name != "ok" {
		t.Errorf("survivor = %q", obj.Ident.Name)
	}
}
