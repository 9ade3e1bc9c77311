package parser

import (
	"testing"

	"vhdlparse/internal/ast"
	"vhdlparse/internal/token"
)

// parseStatements feeds src terminated by "end" and returns the parsed
// statements.
func parseStatements(t *testing.T, src string) (*fixture, []ast.LabeledSequentialStatement) {
	t.Helper()
	f := mkFixture(t, src+" end")
	stmts, endToken, err := ParseLabeledSequentialStatements(f.ts, f.rep)
	if err != nil {
		t.Fatalf("ParseLabeledSequentialStatements(%q): %v", src, err)
	}
	if endToken.Kind != token.KwEnd {
		t.Fatalf("end token = %v, want KwEnd", endToken.Kind)
	}
	return f, stmts
}

func TestStatements_Null(t *testing.T) {
	f, stmts := parseStatements(t, "null;")
	f.expectNoDiagnostics(t)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	if _, ok := stmts[0].Statement.(*ast.NullStatement); !ok {
		t.Fatalf("statement = %T", stmts[0].Statement)
	}
	if stmts[0].Label != nil {
		t.Errorf("label = %+v, want nil", stmts[0].Label)
	}
}

func TestStatements_Return(t *testing.T) {
	f, stmts := parseStatements(t, "return; return a + 1;")
	f.expectNoDiagnostics(t)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	bare := stmts[0].Statement.(*ast.ReturnStatement)
	if bare.Expr != nil {
		t.Errorf("bare return has expr %v", bare.Expr)
	}
	valued := stmts[1].Statement.(*ast.ReturnStatement)
	if got := exprString(valued.Expr); got != "(a + 1)" {
		t.Errorf("return expr = %s", got)
	}
}

func TestStatements_Assignments(t *testing.T) {
	f, stmts := parseStatements(t, "v := 1; s <= v * 2;")
	f.expectNoDiagnostics(t)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	va := stmts[0].Statement.(*ast.VariableAssignment)
	if va.Target.String() != "v" || exprString(va.Expr) != "1" {
		t.Errorf("variable assignment = %s := %s", va.Target.String(), exprString(va.Expr))
	}
	sa := stmts[1].Statement.(*ast.SignalAssignment)
	if sa.Target.String() != "s" || exprString(sa.Expr) != "(v * 2)" {
		t.Errorf("signal assignment = %s <= %s", sa.Target.String(), exprString(sa.Expr))
	}
}

func TestStatements_ProcedureCalls(t *testing.T) {
	f, stmts := parseStatements(t, "notify; lib.log(1, x);")
	f.expectNoDiagnostics(t)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	bare := stmts[0].Statement.(*ast.ProcedureCall)
	if bare.Name.String() != "notify" || len(bare.Args) != 0 {
		t.Errorf("call = %+v", bare)
	}
	args := stmts[1].Statement.(*ast.ProcedureCall)
	if args.Name.String() != "lib.log" || len(args.Args) != 2 {
		t.Errorf("call = %+v", args)
	}
}

func TestStatements_Label(t *testing.T) {
	f, stmts := parseStatements(t, "lbl: return 0;")
	f.expectNoDiagnostics(t)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	if stmts[0].Label == nil || stmts[0].Label.Name != "lbl" {
		t.Fatalf("label = %+v", stmts[0].Label)
	}
	if _, ok := stmts[0].Statement.(*ast.ReturnStatement); !ok {
		t.Errorf("statement = %T", stmts[0].Statement)
	}
}

func TestStatements_RecoversPerStatement(t *testing.T) {
	f, stmts := parseStatements(t, "v := ; return 0;")
	if !f.bag.HasErrors() {
		t.Error("broken statement produced no diagnostic")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1 surviving", len(stmts))
	}
	if _, ok := stmts[0].Statement.(*ast.ReturnStatement); !ok {
		t.Errorf("survivor = %T", stmts[0].Statement)
	}
}

func TestStatements_TerminatorIsReturned(t *testing.T) {
	for _, term := range []string{"end", "else", "elsif", "when"} {
		t.Run(term, func(t *testing.T) {
			f := mkFixture(t, "null; "+term)
			stmts, endToken, err := ParseLabeledSequentialStatements(f.ts, f.rep)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(stmts) != 1 {
				t.Errorf("statements = %d, want 1", len(stmts))
			}
			if endToken.Text != term {
				t.Errorf("terminator = %q, want %q", endToken.Text, term)
			}
			// The terminator is consumed.
			if got := f.ts.PeekKind(); got != token.EOF {
				t.Errorf("PeekKind after terminator = %v, want EOF", got)
			}
		})
	}
}
