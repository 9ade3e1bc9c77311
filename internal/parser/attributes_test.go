package parser

import (
	"testing"

	"vhdlparse/internal/ast"
)

func parseAttributeText(t *testing.T, src string) (*fixture, []ast.Declaration) {
	t.Helper()
	f := mkFixture(t, src)
	decls, err := ParseAttribute(f.ts)
	if err != nil {
		t.Fatalf("ParseAttribute(%q): %v", src, err)
	}
	f.expectNoDiagnostics(t)
	return f, decls
}

func TestParseAttribute_Declaration(t *testing.T) {
	f, decls := parseAttributeText(t, "attribute foo : lib.name;")
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	decl, ok := decls[0].(*ast.AttributeDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.AttributeDeclaration", decls[0])
	}
	if decl.Ident != f.ident(t, "foo") {
		t.Errorf("ident = %+v", decl.Ident)
	}
	if got := decl.TypeMark.String(); got != "lib.name" {
		t.Errorf("type mark = %q", got)
	}
}

func TestParseAttribute_Specification(t *testing.T) {
	f, decls := parseAttributeText(t, "attribute attr_name of foo : signal is 0+1;")
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	spec, ok := decls[0].(*ast.AttributeSpecification)
	if !ok {
		t.Fatalf("got %T, want *ast.AttributeSpecification", decls[0])
	}
	if spec.Ident != f.ident(t, "attr_name") {
		t.Errorf("ident = %+v", spec.Ident)
	}
	if spec.Class != ast.EntityClassSignal {
		t.Errorf("class = %v, want signal", spec.Class)
	}
	if spec.EntityName.Kind != ast.EntityNameName {
		t.Fatalf("entity name kind = %v", spec.EntityName.Kind)
	}
	tag := spec.EntityName.Tag
	if tag.Designator.Kind != ast.DesignatorIdentifier || tag.Designator.Text != "foo" {
		t.Errorf("designator = %+v", tag.Designator)
	}
	if tag.Signature != nil {
		t.Errorf("signature = %+v, want nil", tag.Signature)
	}
	if got := exprString(spec.Expr); got != "(0 + 1)" {
		t.Errorf("expr = %s", got)
	}
}

func TestParseAttribute_SpecificationList(t *testing.T) {
	_, decls := parseAttributeText(t, "attribute attr_name of foo, bar : signal is 0+1;")
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	first := decls[0].(*ast.AttributeSpecification)
	second := decls[1].(*ast.AttributeSpecification)
	if first.EntityName.Tag.Designator.Text != "foo" {
		t.Errorf("first designator = %q", first.EntityName.Tag.Designator.Text)
	}
	if second.EntityName.Tag.Designator.Text != "bar" {
		t.Errorf("second designator = %q", second.EntityName.Tag.Designator.Text)
	}
	// The expanded nodes share ident, class, and expression.
	if first.Ident != second.Ident {
		t.Errorf("idents differ: %+v vs %+v", first.Ident, second.Ident)
	}
	if first.Class != second.Class {
		t.Errorf("classes differ")
	}
	if first.Expr != second.Expr {
		t.Errorf("expressions differ")
	}
}

func TestParseAttribute_SpecificationAll(t *testing.T) {
	_, decls := parseAttributeText(t, "attribute attr_name of all : signal is 0+1;")
	spec := decls[0].(*ast.AttributeSpecification)
	if spec.EntityName.Kind != ast.EntityNameAll {
		t.Errorf("entity name kind = %v, want all", spec.EntityName.Kind)
	}
	if spec.EntityName.Tag != nil {
		t.Errorf("tag = %+v, want nil", spec.EntityName.Tag)
	}
}

func TestParseAttribute_SpecificationOthers(t *testing.T) {
	_, decls := parseAttributeText(t, "attribute attr_name of others : signal is 0+1;")
	spec := decls[0].(*ast.AttributeSpecification)
	if spec.EntityName.Kind != ast.EntityNameOthers {
		t.Errorf("entity name kind = %v, want others", spec.EntityName.Kind)
	}
}

func TestParseAttribute_SpecificationWithSignature(t *testing.T) {
	_, decls := parseAttributeText(t, "attribute attr_name of foo[return natural] : signal is 0+1;")
	spec := decls[0].(*ast.AttributeSpecification)
	tag := spec.EntityName.Tag
	if tag.Signature == nil {
		t.Fatal("signature missing")
	}
	if tag.Signature.Kind != ast.SignatureFunction {
		t.Errorf("signature kind = %v, want function", tag.Signature.Kind)
	}
	if got := tag.Signature.Return.String(); got != "natural" {
		t.Errorf("return mark = %q", got)
	}
	if len(tag.Signature.TypeMarks) != 0 {
		t.Errorf("type marks = %d, want 0", len(tag.Signature.TypeMarks))
	}
}

func TestParseAttribute_EntityClasses(t *testing.T) {
	classes := map[string]ast.EntityClass{
		"entity":        ast.EntityClassEntity,
		"architecture":  ast.EntityClassArchitecture,
		"configuration": ast.EntityClassConfiguration,
		"package":       ast.EntityClassPackage,
		"signal":        ast.EntityClassSignal,
		"variable":      ast.EntityClassVariable,
		"procedure":     ast.EntityClassProcedure,
		"function":      ast.EntityClassFunction,
	}
	for kw, want := range classes {
		t.Run(kw, func(t *testing.T) {
			_, decls := parseAttributeText(t, "attribute a of b : "+kw+" is 0;")
			spec := decls[0].(*ast.AttributeSpecification)
			if spec.Class != want {
				t.Errorf("class = %v, want %v", spec.Class, want)
			}
		})
	}
}

func TestParseAttribute_BadEntityClass(t *testing.T) {
	f := mkFixture(t, "attribute a of b : banana is 0;")
	_, err := ParseAttribute(f.ts)
	if err == nil {
		t.Fatal("expected error for unknown entity class")
	}
	serr := err.(*SyntaxError)
	if serr.Pos != f.span(t, "banana", 1) {
		t.Errorf("error pos = %v, want at banana", serr.Pos)
	}
}

func TestParseAttribute_BadEntityNameList(t *testing.T) {
	f := mkFixture(t, "attribute a of 0 : signal is 1;")
	_, err := ParseAttribute(f.ts)
	if err == nil {
		t.Fatal("expected error for bad entity name")
	}
	serr := err.(*SyntaxError)
	if serr.Pos != f.span(t, "0", 1) {
		t.Errorf("error pos = %v, want at the literal", serr.Pos)
	}
}
