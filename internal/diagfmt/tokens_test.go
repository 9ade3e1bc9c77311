package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"vhdlparse/internal/diag"
	"vhdlparse/internal/lexer"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

func lexTokens(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, fs
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := lexTokens(t, "-- header\nprocedure foo;")

	var out strings.Builder
	if err := FormatTokensPretty(&out, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	got := out.String()

	if !strings.Contains(got, "KwProcedure") {
		t.Errorf("missing keyword kind:\n%s", got)
	}
	if !strings.Contains(got, `"foo"`) {
		t.Errorf("missing token text:\n%s", got)
	}
	if !strings.Contains(got, "LineComment") {
		t.Errorf("missing leading trivia:\n%s", got)
	}
	if !strings.Contains(got, "at 2:1-2:10") {
		t.Errorf("missing position of keyword:\n%s", got)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := lexTokens(t, "foo;")

	var out strings.Builder
	if err := FormatTokensJSON(&out, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d tokens, want 3 including EOF", len(decoded))
	}
	if decoded[0].Kind != "Ident" || decoded[0].Text != "foo" {
		t.Errorf("first token = %+v", decoded[0])
	}
	if decoded[2].Kind != "EOF" {
		t.Errorf("last token = %+v", decoded[2])
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte("constant ;\n"))
	bag := diag.NewBag(16)
	diag.ReportError(diag.BagReporter{Bag: bag}, diag.SynExpectIdentifier,
		source.Span{File: id, Start: 9, End: 10}, "expected identifier, found ';'")

	var out strings.Builder
	if err := JSON(&out, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 || len(decoded.Diagnostics) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	d := decoded.Diagnostics[0]
	if d.Code != "SYN2004" || d.Severity != "ERROR" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 10 {
		t.Errorf("location = %+v", d.Location)
	}
}
