package parser

import (
	"fmt"
	"sort"
	"strings"

	"vhdlparse/internal/diag"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// SyntaxError is a fatal parse error. It carries the span of the token
// that broke the grammar so callers can render a caret.
type SyntaxError struct {
	Pos  source.Span
	Code diag.Code
	Msg  string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxError(pos source.Span, code diag.Code, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Code: code, Msg: msg}
}

func syntaxErrorf(pos source.Span, code diag.Code, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Code: code, Msg: fmt.Sprintf(format, args...)}
}

// expectedError builds the canonical "expected X or Y, found Z" message.
// The wanted kinds are listed in a stable order regardless of how the
// grammar enumerated them.
func expectedError(found token.Token, want ...token.Kind) *SyntaxError {
	code := diag.SynUnexpectedToken
	if found.Kind == token.EOF {
		code = diag.SynUnexpectedEOF
	}
	return syntaxErrorf(found.Span, code, "expected %s, found %s", joinLabels(want), found.Kind.Label())
}

func joinLabels(kinds []token.Kind) string {
	if len(kinds) == 1 {
		return kinds[0].Label()
	}
	labels := make([]string, 0, len(kinds))
	seen := make(map[token.Kind]bool, len(kinds))
	sorted := make([]token.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			sorted = append(sorted, k)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, k := range sorted {
		labels = append(labels, k.Label())
	}
	if len(labels) == 1 {
		return labels[0]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
}

// reportError forwards a fatal error to the diagnostic sink. Non-syntax
// errors are reported at the stream's current position.
func reportError(rep diag.Reporter, ts *TokenStream, err error) {
	if serr, ok := err.(*SyntaxError); ok {
		diag.ReportError(rep, serr.Code, serr.Pos, serr.Msg)
		return
	}
	diag.ReportError(rep, diag.SynUnexpectedToken, ts.Peek().Span, err.Error())
}
