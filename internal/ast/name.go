package ast

import (
	"strings"

	"vhdlparse/internal/source"
)

// Ident is an identifier with the span of its token.
type Ident struct {
	Name string
	Pos  source.Span
}

// SelectedName is a possibly dot-separated name such as lib.pkg.t, used for
// type marks and return types. It always has at least one part.
type SelectedName struct {
	Parts []Ident
}

// Pos covers the whole name.
func (n SelectedName) Pos() source.Span {
	if len(n.Parts) == 0 {
		return source.Span{}
	}
	return n.Parts[0].Pos.Cover(n.Parts[len(n.Parts)-1].Pos)
}

func (n SelectedName) String() string {
	parts := make([]string, len(n.Parts))
	for i, p := range n.Parts {
		parts[i] = p.Name
	}
	return strings.Join(parts, ".")
}
