package ast

import "vhdlparse/internal/source"

// DesignatorKind tags the two name forms of a declared subprogram.
type DesignatorKind uint8

const (
	// DesignatorIdentifier is a plain identifier name.
	DesignatorIdentifier DesignatorKind = iota
	// DesignatorOperatorSymbol is a quoted operator name such as "+".
	DesignatorOperatorSymbol
)

// Designator names a subprogram or enumeration literal: either an identifier
// or an operator symbol. Text holds the identifier spelling or the decoded
// operator symbol.
type Designator struct {
	Kind DesignatorKind
	Text string
	Pos  source.Span
}

func (d Designator) String() string {
	if d.Kind == DesignatorOperatorSymbol {
		return `"` + d.Text + `"`
	}
	return d.Text
}
