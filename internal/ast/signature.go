package ast

// SignatureKind tags the two profile forms of a bracketed signature.
type SignatureKind uint8

const (
	// SignatureProcedure is a profile without a return mark.
	SignatureProcedure SignatureKind = iota
	// SignatureFunction is a profile with a return mark.
	SignatureFunction
)

// Signature is the [type marks, return mark] profile used to pick one
// overload of a designator. Return is meaningful only when Kind is
// SignatureFunction.
type Signature struct {
	Kind      SignatureKind
	TypeMarks []SelectedName
	Return    SelectedName
}
