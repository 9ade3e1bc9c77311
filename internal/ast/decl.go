package ast

// Declaration is one declarative item: an attribute declaration or
// specification, an object declaration, a subprogram declaration, or a
// subprogram body.
type Declaration interface {
	declNode()
}

// ObjectClass tags the object declarations this front end recognizes.
type ObjectClass uint8

const (
	ObjectConstant ObjectClass = iota
	ObjectVariable
	ObjectSignal
)

func (c ObjectClass) String() string {
	switch c {
	case ObjectConstant:
		return "constant"
	case ObjectVariable:
		return "variable"
	case ObjectSignal:
		return "signal"
	}
	return "unknown"
}

// ObjectDeclaration is "class ident : type_mark [:= expr];".
type ObjectDeclaration struct {
	Class    ObjectClass
	Ident    Ident
	TypeMark SelectedName
	Expr     Expr // nil when no default value was written
}

func (*ObjectDeclaration) declNode() {}
