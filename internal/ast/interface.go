package ast

// Mode is an interface object mode. ModeDefault marks a parameter whose
// mode was not written; its meaning depends on the object class.
type Mode uint8

const (
	ModeDefault Mode = iota
	ModeIn
	ModeOut
	ModeInout
	ModeBuffer
)

func (m Mode) String() string {
	switch m {
	case ModeIn:
		return "in"
	case ModeOut:
		return "out"
	case ModeInout:
		return "inout"
	case ModeBuffer:
		return "buffer"
	}
	return ""
}

// InterfaceObject is one flattened parameter. A declaration listing
// several identifiers produces one InterfaceObject per identifier, all
// sharing mode, type mark, and default expression.
type InterfaceObject struct {
	Class    ObjectClass
	Ident    Ident
	Mode     Mode
	TypeMark SelectedName
	Default  Expr // nil when no default value was written
}
