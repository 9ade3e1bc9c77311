package ast

// EntityClass names the syntactic category an attribute specification
// targets.
type EntityClass uint8

const (
	EntityClassEntity EntityClass = iota
	EntityClassArchitecture
	EntityClassConfiguration
	EntityClassPackage
	EntityClassSignal
	EntityClassVariable
	EntityClassProcedure
	EntityClassFunction
)

func (c EntityClass) String() string {
	switch c {
	case EntityClassEntity:
		return "entity"
	case EntityClassArchitecture:
		return "architecture"
	case EntityClassConfiguration:
		return "configuration"
	case EntityClassPackage:
		return "package"
	case EntityClassSignal:
		return "signal"
	case EntityClassVariable:
		return "variable"
	case EntityClassProcedure:
		return "procedure"
	case EntityClassFunction:
		return "function"
	}
	return "unknown"
}

// EntityTag identifies one overload target of an attribute specification:
// a designator plus an optional signature.
type EntityTag struct {
	Designator Designator
	Signature  *Signature // nil when no signature was written
}

// EntityNameKind tags the three entity-name alternatives.
type EntityNameKind uint8

const (
	// EntityNameName targets the tag's designator.
	EntityNameName EntityNameKind = iota
	// EntityNameOthers targets all remaining entities of the class.
	EntityNameOthers
	// EntityNameAll targets every entity of the class.
	EntityNameAll
)

// EntityName is one target of an attribute specification before expansion.
// Tag is meaningful only when Kind is EntityNameName.
type EntityName struct {
	Kind EntityNameKind
	Tag  *EntityTag
}

// AttributeDeclaration is the "attribute ident : type_mark;" form.
type AttributeDeclaration struct {
	Ident    Ident
	TypeMark SelectedName
}

// AttributeSpecification is the "attribute ident of name : class is expr;"
// form after expansion: a source statement listing n entity names yields n
// specification nodes sharing Ident, Class, and Expr.
type AttributeSpecification struct {
	Ident      Ident
	EntityName EntityName
	Class      EntityClass
	Expr       Expr
}

func (*AttributeDeclaration) declNode()   {}
func (*AttributeSpecification) declNode() {}
