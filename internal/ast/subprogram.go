package ast

// SubprogramDeclaration is either a *ProcedureSpecification or a
// *FunctionSpecification.
type SubprogramDeclaration interface {
	Declaration
	subprogramSpec()
}

// ProcedureSpecification is the header "procedure designator [(params)]".
type ProcedureSpecification struct {
	Designator    Designator
	ParameterList []InterfaceObject
}

// FunctionSpecification is the header
// "[impure] function designator [(params)] return type_mark".
// Pure defaults to true; only an explicit 'impure' clears it.
type FunctionSpecification struct {
	Pure          bool
	Designator    Designator
	ParameterList []InterfaceObject
	ReturnType    SelectedName
}

func (*ProcedureSpecification) subprogramSpec() {}
func (*FunctionSpecification) subprogramSpec()  {}
func (*ProcedureSpecification) declNode()       {}
func (*FunctionSpecification) declNode()        {}

// SubprogramBody is a specification followed by its declarative part and
// statement part.
type SubprogramBody struct {
	Specification SubprogramDeclaration
	Declarations  []Declaration
	Statements    []LabeledSequentialStatement
}

func (*SubprogramBody) declNode() {}
