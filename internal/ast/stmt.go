package ast

// SequentialStatement is any statement that may appear in a subprogram
// body.
type SequentialStatement interface {
	stmtNode()
}

// LabeledSequentialStatement pairs an optional label with a statement.
type LabeledSequentialStatement struct {
	Label     *Ident
	Statement SequentialStatement
}

// NullStatement is "null;".
type NullStatement struct{}

func (*NullStatement) stmtNode() {}

// ReturnStatement is "return [expr];".
type ReturnStatement struct {
	Expr Expr // nil for a plain return
}

func (*ReturnStatement) stmtNode() {}

// VariableAssignment is "target := expr;".
type VariableAssignment struct {
	Target SelectedName
	Expr   Expr
}

func (*VariableAssignment) stmtNode() {}

// SignalAssignment is "target <= expr;".
type SignalAssignment struct {
	Target SelectedName
	Expr   Expr
}

func (*SignalAssignment) stmtNode() {}

// ProcedureCall is "name [(args)];" used as a statement.
type ProcedureCall struct {
	Name SelectedName
	Args []Expr
}

func (*ProcedureCall) stmtNode() {}
