package ast

import "vhdlparse/internal/source"

// Expr is any expression node.
type Expr interface {
	exprNode()
	Pos() source.Span
}

// LiteralKind tags Literal nodes.
type LiteralKind uint8

const (
	LitInteger LiteralKind = iota
	LitReal
	LitCharacter
	LitString
)

// Literal is an abstract, character, or string literal. Text is the
// decoded value for character and string literals and the raw spelling
// for abstract literals.
type Literal struct {
	Kind LiteralKind
	Text string
	Span source.Span
}

func (*Literal) exprNode()          {}
func (l *Literal) Pos() source.Span { return l.Span }

// NameExpr is a name used as an expression.
type NameExpr struct {
	Name SelectedName
}

func (*NameExpr) exprNode()          {}
func (n *NameExpr) Pos() source.Span { return n.Name.Pos() }

// CallExpr is a name applied to a parenthesized argument list. The
// grammar does not distinguish calls from indexed names here; both
// parse to CallExpr.
type CallExpr struct {
	Name SelectedName
	Args []Expr
	Span source.Span
}

func (*CallExpr) exprNode()          {}
func (c *CallExpr) Pos() source.Span { return c.Span }

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Span    source.Span
}

func (*UnaryExpr) exprNode()          {}
func (u *UnaryExpr) Pos() source.Span { return u.Span }

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

func (b *BinaryExpr) Pos() source.Span { return b.Left.Pos().Cover(b.Right.Pos()) }

// ParenExpr is a parenthesized expression; the parentheses are kept so
// spans stay faithful to the source.
type ParenExpr struct {
	Inner Expr
	Span  source.Span
}

func (*ParenExpr) exprNode()          {}
func (p *ParenExpr) Pos() source.Span { return p.Span }
