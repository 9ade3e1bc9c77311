package parser

import "vhdlparse/internal/token"

// Binding powers follow the language's fixed operator levels: logical
// binds weakest, then relational, shift, adding, multiplying, and the
// miscellaneous level binds tightest.
const (
	precLogical = iota + 1
	precRelational
	precShift
	precAdding
	precMultiplying
	precMisc
)

type binaryOp struct {
	text string
	prec int
}

var binaryOps = map[token.Kind]binaryOp{
	token.KwAnd:  {"and", precLogical},
	token.KwOr:   {"or", precLogical},
	token.KwNand: {"nand", precLogical},
	token.KwNor:  {"nor", precLogical},
	token.KwXor:  {"xor", precLogical},
	token.KwXnor: {"xnor", precLogical},

	token.Eq:   {"=", precRelational},
	token.Neq:  {"/=", precRelational},
	token.Lt:   {"<", precRelational},
	token.LtEq: {"<=", precRelational},
	token.Gt:   {">", precRelational},
	token.GtEq: {">=", precRelational},

	token.KwSll: {"sll", precShift},
	token.KwSrl: {"srl", precShift},
	token.KwSla: {"sla", precShift},
	token.KwSra: {"sra", precShift},
	token.KwRol: {"rol", precShift},
	token.KwRor: {"ror", precShift},

	token.Plus:  {"+", precAdding},
	token.Minus: {"-", precAdding},
	token.Amp:   {"&", precAdding},

	token.Star:  {"*", precMultiplying},
	token.Slash: {"/", precMultiplying},
	token.KwMod: {"mod", precMultiplying},
	token.KwRem: {"rem", precMultiplying},

	token.Pow: {"**", precMisc},
}

var unaryOps = map[token.Kind]string{
	token.Plus:  "+",
	token.Minus: "-",
	token.KwAbs: "abs",
	token.KwNot: "not",
}
