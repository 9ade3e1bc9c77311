package token

import "strings"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a basic or extended identifier.
	Ident

	// KwAll represents the 'all' keyword.
	KwAll // all
	// KwArchitecture represents the 'architecture' keyword.
	KwArchitecture // architecture
	// KwAttribute represents the 'attribute' keyword.
	KwAttribute // attribute
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwBody represents the 'body' keyword.
	KwBody // body
	// KwBuffer represents the 'buffer' keyword.
	KwBuffer // buffer
	// KwComponent represents the 'component' keyword.
	KwComponent // component
	// KwConfiguration represents the 'configuration' keyword.
	KwConfiguration // configuration
	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwDownto represents the 'downto' keyword.
	KwDownto // downto
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElsif represents the 'elsif' keyword.
	KwElsif // elsif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwEntity represents the 'entity' keyword.
	KwEntity // entity
	// KwFile represents the 'file' keyword.
	KwFile // file
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImpure represents the 'impure' keyword.
	KwImpure // impure
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInout represents the 'inout' keyword.
	KwInout // inout
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLabel represents the 'label' keyword.
	KwLabel // label
	// KwLibrary represents the 'library' keyword.
	KwLibrary // library
	// KwLinkage represents the 'linkage' keyword.
	KwLinkage // linkage
	// KwLiteral represents the 'literal' keyword.
	KwLiteral // literal
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwOthers represents the 'others' keyword.
	KwOthers // others
	// KwOut represents the 'out' keyword.
	KwOut // out
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwProcedure represents the 'procedure' keyword.
	KwProcedure // procedure
	// KwProcess represents the 'process' keyword.
	KwProcess // process
	// KwPure represents the 'pure' keyword.
	KwPure // pure
	// KwRange represents the 'range' keyword.
	KwRange // range
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSignal represents the 'signal' keyword.
	KwSignal // signal
	// KwShared represents the 'shared' keyword.
	KwShared // shared
	// KwSubtype represents the 'subtype' keyword.
	KwSubtype // subtype
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTo represents the 'to' keyword.
	KwTo // to
	// KwType represents the 'type' keyword.
	KwType // type
	// KwUnits represents the 'units' keyword.
	KwUnits // units
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwVariable represents the 'variable' keyword.
	KwVariable // variable
	// KwWhen represents the 'when' keyword.
	KwWhen // when
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// KwAnd represents the 'and' operator keyword.
	KwAnd // and
	// KwOr represents the 'or' operator keyword.
	KwOr // or
	// KwNand represents the 'nand' operator keyword.
	KwNand // nand
	// KwNor represents the 'nor' operator keyword.
	KwNor // nor
	// KwXor represents the 'xor' operator keyword.
	KwXor // xor
	// KwXnor represents the 'xnor' operator keyword.
	KwXnor // xnor
	// KwNot represents the 'not' operator keyword.
	KwNot // not
	// KwAbs represents the 'abs' operator keyword.
	KwAbs // abs
	// KwMod represents the 'mod' operator keyword.
	KwMod // mod
	// KwRem represents the 'rem' operator keyword.
	KwRem // rem
	// KwSll represents the 'sll' operator keyword.
	KwSll // sll
	// KwSrl represents the 'srl' operator keyword.
	KwSrl // srl
	// KwSla represents the 'sla' operator keyword.
	KwSla // sla
	// KwSra represents the 'sra' operator keyword.
	KwSra // sra
	// KwRol represents the 'rol' operator keyword.
	KwRol // rol
	// KwRor represents the 'ror' operator keyword.
	KwRor // ror

	// IntLit represents an abstract literal without a point.
	IntLit
	// RealLit represents an abstract literal with a point or exponent.
	RealLit
	// CharLit represents a character literal such as 'a'.
	CharLit
	// StringLit represents a string literal, quotes included in Text.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the multiply operator token.
	Star // *
	// Slash represents the divide operator token.
	Slash // /
	// Pow represents the exponentiation operator token.
	Pow // **
	// Amp represents the concatenation operator token.
	Amp // &
	// Eq represents the equality operator token.
	Eq // =
	// Neq represents the inequality operator token.
	Neq // /=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-than-or-equal operator token (also the signal
	// assignment delimiter).
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-than-or-equal operator token.
	GtEq // >=
	// Box represents the box token.
	Box // <>
	// ColonAssign represents the variable assignment delimiter.
	ColonAssign // :=
	// Arrow represents the association arrow.
	Arrow // =>
	// Bar represents the choice separator.
	Bar // |
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Tick represents the apostrophe token.
	Tick // '
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	RealLit:     "RealLit",
	CharLit:     "CharLit",
	StringLit:   "StringLit",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Pow:         "Pow",
	Amp:         "Amp",
	Eq:          "Eq",
	Neq:         "Neq",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Box:         "Box",
	ColonAssign: "ColonAssign",
	Arrow:       "Arrow",
	Bar:         "Bar",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Dot:         "Dot",
	Tick:        "Tick",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
}

// String returns a stable identifier-like name for token dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if text, ok := keywordText[k]; ok {
		return "Kw" + strings.ToUpper(text[:1]) + text[1:]
	}
	return "Unknown"
}

var punctLabels = map[Kind]string{
	Plus:        "'+'",
	Minus:       "'-'",
	Star:        "'*'",
	Slash:       "'/'",
	Pow:         "'**'",
	Amp:         "'&'",
	Eq:          "'='",
	Neq:         "'/='",
	Lt:          "'<'",
	LtEq:        "'<='",
	Gt:          "'>'",
	GtEq:        "'>='",
	Box:         "'<>'",
	ColonAssign: "':='",
	Arrow:       "'=>'",
	Bar:         "'|'",
	Colon:       "':'",
	Semicolon:   "';'",
	Comma:       "','",
	Dot:         "'.'",
	Tick:        "'''",
	LParen:      "'('",
	RParen:      "')'",
	LBracket:    "'['",
	RBracket:    "']'",
}

// Label returns the diagnostic-friendly description of the kind, for example
// "';'", "'attribute'", "identifier" or "end of file".
func (k Kind) Label() string {
	switch k {
	case Invalid:
		return "invalid token"
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case IntLit, RealLit:
		return "abstract literal"
	case CharLit:
		return "character literal"
	case StringLit:
		return "string literal"
	}
	if label, ok := punctLabels[k]; ok {
		return label
	}
	if text, ok := keywordText[k]; ok {
		return "'" + text + "'"
	}
	return "unknown token"
}
