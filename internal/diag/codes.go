package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadAbstractLiteral       Code = 1004
	LexBadCharLiteral           Code = 1005
	LexUnterminatedExtendedID   Code = 1006

	// Syntax
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnexpectedEOF         Code = 2002
	SynDuplicateReturn       Code = 2003
	SynExpectIdentifier      Code = 2004
	SynUnexpectedDeclaration Code = 2005
	SynBadInterfaceObject    Code = 2006
	SynUnexpectedStatement   Code = 2007
	SynExpectSemicolon       Code = 2008

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadAbstractLiteral:       "malformed abstract literal",
	LexBadCharLiteral:           "malformed character literal",
	LexUnterminatedExtendedID:   "unterminated extended identifier",

	SynInfo:                  "syntax note",
	SynUnexpectedToken:       "unexpected token",
	SynUnexpectedEOF:         "unexpected end of file",
	SynDuplicateReturn:       "duplicate return in signature",
	SynExpectIdentifier:      "expected identifier",
	SynUnexpectedDeclaration: "unexpected declaration",
	SynBadInterfaceObject:    "malformed interface object",
	SynUnexpectedStatement:   "unexpected statement",
	SynExpectSemicolon:       "expected semicolon",

	IOLoadFileError: "failed to load file",
}

// ID returns the short prefixed form, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
