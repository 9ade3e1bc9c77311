package token

import "strings"

var keywords = map[string]Kind{
	"all":           KwAll,
	"architecture":  KwArchitecture,
	"attribute":     KwAttribute,
	"begin":         KwBegin,
	"body":          KwBody,
	"buffer":        KwBuffer,
	"component":     KwComponent,
	"configuration": KwConfiguration,
	"constant":      KwConstant,
	"downto":        KwDownto,
	"else":          KwElse,
	"elsif":         KwElsif,
	"end":           KwEnd,
	"entity":        KwEntity,
	"file":          KwFile,
	"function":      KwFunction,
	"if":            KwIf,
	"impure":        KwImpure,
	"in":            KwIn,
	"inout":         KwInout,
	"is":            KwIs,
	"label":         KwLabel,
	"library":       KwLibrary,
	"linkage":       KwLinkage,
	"literal":       KwLiteral,
	"null":          KwNull,
	"of":            KwOf,
	"others":        KwOthers,
	"out":           KwOut,
	"package":       KwPackage,
	"procedure":     KwProcedure,
	"process":       KwProcess,
	"pure":          KwPure,
	"range":         KwRange,
	"return":        KwReturn,
	"signal":        KwSignal,
	"shared":        KwShared,
	"subtype":       KwSubtype,
	"then":          KwThen,
	"to":            KwTo,
	"type":          KwType,
	"units":         KwUnits,
	"use":           KwUse,
	"variable":      KwVariable,
	"when":          KwWhen,
	"while":         KwWhile,

	"and":  KwAnd,
	"or":   KwOr,
	"nand": KwNand,
	"nor":  KwNor,
	"xor":  KwXor,
	"xnor": KwXnor,
	"not":  KwNot,
	"abs":  KwAbs,
	"mod":  KwMod,
	"rem":  KwRem,
	"sll":  KwSll,
	"srl":  KwSrl,
	"sla":  KwSla,
	"sra":  KwSra,
	"rol":  KwRol,
	"ror":  KwRor,
}

// keywordText maps keyword kinds back to their canonical lowercase spelling.
var keywordText = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for text, k := range keywords {
		m[k] = text
	}
	return m
}()

// LookupKeyword reports whether ident names a keyword and which one.
// Keywords are case-insensitive; "Entity" and "ENTITY" both match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}

// KeywordText returns the canonical lowercase spelling for a keyword kind.
func KeywordText(k Kind) (string, bool) {
	text, ok := keywordText[k]
	return text, ok
}
