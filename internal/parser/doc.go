// Package parser implements a recursive descent parser for the
// declarative subset of the language: attribute declarations and
// specifications, subprogram headers, signatures, and bodies, plus the
// object declarations, interface lists, expressions, and sequential
// statements they contain.
//
// Grammar functions take a *TokenStream and return the parsed node or
// a *SyntaxError. Functions that can recover from an error inside a
// list additionally take a diag.Reporter; recovered errors land there
// while parsing continues at the next synchronization point.
package parser
