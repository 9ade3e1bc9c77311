package lexer

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/source"
)

// Options configure one lexer instance.
type Options struct {
	Reporter diag.Reporter // may be nil; lexical errors are then dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
