package parser

import "vhdlparse/internal/token"

// arm is one alternative of a dispatch: the kinds that select it and
// the body run when one of them is next. The body receives the peeked
// token without it being consumed; consuming is the body's call.
type arm[T any] struct {
	kinds []token.Kind
	parse func(tok token.Token) (T, error)
}

func on[T any](parse func(tok token.Token) (T, error), kinds ...token.Kind) arm[T] {
	return arm[T]{kinds: kinds, parse: parse}
}

// match peeks one token and runs the first arm listing its kind. When
// no arm matches it builds the expected-vs-found error from the union
// of all arm kinds, leaving the offending token unconsumed.
func match[T any](ts *TokenStream, arms ...arm[T]) (T, error) {
	tok := ts.Peek()
	for _, a := range arms {
		for _, k := range a.kinds {
			if tok.Kind == k {
				return a.parse(tok)
			}
		}
	}
	var zero T
	var want []token.Kind
	for _, a := range arms {
		want = append(want, a.kinds...)
	}
	return zero, expectedError(tok, want...)
}
