// Package subst implements capture-avoiding substitution of a free
// variable reference for a de Bruijn index, as described in spec.md
// §4.4. The only binder-crossing case is Pi's codomain (and Lam's
// body), where the substitution index must be incremented because
// entering the binder shifts every remaining bound index up by one.
package subst

import "github.com/go-lambdapi/lambdapi/internal/term"

// Term substitutes s for the de Bruijn index i inside t. s itself is
// not shifted: callers are expected to pass a term that is closed at
// the binder's level, which in practice is always a fresh Free(Local)
// reference passed by the checker (spec.md §4.4).
func Term(i int, s term.Term, t term.Term) term.Term {
	switch t := t.(type) {
	case term.Annotated:
		return term.Annotated{
			Term: CTerm(i, s, t.Term),
			Type: CTerm(i, s, t.Type),
		}
	case term.Bounded:
		if t.Index == i {
			return s
		}
		return t
	case term.Free:
		return t
	case term.App:
		return term.App{
			Func: Term(i, s, t.Func),
			Arg:  CTerm(i, s, t.Arg),
		}
	case term.Pi:
		return term.Pi{
			Domain:   CTerm(i, s, t.Domain),
			Codomain: CTerm(i+1, s, t.Codomain),
		}
	case term.Universe:
		return t
	case term.Nat:
		return t
	case term.Zero:
		return t
	case term.Succ:
		return term.Succ{Pred: Term(i, s, t.Pred)}
	default:
		return t
	}
}

// CTerm substitutes s for index i inside the checkable term t.
func CTerm(i int, s term.Term, t term.CTerm) term.CTerm {
	switch t := t.(type) {
	case term.Lam:
		return term.Lam{Body: CTerm(i+1, s, t.Body)}
	case term.Inf:
		return term.Inf{Term: Term(i, s, t.Term)}
	case term.CZero:
		return t
	case term.CSucc:
		return term.CSucc{Pred: CTerm(i, s, t.Pred)}
	default:
		return t
	}
}
