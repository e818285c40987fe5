package ast

import (
	"github.com/go-lambdapi/lambdapi/internal/term"
)

// Lower converts a parsed node into an inferable Term under the given
// lexical binder stack, resolving each Var against it: a name found on
// the stack becomes a Bounded index counted from the innermost binder
// (index 0); anything else becomes Free(Global(name)) — to be resolved
// against the top-level typing context at check time, not here (spec.md
// §6 "Lowering").
//
// This mirrors the original source's ast_transform, with one correction:
// the original's inferable path rejects a bare Lambda node outright
// (multi-argument lambdas could never lower), which would make scenario
// S2 (`λ a -> λ x -> x`) inexpressible. Lambdas are only ever checkable
// (spec.md §9's bidirectional split), so Lower never needs to handle one
// directly; LowerC recurses into nested lambdas instead of stopping at
// the first.
func Lower(n Node, scope []string) (term.Term, error) {
	switch n := n.(type) {
	case Annotated:
		t, err := LowerC(n.Term, scope)
		if err != nil {
			return nil, err
		}
		ty, err := LowerC(n.Type, scope)
		if err != nil {
			return nil, err
		}
		return term.Annotated{Term: t, Type: ty}, nil

	case Var:
		if idx, ok := indexOf(scope, n.Name); ok {
			return term.Bounded{Index: idx}, nil
		}
		return term.Free{Name: term.GlobalName(n.Name)}, nil

	case App:
		f, err := Lower(n.Func, scope)
		if err != nil {
			return nil, err
		}
		arg, err := LowerC(n.Arg, scope)
		if err != nil {
			return nil, err
		}
		return term.App{Func: f, Arg: arg}, nil

	case Arrow:
		dom, err := LowerC(n.Domain, scope)
		if err != nil {
			return nil, err
		}
		// The codomain does not mention the bound variable, but a de
		// Bruijn binder is still introduced for uniformity with the
		// dependent form (spec.md §6): push an unnamed frame so any
		// outer-scope names in the codomain still count binders correctly.
		cod, err := LowerC(n.Codomain, append(append([]string{}, scope...), ""))
		if err != nil {
			return nil, err
		}
		return term.Pi{Domain: dom, Codomain: cod}, nil

	case Forall:
		dom, err := LowerC(n.ParamType, scope)
		if err != nil {
			return nil, err
		}
		cod, err := LowerC(n.Body, append(append([]string{}, scope...), n.Param))
		if err != nil {
			return nil, err
		}
		return term.Pi{Domain: dom, Codomain: cod}, nil

	case Universe:
		return term.Universe{}, nil

	case NatType:
		return term.Nat{}, nil

	case Zero:
		return term.Zero{}, nil

	case Succ:
		pred, err := Lower(n.Pred, scope)
		if err != nil {
			return nil, err
		}
		return term.Succ{Pred: pred}, nil

	case NumberLit:
		return term.NatLiteral(n.Value), nil

	case Lambda:
		// Reaching here means a Lambda occurred where an inferable term
		// was expected (e.g. a bare `λx -> x ;` with no annotation) —
		// its type cannot be synthesized (spec.md §9); the caller must
		// supply one. Lowering stops here with a ParseError (PAR001)
		// asking for a type annotation.
		return term.Annotated{}, errUnannotatedLambda(n)

	default:
		return nil, errUnhandledNode(n)
	}
}

// LowerC converts a parsed node into a checkable CTerm under scope. A
// Lambda lowers to Lam, and Zero and Succ lower to their checkable forms
// CZero and CSucc; every other node lowers inferably and is lifted with
// Inf.
func LowerC(n Node, scope []string) (term.CTerm, error) {
	if lam, ok := n.(Lambda); ok {
		body, err := LowerC(lam.Body, append(append([]string{}, scope...), lam.Param))
		if err != nil {
			return nil, err
		}
		return term.Lam{Body: body}, nil
	}
	if zero, ok := n.(Zero); ok {
		_ = zero
		return term.CZero{}, nil
	}
	if succ, ok := n.(Succ); ok {
		pred, err := LowerC(succ.Pred, scope)
		if err != nil {
			return nil, err
		}
		return term.CSucc{Pred: pred}, nil
	}
	t, err := Lower(n, scope)
	if err != nil {
		return nil, err
	}
	return term.Inf{Term: t}, nil
}

// indexOf searches scope from the end (innermost binder first),
// returning its de Bruijn index (0 = innermost) and whether it was found.
func indexOf(scope []string, name string) (int, bool) {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == name {
			return len(scope) - 1 - i, true
		}
	}
	return 0, false
}
