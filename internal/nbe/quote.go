package nbe

import (
	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

// Quote reifies a value into checkable syntax at the given depth (the
// number of binders already crossed from the top level). Every time
// Quote descends under a VLam or VPi closure it probes the closure
// with a fresh Free(Quote(depth)) value; quoteNeutral turns that probe
// back into the Bounded index it stands for once readback reaches it,
// using the identity current_depth - probe_depth - 1 (spec.md §4.6).
func Quote(depth int, v value.Value) term.CTerm {
	switch v := v.(type) {
	case value.VLam:
		probe := value.VNeutral{Neutral: value.NFree{Name: term.QuoteName(depth)}}
		body, err := v.Closure.Apply(probe)
		if err != nil {
			// The closure was built by Eval over a well-typed term, so a
			// failure here means the probe value itself was rejected,
			// which cannot happen: probes are never inspected, only
			// threaded through.
			panic("nbe: quote probe rejected by closure: " + err.Error())
		}
		return term.Lam{Body: Quote(depth+1, body)}
	case value.VPi:
		probe := value.VNeutral{Neutral: value.NFree{Name: term.QuoteName(depth)}}
		cod, err := v.Codomain.Apply(probe)
		if err != nil {
			panic("nbe: quote probe rejected by closure: " + err.Error())
		}
		return term.Inf{Term: term.Pi{
			Domain:   Quote(depth, v.Domain),
			Codomain: Quote(depth+1, cod),
		}}
	case value.VNeutral:
		return term.Inf{Term: quoteNeutral(depth, v.Neutral)}
	case value.VUniverse:
		return term.Inf{Term: term.Universe{}}
	case value.VNat:
		return term.Inf{Term: term.Nat{}}
	case value.VZero:
		return term.CZero{}
	case value.VSucc:
		return term.CSucc{Pred: Quote(depth, v.Pred)}
	default:
		panic("nbe: quote: unhandled value")
	}
}

// quoteNeutral reifies a stuck spine into an inferable term, replacing
// Quote(k) probes with the Bounded index they stand for and leaving
// Global/Local names untouched.
func quoteNeutral(depth int, n value.Neutral) term.Term {
	switch n := n.(type) {
	case value.NFree:
		if n.Name.Kind == term.Quote {
			return term.Bounded{Index: depth - n.Name.Depth - 1}
		}
		return term.Free{Name: n.Name}
	case value.NApp:
		return term.App{
			Func: quoteNeutral(depth, n.Func),
			Arg:  Quote(depth, n.Arg),
		}
	default:
		panic("nbe: quoteNeutral: unhandled neutral")
	}
}

// QuoteValue is a convenience for callers that only have a value and
// want its normal-form term at depth 0 (e.g. printing an evaluated
// result or comparing two types for definitional equality).
func QuoteValue(v value.Value) term.CTerm {
	return Quote(0, v)
}
