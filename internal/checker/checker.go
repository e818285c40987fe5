// Package checker implements the bidirectional type checker of spec.md
// §4.7 (component G): Infer synthesizes a type from an inferable term,
// Check verifies a checkable term against a supplied expected type.
// The two are mutually recursive, and both call into internal/nbe to
// evaluate type annotations (types are terms here) and into
// internal/subst to open Π-binders before descending under them.
//
// This split is the whole point of the bidirectional discipline: Lam
// has no Infer rule because a λ-abstraction's argument type cannot be
// synthesized without an annotation, and App has no Check rule because
// checking an application still has to synthesize the function's Π
// type to know what to check the argument against. Collapsing the two
// categories would force the checker to guess (spec.md §9).
package checker

import (
	"fmt"

	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/env"
	"github.com/go-lambdapi/lambdapi/internal/nbe"
	"github.com/go-lambdapi/lambdapi/internal/subst"
	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

// Context bundles the typing context Γ (component B, keyed by Name
// string) and the value context Δ used to evaluate annotations that
// appear inside other types. Both are immutable snapshots: every
// Extend returns a new Context, never mutating the one passed in
// (spec.md §3 "Environment").
type Context struct {
	Types  *env.Env // Name.String() -> value.Value (the type)
	Values nbe.Env  // for evaluating annotations and Π-domains
}

// Empty is the initial, top-level context: no declarations, no
// let-bindings.
func Empty() Context {
	return Context{Types: env.Empty(), Values: nbe.Empty()}
}

// extendLocal returns a new Context with name bound to ty in Γ. It does
// not touch Δ's global map — Local names are never looked up there,
// only ever matched against Γ (spec.md invariant 3).
func (c Context) extendLocal(name term.Name, ty value.Value) Context {
	return Context{Types: env.Extend(c.Types, name.String(), ty), Values: c.Values}
}

// Checker is the mutually recursive infer/check pair, parameterized by
// a Logger the way the teacher's CoreTypeChecker carries a debugMode
// flag for optional tracing.
type Checker struct {
	Log *diag.Logger
}

// New builds a Checker. log may be nil, in which case tracing is a no-op.
func New(log *diag.Logger) *Checker {
	return &Checker{Log: log}
}

// Infer synthesizes the type of an inferable term at the given depth
// (the number of binders already crossed from the top level) under ctx.
func (c *Checker) Infer(depth int, ctx Context, t term.Term) (value.Value, error) {
	c.Log.Debugf("infer depth=%d term=%s", depth, t)

	switch t := t.(type) {
	case term.Annotated:
		if err := c.Check(depth, ctx, t.Type, value.VUniverse{}); err != nil {
			return nil, err
		}
		ty, err := nbe.Eval(t.Type, ctx.Values)
		if err != nil {
			return nil, err
		}
		if err := c.Check(depth, ctx, t.Term, ty); err != nil {
			return nil, err
		}
		return ty, nil

	case term.Universe:
		// A single universe that is its own type (spec.md §9: Girard's
		// paradox is accepted; this system is not meant to be consistent
		// as a logic).
		return value.VUniverse{}, nil

	case term.Nat:
		return value.VUniverse{}, nil

	case term.Zero:
		return value.VNat{}, nil

	case term.Succ:
		predTy, err := c.Infer(depth, ctx, t.Pred)
		if err != nil {
			return nil, err
		}
		if _, ok := predTy.(value.VNat); !ok {
			return nil, diag.TypeMismatch(t.String(), "Nat", value.String(predTy))
		}
		return value.VNat{}, nil

	case term.Free:
		if ty, ok := env.Lookup(ctx.Types, t.Name.String()); ok {
			return ty.(value.Value), nil
		}
		return nil, diag.UnboundVariable("typecheck", t.Name.String())

	case term.Bounded:
		// The parser only ever lowers a resolved identifier to a
		// Bounded index when a lexical binder was in scope, and the
		// checker always opens binders by substituting a Free(Local)
		// for index 0 before descending — so a bare Bounded reaching
		// Infer means the surrounding Pi/Lam never opened, which is an
		// internal inconsistency rather than a user error. We still
		// report it as UnboundVariable, matching spec.md §4.7's table.
		return nil, diag.UnboundVariable("typecheck", fmt.Sprintf("#%d", t.Index))

	case term.App:
		fTy, err := c.Infer(depth, ctx, t.Func)
		if err != nil {
			return nil, err
		}
		pi, ok := fTy.(value.VPi)
		if !ok {
			return nil, diag.TypeMismatch(t.String(), "Pi", value.String(fTy))
		}
		if err := c.Check(depth, ctx, t.Arg, pi.Domain); err != nil {
			return nil, err
		}
		argVal, err := nbe.Eval(t.Arg, ctx.Values)
		if err != nil {
			return nil, err
		}
		return pi.Codomain.Apply(argVal)

	case term.Pi:
		if err := c.Check(depth, ctx, t.Domain, value.VUniverse{}); err != nil {
			return nil, err
		}
		domVal, err := nbe.Eval(t.Domain, ctx.Values)
		if err != nil {
			return nil, err
		}
		localName := term.LocalName(depth)
		opened := subst.CTerm(0, term.Free{Name: localName}, t.Codomain)
		bodyCtx := ctx.extendLocal(localName, domVal)
		if err := c.Check(depth+1, bodyCtx, opened, value.VUniverse{}); err != nil {
			return nil, err
		}
		return value.VUniverse{}, nil

	default:
		return nil, fmt.Errorf("checker: unhandled inferable term %T", t)
	}
}

// Check verifies a checkable term against an expected type at depth,
// under ctx.
func (c *Checker) Check(depth int, ctx Context, t term.CTerm, expected value.Value) error {
	c.Log.Debugf("check depth=%d term=%s expected=%s", depth, t, value.String(expected))

	switch t := t.(type) {
	case term.Inf:
		got, err := c.Infer(depth, ctx, t.Term)
		if err != nil {
			return err
		}
		if !nbe.EqualValues(got, expected) {
			return diag.TypeMismatch(t.String(), value.String(expected), value.String(got))
		}
		return nil

	case term.Lam:
		pi, ok := expected.(value.VPi)
		if !ok {
			return diag.TypeMismatch(t.String(), "Pi", value.String(expected))
		}
		localName := term.LocalName(depth)
		opened := subst.CTerm(0, term.Free{Name: localName}, t.Body)
		bodyCtx := ctx.extendLocal(localName, pi.Domain)
		codTy, err := pi.Codomain.Apply(value.VNeutral{Neutral: value.NFree{Name: localName}})
		if err != nil {
			return err
		}
		return c.Check(depth+1, bodyCtx, opened, codTy)

	case term.CZero:
		if _, ok := expected.(value.VNat); !ok {
			return diag.TypeMismatch(t.String(), "Nat", value.String(expected))
		}
		return nil

	case term.CSucc:
		if _, ok := expected.(value.VNat); !ok {
			return diag.TypeMismatch(t.String(), "Nat", value.String(expected))
		}
		return c.Check(depth, ctx, t.Pred, value.VNat{})

	default:
		return fmt.Errorf("checker: unhandled checkable term %T", t)
	}
}
