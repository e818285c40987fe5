// Package nbe implements normalization by evaluation for the λΠ core:
// Eval/EvalInf turn syntax into semantic values under an environment
// (spec.md §4.5 component E), and Quote turns values back into
// checkable syntax (spec.md §4.6 component F). These two directions
// are what let the type checker (internal/checker) decide definitional
// equality by comparing normal forms instead of reducing terms itself.
package nbe

import (
	"fmt"

	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/env"
	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

// Env is the value environment Δ: a persistent bounded-index stack
// (pushed on entering a binder) overlaid with named global bindings
// installed by "let" statements. Globals are looked up by Free(Global),
// bounded positions by Bounded(i).
type Env struct {
	Globals *env.Env // name -> value.Value
	Stack   *env.Env // positional, index 0 = innermost
}

// Push returns a new Env with v pushed onto the bounded-index stack,
// used when a closure's Apply opens its captured body under one more
// binder.
func (e Env) Push(v value.Value) Env {
	return Env{Globals: e.Globals, Stack: env.Extend(e.Stack, "", v)}
}

// WithGlobal returns a new Env with name bound to v in the global map.
func (e Env) WithGlobal(name string, v value.Value) Env {
	return Env{Globals: env.Extend(e.Globals, name, v), Stack: e.Stack}
}

// Empty is the environment with no bindings at all.
func Empty() Env {
	return Env{}
}

// EvalInf evaluates an inferable term to a value under env.
func EvalInf(t term.Term, e Env) (value.Value, error) {
	switch t := t.(type) {
	case term.Annotated:
		return Eval(t.Term, e)
	case term.Universe:
		return value.VUniverse{}, nil
	case term.Nat:
		return value.VNat{}, nil
	case term.Zero:
		return value.VZero{}, nil
	case term.Succ:
		pred, err := EvalInf(t.Pred, e)
		if err != nil {
			return nil, err
		}
		return value.VSucc{Pred: pred}, nil
	case term.Free:
		if t.Name.Kind == term.Global {
			if v, ok := env.Lookup(e.Globals, t.Name.Text); ok {
				return v.(value.Value), nil
			}
		}
		return value.VNeutral{Neutral: value.NFree{Name: t.Name}}, nil
	case term.Bounded:
		v, err := env.Index(e.Stack, t.Index)
		if err != nil {
			return nil, diag.UnboundVariable("eval", fmt.Sprintf("#%d", t.Index))
		}
		return v.(value.Value), nil
	case term.App:
		f, err := EvalInf(t.Func, e)
		if err != nil {
			return nil, err
		}
		x, err := Eval(t.Arg, e)
		if err != nil {
			return nil, err
		}
		return vapp(f, x)
	case term.Pi:
		dom, err := Eval(t.Domain, e)
		if err != nil {
			return nil, err
		}
		cod := t.Codomain
		return value.VPi{
			Domain: dom,
			Codomain: value.NewClosure(func(arg value.Value) (value.Value, error) {
				return Eval(cod, e.Push(arg))
			}),
		}, nil
	default:
		return nil, fmt.Errorf("nbe: unhandled inferable term %T", t)
	}
}

// Eval evaluates a checkable term to a value under env.
func Eval(t term.CTerm, e Env) (value.Value, error) {
	switch t := t.(type) {
	case term.Inf:
		return EvalInf(t.Term, e)
	case term.Lam:
		body := t.Body
		return value.VLam{Closure: value.NewClosure(func(arg value.Value) (value.Value, error) {
			return Eval(body, e.Push(arg))
		})}, nil
	case term.CZero:
		return value.VZero{}, nil
	case term.CSucc:
		pred, err := Eval(t.Pred, e)
		if err != nil {
			return nil, err
		}
		return value.VSucc{Pred: pred}, nil
	default:
		return nil, fmt.Errorf("nbe: unhandled checkable term %T", t)
	}
}

// vapp is the semantic application rule: apply a function value to an
// argument value, producing either a β-reduction (via the closure) or
// a one-deeper neutral spine.
func vapp(f, x value.Value) (value.Value, error) {
	switch f := f.(type) {
	case value.VLam:
		return f.Closure.Apply(x)
	case value.VNeutral:
		return value.VNeutral{Neutral: value.NApp{Func: f.Neutral, Arg: x}}, nil
	default:
		return nil, fmt.Errorf("nbe: cannot apply non-function value %s", value.String(f))
	}
}
