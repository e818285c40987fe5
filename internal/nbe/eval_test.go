package nbe

import (
	"testing"

	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

func TestEvalInfZeroAndSucc(t *testing.T) {
	v, err := EvalInf(term.Succ{Pred: term.Succ{Pred: term.Zero{}}}, Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	succ, ok := v.(value.VSucc)
	if !ok {
		t.Fatalf("expected VSucc, got %T", v)
	}
	inner, ok := succ.Pred.(value.VSucc)
	if !ok {
		t.Fatalf("expected nested VSucc, got %T", succ.Pred)
	}
	if _, ok := inner.Pred.(value.VZero); !ok {
		t.Fatalf("expected innermost VZero, got %T", inner.Pred)
	}
}

func TestEvalInfFreeGlobalUnfoldsWhenBound(t *testing.T) {
	e := Empty().WithGlobal("x", value.VZero{})
	v, err := EvalInf(term.Free{Name: term.GlobalName("x")}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.VZero); !ok {
		t.Fatalf("expected VZero, got %T", v)
	}
}

func TestEvalInfFreeGlobalStaysNeutralWhenUndeclared(t *testing.T) {
	v, err := EvalInf(term.Free{Name: term.GlobalName("foo")}, Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neutral, ok := v.(value.VNeutral)
	if !ok {
		t.Fatalf("expected VNeutral, got %T", v)
	}
	if _, ok := neutral.Neutral.(value.NFree); !ok {
		t.Fatalf("expected NFree, got %T", neutral.Neutral)
	}
}

func TestEvalInfBoundedReadsStack(t *testing.T) {
	e := Empty().Push(value.VZero{}).Push(value.VSucc{Pred: value.VZero{}})
	v, err := EvalInf(term.Bounded{Index: 0}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.VSucc); !ok {
		t.Fatalf("expected the most recently pushed value (VSucc), got %T", v)
	}
	v, err = EvalInf(term.Bounded{Index: 1}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.VZero); !ok {
		t.Fatalf("expected the first-pushed value (VZero), got %T", v)
	}
}

func TestEvalInfBoundedOutOfRangeErrors(t *testing.T) {
	if _, err := EvalInf(term.Bounded{Index: 0}, Empty()); err == nil {
		t.Fatalf("expected an error for an index into an empty stack")
	}
}

// TestShadowingClosuresCaptureByValue is spec.md §8 property 4: later
// bindings must not leak into closures captured before them.
func TestShadowingClosuresCaptureByValue(t *testing.T) {
	e := Empty().WithGlobal("x", value.VZero{})

	closed, err := Eval(term.Lam{Body: term.Inf{Term: term.Free{Name: term.GlobalName("x")}}}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lam := closed.(value.VLam)

	// Shadow x in a derived environment; the already-built closure must
	// still resolve to the old value when applied.
	_ = e.WithGlobal("x", value.VSucc{Pred: value.VZero{}})

	result, err := lam.Closure.Apply(value.VZero{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(value.VZero); !ok {
		t.Fatalf("expected the closure to still see the old binding (VZero), got %T", result)
	}
}

func TestEvalInfAppBetaReduces(t *testing.T) {
	// (\x -> x) Zero
	identity := term.Annotated{
		Term: term.Lam{Body: term.Inf{Term: term.Bounded{Index: 0}}},
		Type: term.Inf{Term: term.Pi{Domain: term.Inf{Term: term.Nat{}}, Codomain: term.Inf{Term: term.Nat{}}}},
	}
	app := term.App{Func: identity, Arg: term.Inf{Term: term.Zero{}}}
	v, err := EvalInf(app, Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.VZero); !ok {
		t.Fatalf("expected VZero, got %T", v)
	}
}

func TestEvalInfAppOnNeutralStaysStuck(t *testing.T) {
	app := term.App{Func: term.Free{Name: term.GlobalName("f")}, Arg: term.Inf{Term: term.Zero{}}}
	v, err := EvalInf(app, Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neutral, ok := v.(value.VNeutral)
	if !ok {
		t.Fatalf("expected VNeutral, got %T", v)
	}
	if _, ok := neutral.Neutral.(value.NApp); !ok {
		t.Fatalf("expected NApp, got %T", neutral.Neutral)
	}
}
