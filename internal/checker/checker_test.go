package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

func TestInferZeroIsNat(t *testing.T) {
	c := New(nil)
	ty, err := c.Infer(0, Empty(), term.Zero{})
	require.NoError(t, err)
	assert.IsType(t, value.VNat{}, ty)
}

func TestInferSuccOfZeroIsNat(t *testing.T) {
	c := New(nil)
	ty, err := c.Infer(0, Empty(), term.Succ{Pred: term.Zero{}})
	require.NoError(t, err)
	assert.IsType(t, value.VNat{}, ty)
}

func TestInferSuccOfNonNatFails(t *testing.T) {
	c := New(nil)
	_, err := c.Infer(0, Empty(), term.Succ{Pred: term.Universe{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

func TestInferUniverseIsItsOwnType(t *testing.T) {
	c := New(nil)
	ty, err := c.Infer(0, Empty(), term.Universe{})
	require.NoError(t, err)
	assert.IsType(t, value.VUniverse{}, ty)
}

func TestInferNatTypeIsUniverse(t *testing.T) {
	c := New(nil)
	ty, err := c.Infer(0, Empty(), term.Nat{})
	require.NoError(t, err)
	assert.IsType(t, value.VUniverse{}, ty)
}

func TestInferFreeUnboundErrors(t *testing.T) {
	c := New(nil)
	_, err := c.Infer(0, Empty(), term.Free{Name: term.GlobalName("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVA001")
}

func TestInferFreeFoundInContext(t *testing.T) {
	c := New(nil)
	ctx := Empty().extendLocal(term.GlobalName("x"), value.VNat{})
	ty, err := c.Infer(0, ctx, term.Free{Name: term.GlobalName("x")})
	require.NoError(t, err)
	assert.IsType(t, value.VNat{}, ty)
}

func TestInferBoundedBareIsUnboundVariable(t *testing.T) {
	c := New(nil)
	_, err := c.Infer(0, Empty(), term.Bounded{Index: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVA001")
}

// TestInferPiOfConstantCodomain checks "Nat -> Nat" synthesizes Type.
func TestInferPiOfConstantCodomain(t *testing.T) {
	c := New(nil)
	pi := term.Pi{Domain: term.Inf{Term: term.Nat{}}, Codomain: term.Inf{Term: term.Nat{}}}
	ty, err := c.Infer(0, Empty(), pi)
	require.NoError(t, err)
	assert.IsType(t, value.VUniverse{}, ty)
}

// TestInferPiDependentCodomain checks a genuinely dependent Pi type,
// Pi(A : Type) . A (the codomain refers back to the bound variable).
func TestInferPiDependentCodomain(t *testing.T) {
	c := New(nil)
	pi := term.Pi{Domain: term.Inf{Term: term.Universe{}}, Codomain: term.Inf{Term: term.Bounded{Index: 0}}}
	ty, err := c.Infer(0, Empty(), pi)
	require.NoError(t, err)
	assert.IsType(t, value.VUniverse{}, ty)
}

func TestInferAppBetaReducesResultType(t *testing.T) {
	c := New(nil)
	// (\x :: Nat -> Nat => x) Zero should have type Nat.
	identity := term.Annotated{
		Term: term.Lam{Body: term.Inf{Term: term.Bounded{Index: 0}}},
		Type: term.Inf{Term: term.Pi{Domain: term.Inf{Term: term.Nat{}}, Codomain: term.Inf{Term: term.Nat{}}}},
	}
	app := term.App{Func: identity, Arg: term.Inf{Term: term.Zero{}}}
	ty, err := c.Infer(0, Empty(), app)
	require.NoError(t, err)
	assert.IsType(t, value.VNat{}, ty)
}

func TestInferAppOnNonFunctionFails(t *testing.T) {
	c := New(nil)
	app := term.App{Func: term.Zero{}, Arg: term.Inf{Term: term.Zero{}}}
	_, err := c.Infer(0, Empty(), app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

func TestInferAppArgumentMismatchFails(t *testing.T) {
	c := New(nil)
	identity := term.Annotated{
		Term: term.Lam{Body: term.Inf{Term: term.Bounded{Index: 0}}},
		Type: term.Inf{Term: term.Pi{Domain: term.Inf{Term: term.Nat{}}, Codomain: term.Inf{Term: term.Nat{}}}},
	}
	app := term.App{Func: identity, Arg: term.Inf{Term: term.Universe{}}}
	_, err := c.Infer(0, Empty(), app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

func TestCheckLamAgainstPi(t *testing.T) {
	c := New(nil)
	lam := term.Lam{Body: term.Inf{Term: term.Bounded{Index: 0}}}
	pi := value.VPi{Domain: value.VNat{}, Codomain: value.NewClosure(func(arg value.Value) (value.Value, error) {
		return value.VNat{}, nil
	})}
	err := c.Check(0, Empty(), lam, pi)
	assert.NoError(t, err)
}

func TestCheckLamAgainstNonPiFails(t *testing.T) {
	c := New(nil)
	lam := term.Lam{Body: term.Inf{Term: term.Bounded{Index: 0}}}
	err := c.Check(0, Empty(), lam, value.VNat{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

func TestCheckCZeroAndCSuccAgainstNat(t *testing.T) {
	c := New(nil)
	assert.NoError(t, c.Check(0, Empty(), term.CZero{}, value.VNat{}))
	assert.NoError(t, c.Check(0, Empty(), term.CSucc{Pred: term.CZero{}}, value.VNat{}))
}

func TestCheckCZeroAgainstNonNatFails(t *testing.T) {
	c := New(nil)
	err := c.Check(0, Empty(), term.CZero{}, value.VUniverse{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

func TestCheckInfMismatchFails(t *testing.T) {
	c := New(nil)
	err := c.Check(0, Empty(), term.Inf{Term: term.Zero{}}, value.VUniverse{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC001")
}

// TestContextExtendDoesNotMutateParent guards spec.md §8 property 4 at
// the context level: extending a Context for one subterm's scope must
// not leak into a sibling check using the parent Context.
func TestContextExtendDoesNotMutateParent(t *testing.T) {
	c := New(nil)
	parent := Empty()
	child := parent.extendLocal(term.GlobalName("x"), value.VNat{})

	_, err := c.Infer(0, parent, term.Free{Name: term.GlobalName("x")})
	require.Error(t, err, "parent context must not see the child's binding")

	ty, err := c.Infer(0, child, term.Free{Name: term.GlobalName("x")})
	require.NoError(t, err)
	assert.IsType(t, value.VNat{}, ty)
}
