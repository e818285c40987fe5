package value

import (
	"testing"

	"github.com/go-lambdapi/lambdapi/internal/term"
)

func TestStringPrimitiveValues(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{VUniverse{}, "Type"},
		{VNat{}, "Nat"},
		{VZero{}, "Zero"},
		{VSucc{Pred: VZero{}}, "Succ Zero"},
		{VSucc{Pred: VSucc{Pred: VZero{}}}, "Succ Succ Zero"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("String(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringNeutral(t *testing.T) {
	n := NApp{Func: NFree{Name: term.GlobalName("f")}, Arg: VZero{}}
	got := String(VNeutral{Neutral: n})
	if got != "(f Zero)" {
		t.Fatalf("expected '(f Zero)', got %q", got)
	}
}

func TestClosureApply(t *testing.T) {
	c := NewClosure(func(arg Value) (Value, error) {
		return VSucc{Pred: arg}, nil
	})
	got, err := c.Apply(VZero{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(VSucc); !ok {
		t.Fatalf("expected VSucc, got %T", got)
	}
}
