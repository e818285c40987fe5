package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqualStructural(t *testing.T) {
	a := App{Func: Free{Name: GlobalName("f")}, Arg: Inf{Term: Zero{}}}
	b := App{Func: Free{Name: GlobalName("f")}, Arg: Inf{Term: Zero{}}}
	if !Equal(a, b) {
		t.Fatalf("expected structurally identical terms to be Equal")
	}
}

func TestEqualDistinguishesBoundedIndex(t *testing.T) {
	if Equal(Bounded{Index: 0}, Bounded{Index: 1}) {
		t.Fatalf("expected different indices to be unequal")
	}
}

func TestEqualDistinguishesNameKind(t *testing.T) {
	a := Free{Name: GlobalName("x")}
	b := Free{Name: LocalName(0)}
	if Equal(a, b) {
		t.Fatalf("a Global and a Local name must never compare equal")
	}
}

func TestEqualCNested(t *testing.T) {
	a := Lam{Body: Inf{Term: Bounded{Index: 0}}}
	b := Lam{Body: Inf{Term: Bounded{Index: 0}}}
	if !EqualC(a, b) {
		t.Fatalf("expected structurally identical checkable terms to be EqualC")
	}
	c := Lam{Body: Inf{Term: Bounded{Index: 1}}}
	if EqualC(a, c) {
		t.Fatalf("expected different bodies to be unequal")
	}
}

func TestNatLiteralDesugarsToSuccChain(t *testing.T) {
	got := NatLiteral(3)
	want := Annotated{
		Term: Inf{Term: Succ{Pred: Succ{Pred: Succ{Pred: Zero{}}}}},
		Type: Inf{Term: Nat{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NatLiteral(3) mismatch (-want +got):\n%s", diff)
	}
}

func TestNatLiteralZero(t *testing.T) {
	got := NatLiteral(0)
	want := Annotated{Term: Inf{Term: Zero{}}, Type: Inf{Term: Nat{}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NatLiteral(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestNameEqual(t *testing.T) {
	if !GlobalName("x").Equal(GlobalName("x")) {
		t.Fatalf("expected equal global names to be Equal")
	}
	if GlobalName("x").Equal(GlobalName("y")) {
		t.Fatalf("expected different global names to be unequal")
	}
	if !LocalName(2).Equal(LocalName(2)) {
		t.Fatalf("expected equal-depth Local names to be Equal")
	}
	if LocalName(2).Equal(QuoteName(2)) {
		t.Fatalf("a Local and a Quote name at the same depth must never compare equal")
	}
}

func TestPretty(t *testing.T) {
	if got := Pretty(Zero{}); got != "Zero" {
		t.Fatalf("expected 'Zero', got %q", got)
	}
}
