// Package term defines the two mutually recursive syntactic categories
// of the λΠ core calculus: inferable terms (Term) and checkable terms
// (CTerm). See spec.md §3.
package term

import (
	"fmt"
	"strings"
)

// Term is an inferable term: one whose type can be synthesized without
// an expected type. Every concrete node type below implements Term by
// way of the unexported inferable() marker, which keeps CTerm values
// from accidentally satisfying this interface.
type Term interface {
	fmt.Stringer
	inferable()
}

// CTerm is a checkable term: one that must be checked against a
// supplied expected type.
type CTerm interface {
	fmt.Stringer
	checkable()
}

// ---- Inferable terms ----

// Annotated pairs a checkable term with an explicit checkable type.
type Annotated struct {
	Term CTerm
	Type CTerm
}

func (Annotated) inferable() {}
func (a Annotated) String() string { return fmt.Sprintf("(%s :: %s)", a.Term, a.Type) }

// Bounded is a de Bruijn index; 0 names the innermost enclosing binder.
type Bounded struct {
	Index int
}

func (Bounded) inferable()      {}
func (b Bounded) String() string { return fmt.Sprintf("#%d", b.Index) }

// Free is a reference to a name resolved outside the lexical binder
// stack: a global, or a fresh name fabricated by the checker/quoter.
type Free struct {
	Name Name
}

func (Free) inferable()      {}
func (f Free) String() string { return f.Name.String() }

// App applies an inferable function to a checkable argument.
type App struct {
	Func Term
	Arg  CTerm
}

func (App) inferable()      {}
func (a App) String() string { return fmt.Sprintf("(%s %s)", a.Func, a.Arg) }

// Pi is the dependent function type; Codomain is open in one additional
// bound variable (index 0 = the Π-bound variable).
type Pi struct {
	Domain   CTerm
	Codomain CTerm
}

func (Pi) inferable() {}
func (p Pi) String() string {
	return fmt.Sprintf("(Pi %s %s)", p.Domain, p.Codomain)
}

// Universe is the single type of types.
type Universe struct{}

func (Universe) inferable()      {}
func (Universe) String() string { return "Type" }

// Nat is the inductive type of natural numbers.
type Nat struct{}

func (Nat) inferable()      {}
func (Nat) String() string { return "Nat" }

// Zero is the Nat constructor for zero, in inferable position.
type Zero struct{}

func (Zero) inferable()      {}
func (Zero) String() string { return "Zero" }

// Succ is the Nat successor constructor, taking an inferable term for
// ergonomics (so `Succ (Succ Zero)` needs no annotation on the inner term).
type Succ struct {
	Pred Term
}

func (Succ) inferable()      {}
func (s Succ) String() string { return fmt.Sprintf("Succ %s", s.Pred) }

// ---- Checkable terms ----

// Lam is a λ-abstraction; Body is open in one additional index.
type Lam struct {
	Body CTerm
}

func (Lam) checkable()      {}
func (l Lam) String() string { return fmt.Sprintf("(\\-> %s)", l.Body) }

// Inf lifts an inferable term into checkable position.
type Inf struct {
	Term Term
}

func (Inf) checkable()      {}
func (i Inf) String() string { return i.Term.String() }

// CZero is the checkable-position Nat zero.
type CZero struct{}

func (CZero) checkable()      {}
func (CZero) String() string { return "Zero" }

// CSucc is the checkable-position Nat successor.
type CSucc struct {
	Pred CTerm
}

func (CSucc) checkable()      {}
func (s CSucc) String() string { return fmt.Sprintf("Succ %s", s.Pred) }

// Equal decides structural equality of two inferable terms. This is
// used only on quoted normal forms to decide definitional equality
// (spec.md §4.7).
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Annotated:
		b, ok := b.(Annotated)
		return ok && EqualC(a.Term, b.Term) && EqualC(a.Type, b.Type)
	case Bounded:
		b, ok := b.(Bounded)
		return ok && a.Index == b.Index
	case Free:
		b, ok := b.(Free)
		return ok && a.Name.Equal(b.Name)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Func, b.Func) && EqualC(a.Arg, b.Arg)
	case Pi:
		b, ok := b.(Pi)
		return ok && EqualC(a.Domain, b.Domain) && EqualC(a.Codomain, b.Codomain)
	case Universe:
		_, ok := b.(Universe)
		return ok
	case Nat:
		_, ok := b.(Nat)
		return ok
	case Zero:
		_, ok := b.(Zero)
		return ok
	case Succ:
		b, ok := b.(Succ)
		return ok && Equal(a.Pred, b.Pred)
	default:
		return false
	}
}

// EqualC decides structural equality of two checkable terms.
func EqualC(a, b CTerm) bool {
	switch a := a.(type) {
	case Lam:
		b, ok := b.(Lam)
		return ok && EqualC(a.Body, b.Body)
	case Inf:
		b, ok := b.(Inf)
		return ok && Equal(a.Term, b.Term)
	case CZero:
		_, ok := b.(CZero)
		return ok
	case CSucc:
		b, ok := b.(CSucc)
		return ok && EqualC(a.Pred, b.Pred)
	default:
		return false
	}
}

// NatLiteral desugars a natural-number literal into n applications of
// Succ to Zero, annotated as Nat (spec.md §6).
func NatLiteral(n int) Term {
	var t Term = Zero{}
	for i := 0; i < n; i++ {
		t = Succ{Pred: t}
	}
	return Annotated{Term: Inf{Term: t}, Type: Inf{Term: Nat{}}}
}

// Pretty renders a term the way the REPL prints results: compact, with
// redundant Inf-wrapping elided.
func Pretty(t Term) string {
	var b strings.Builder
	b.WriteString(t.String())
	return b.String()
}
