// Package value defines the semantic domain the evaluator (internal/nbe)
// normalizes into and the checker compares types against. See spec.md
// §3 "Semantic domain Value".
package value

import (
	"fmt"

	"github.com/go-lambdapi/lambdapi/internal/term"
)

// Value is a fully-reduced (to weak head normal form) semantic value.
type Value interface {
	isValue()
}

// Neutral is a stuck computation: a free variable possibly applied to
// a spine of value arguments.
type Neutral interface {
	isNeutral()
}

// NFree is a neutral free-variable reference.
type NFree struct {
	Name term.Name
}

func (NFree) isNeutral() {}

// NApp is a neutral application: a stuck spine applied to one more
// argument.
type NApp struct {
	Func Neutral
	Arg  Value
}

func (NApp) isNeutral() {}

// VNeutral wraps a stuck computation as a value.
type VNeutral struct {
	Neutral Neutral
}

func (VNeutral) isValue() {}

// VLam is a function value backed by a host-level Closure.
type VLam struct {
	Closure *Closure
}

func (VLam) isValue() {}

// VPi is a dependent function type at the semantic level: a domain
// value and a closure computing the codomain given the bound value.
type VPi struct {
	Domain   Value
	Codomain *Closure
}

func (VPi) isValue() {}

// VUniverse is the reduced form of Universe.
type VUniverse struct{}

func (VUniverse) isValue() {}

// VNat is the reduced form of Nat.
type VNat struct{}

func (VNat) isValue() {}

// VZero is the reduced form of Zero.
type VZero struct{}

func (VZero) isValue() {}

// VSucc is the reduced form of Succ applied to a (possibly stuck) value.
type VSucc struct {
	Pred Value
}

func (VSucc) isValue() {}

// String renders a value for debugging (//show in the REPL quotes
// values back to terms instead; this is used by %v/error messages).
func String(v Value) string {
	switch v := v.(type) {
	case VNeutral:
		return stringNeutral(v.Neutral)
	case VLam:
		return "<closure>"
	case VPi:
		return "(Pi <value> <closure>)"
	case VUniverse:
		return "Type"
	case VNat:
		return "Nat"
	case VZero:
		return "Zero"
	case VSucc:
		return fmt.Sprintf("Succ %s", String(v.Pred))
	default:
		return "<value>"
	}
}

func stringNeutral(n Neutral) string {
	switch n := n.(type) {
	case NFree:
		return n.Name.String()
	case NApp:
		return fmt.Sprintf("(%s %s)", stringNeutral(n.Func), String(n.Arg))
	default:
		return "<neutral>"
	}
}
