// Package env implements the persistent, last-in-first-out association
// list the checker and evaluator thread through every call (spec.md
// §3 "Environment", §4.2 component B).
//
// Extending an environment never mutates the receiver: it returns a new
// list sharing the old one's tail. This is what lets a Closure (internal
// /value) capture "the environment" by holding a plain pointer to one of
// these lists — later Extend calls against some other branch of the
// same list can never be observed through an already-captured pointer
// (spec.md §5, §8 property 4).
package env

import "fmt"

// entry is one binding in the list. Value is untyped the same way the
// teacher's own TypeEnv stores `interface{}` bindings: this package is
// reused both for Γ (name -> semantic type, a value.Value) and for Δ's
// named-global half (name -> value.Value) and its bounded-index stack
// (anonymous entries, looked up only by position).
type entry struct {
	name  string
	value interface{}
}

// Env is a persistent association list.
type Env struct {
	head *entry
	tail *Env
}

// Empty returns a new, empty environment.
func Empty() *Env {
	return nil
}

// Extend returns a new environment with (name, value) pushed on top of
// e. e itself is untouched.
func Extend(e *Env, name string, value interface{}) *Env {
	return &Env{head: &entry{name: name, value: value}, tail: e}
}

// Lookup searches for name, newest binding first.
func Lookup(e *Env, name string) (interface{}, bool) {
	for cur := e; cur != nil; cur = cur.tail {
		if cur.head.name == name {
			return cur.head.value, true
		}
	}
	return nil, false
}

// Index retrieves the i-th most recently extended binding (index 0 is
// the top of the list), for de Bruijn-style positional access. It
// returns an error if the environment does not have i+1 entries.
func Index(e *Env, i int) (interface{}, error) {
	cur := e
	for n := i; n > 0 && cur != nil; n-- {
		cur = cur.tail
	}
	if cur == nil {
		return nil, fmt.Errorf("index %d out of range", i)
	}
	return cur.head.value, nil
}

// Len reports how many bindings e holds.
func Len(e *Env) int {
	n := 0
	for cur := e; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// Each calls f once per binding, newest first, stopping early if f
// returns false. Used by callers that need to display or export an
// environment (e.g. the REPL's `show` command) rather than look up a
// single name.
func Each(e *Env, f func(name string, value interface{}) bool) {
	for cur := e; cur != nil; cur = cur.tail {
		if !f(cur.head.name, cur.head.value) {
			return
		}
	}
}
