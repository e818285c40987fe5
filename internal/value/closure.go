package value

// Closure carries a deferred one-argument computation together with
// the environment it was captured under (see spec.md §4.3). It is
// opaque: nothing outside the evaluator that built it may inspect its
// captured environment or body — the only way to learn anything about
// a Closure is to Apply it, typically to a fresh quote probe.
//
// In the source this specification was distilled from, a closure wraps
// a type-erased Rust trait object (Arc<dyn Fn>) precisely because Rust
// has no first-class capturing functions that also implement Clone.
// Go's func values already capture their environment by reference and
// are freely copyable, so the closure reduces to a single func field.
type Closure struct {
	Func func(arg Value) (Value, error)
}

// NewClosure wraps f as a Closure.
func NewClosure(f func(arg Value) (Value, error)) *Closure {
	return &Closure{Func: f}
}

// Apply runs the closure's deferred computation with arg substituted
// for its bound variable.
func (c *Closure) Apply(arg Value) (Value, error) {
	return c.Func(arg)
}
