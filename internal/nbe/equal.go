package nbe

import (
	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

// EqualValues decides definitional equality of two values by quoting
// both to normal form at depth 0 and comparing structurally. This is
// complete for the βη-normal fragment spec.md specifies (spec.md §4.7).
func EqualValues(a, b value.Value) bool {
	return term.EqualC(Quote(0, a), Quote(0, b))
}
