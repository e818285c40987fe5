// Package diag provides the closed error taxonomy and structured error
// reporting for the λΠ interpreter (spec.md §7), plus a leveled logger
// for the optional diagnostic trace output named in spec.md §6.
package diag

// Error codes, one family per phase. Closed set per spec.md §7: every
// error the core can raise is one of ParseError, UnboundVariable,
// TypeMismatch, or FileNotFound, each assigned a short code here the
// way the teacher's internal/errors package assigns PAR###/TC###/EVA###
// codes to its (much larger) error taxonomy.
const (
	// PAR001 indicates a syntactic or identifier-lowering failure.
	PAR001 = "PAR001"

	// EVA001 indicates a name or de Bruijn index was not found in the
	// appropriate context during evaluation or type checking.
	EVA001 = "EVA001"

	// TC001 indicates definitional equality failed, or an eliminator
	// received a value of the wrong former.
	TC001 = "TC001"

	// DRV001 indicates a file named on the CLI could not be read.
	DRV001 = "DRV001"
)
