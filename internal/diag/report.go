package diag

import "encoding/json"

// Report is the canonical structured error value for this interpreter.
// Every error the core core raises (parser, evaluator, checker, driver)
// is reported as a *Report so callers can render a one-line message or
// marshal the full structure, mirroring the teacher's internal/errors
// Report type narrowed to spec.md §7's four-kind closed set.
type Report struct {
	Code    string         `json:"code"`              // PAR001, EVA001, TC001, DRV001
	Phase   string         `json:"phase"`              // "parse", "eval", "typecheck", "driver"
	Message string         `json:"message"`            // human-readable message
	Form    string         `json:"form,omitempty"`     // the offending form, pretty-printed
	Data    map[string]any `json:"data,omitempty"`     // structured detail (e.g. expected/found)
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	if e.Rep.Form != "" {
		return e.Rep.Code + ": " + e.Rep.Message + " (in " + e.Rep.Form + ")"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// Wrap turns a Report into an error.
func Wrap(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON serializes the report as JSON. Nothing in this repository
// calls it; the CLI and REPL print Error() instead.
func (r *Report) ToJSON() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseError builds a PAR001 report.
func ParseError(message string) error {
	return Wrap(&Report{Code: PAR001, Phase: "parse", Message: message})
}

// UnboundVariable builds an EVA001 report for a name or index that
// could not be resolved.
func UnboundVariable(phase, nameOrIndex string) error {
	return Wrap(&Report{
		Code:    EVA001,
		Phase:   phase,
		Message: "unbound variable: " + nameOrIndex,
	})
}

// TypeMismatch builds a TC001 report.
func TypeMismatch(form, expected, found string) error {
	return Wrap(&Report{
		Code:    TC001,
		Phase:   "typecheck",
		Message: "type mismatch",
		Form:    form,
		Data: map[string]any{
			"expected": expected,
			"found":    found,
		},
	})
}

// FileNotFound builds a DRV001 report.
func FileNotFound(path string, cause error) error {
	return Wrap(&Report{
		Code:    DRV001,
		Phase:   "driver",
		Message: "file not found: " + path + ": " + cause.Error(),
	})
}
