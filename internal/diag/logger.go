package diag

import (
	"fmt"
	"io"
	"os"
)

// Level is a log verbosity level, read from the LAMBDAPI_LOG_LEVEL
// environment variable named in spec.md §6. It has no semantic effect
// on evaluation or type checking; it only gates trace output.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelOff
	}
}

// Logger writes leveled trace lines, the way the original Rust source's
// log::debug! call sites traced substitution and type-checking steps —
// here gated by level instead of always on.
type Logger struct {
	level Level
	out   io.Writer
}

// NewLogger builds a Logger reading LAMBDAPI_LOG_LEVEL from the
// environment, writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{level: parseLevel(os.Getenv("LAMBDAPI_LOG_LEVEL")), out: w}
}

// Debugf writes a debug-level trace line if the configured level allows it.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || l.level < LevelDebug {
		return
	}
	fmt.Fprintf(l.out, "debug: "+format+"\n", args...)
}

// Infof writes an info-level trace line if the configured level allows it.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil || l.level < LevelInfo {
		return
	}
	fmt.Fprintf(l.out, "info: "+format+"\n", args...)
}

// Errorf writes an error-level trace line if the configured level allows it.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil || l.level < LevelError {
		return
	}
	fmt.Fprintf(l.out, "error: "+format+"\n", args...)
}
