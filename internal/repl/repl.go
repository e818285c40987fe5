// Package repl implements the `--interactive` mode of spec.md §6: a
// read-eval-print loop over one shared driver.Driver, with the prompt
// `>>> ` and the two commands `exit`/`show`. Every other line is parsed
// as one statement and run immediately; per-statement errors are
// printed and the loop continues (spec.md §6's "Exit codes" rule for
// interactive mode).
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/driver"
	"github.com/go-lambdapi/lambdapi/internal/lexer"
	"github.com/go-lambdapi/lambdapi/internal/parser"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

const prompt = ">>> "

// REPL is the interactive session: a driver plus the editing/history
// machinery around it.
type REPL struct {
	drv *driver.Driver
	log *diag.Logger
}

// New builds a REPL around drv, so callers can pre-load a prelude (or
// any other statements) before handing control to the interactive loop.
func New(drv *driver.Driver, log *diag.Logger) *REPL {
	return &REPL{drv: drv, log: log}
}

// Start runs the read-eval-print loop until `exit` or end of input. in
// is not read: liner reads lines from the process's standard input
// itself. out receives results, diagnostics and the banner; the prompt
// is written by liner.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".lambdapi_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(out, bold("lambdapi"), dim("— type 'exit' to quit, 'show' to print the environment"))

	for {
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\ngoodbye"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "exit":
			fmt.Fprintln(out, green("goodbye"))
			if f, err := os.Create(historyFile); err == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
			return
		case "show":
			fmt.Fprint(out, r.drv.ShowEnv())
			continue
		}

		r.runLine(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// runLine parses and runs exactly one statement, printing its result or
// diagnostic to out. A malformed or ill-typed line never aborts the
// session (spec.md §6: "Per-statement errors in interactive mode print
// a diagnostic and continue").
func (r *REPL) runLine(input string, out io.Writer) {
	if !strings.HasSuffix(input, ";") {
		input += " ;"
	}
	p := parser.New(lexer.New(input, "<repl>"))
	stmt := p.ParseStatement()
	if errs := p.Errors(); len(errs) != 0 {
		for _, e := range errs {
			fmt.Fprintf(out, "%s: %v\n", red("parse error"), e)
		}
		return
	}
	if stmt == nil {
		return
	}
	res, err := r.drv.Run(stmt)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	fmt.Fprintln(out, res.String())
}
