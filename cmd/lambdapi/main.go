// Command lambdapi is the CLI entry point for the λΠ interpreter
// (spec.md §6 "External interfaces"): a `flag`-based dispatcher offering
// `--input <path>` (run one statement from a file) and `--interactive`
// (REPL), in the teacher's own hand-rolled-flag, no-subcommand-framework
// style.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/driver"
	"github.com/go-lambdapi/lambdapi/internal/lexer"
	"github.com/go-lambdapi/lambdapi/internal/parser"
	"github.com/go-lambdapi/lambdapi/internal/repl"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		inputFlag       = flag.String("input", "", "read one statement from a file, evaluate, print, and exit")
		interactiveFlag = flag.Bool("interactive", false, "start the REPL")
		preludeFlag     = flag.String("prelude", "", "YAML file of name: type-expression declarations to load at startup")
		versionFlag     = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println(bold("lambdapi"), "dev")
		return
	}

	log := diag.NewLogger(os.Stderr)

	drv := driver.New(log)
	if *preludeFlag != "" {
		if err := drv.LoadPrelude(*preludeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
			os.Exit(1)
		}
	}

	switch {
	case *inputFlag != "":
		os.Exit(runInput(drv, *inputFlag))
	case *interactiveFlag:
		repl.New(drv, log).Start(os.Stdin, os.Stdout)
	default:
		printUsage()
	}
}

// runInput implements `--input <path>`: read one statement from the
// file, evaluate, print the result, and return the process exit code
// (0 on success, non-zero on I/O or unrecoverable error — spec.md §6).
func runInput(drv *driver.Driver, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), diag.FileNotFound(path, err))
		return 1
	}

	p := parser.New(lexer.New(string(data), path))
	stmt := p.ParseStatement()
	if errs := p.Errors(); len(errs) != 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), e)
		}
		return 1
	}
	if stmt == nil {
		return 1
	}

	res, err := drv.Run(stmt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		return 1
	}
	fmt.Println(res.String())
	return 0
}

func printUsage() {
	fmt.Println(bold("lambdapi") + " — a λΠ calculus interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lambdapi --input <path>       read one statement from a file, evaluate, print, exit")
	fmt.Println("  lambdapi --interactive        start the REPL (prompt '>>> ', commands 'exit'/'show')")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
