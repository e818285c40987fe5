// Package driver wires the parser, lowering, checker, and evaluator
// together into the four top-level operations spec.md §4.8 names:
// declare (def), let, check, and eval. A Driver owns the one mutable
// cell in the whole system — its current Γ/Δ context — the same
// "single owner of the mutable env" shape the teacher's REPL uses for
// its evaluator, just swapped to the immutable Context this calculus
// requires (see internal/checker).
package driver

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-lambdapi/lambdapi/internal/ast"
	"github.com/go-lambdapi/lambdapi/internal/checker"
	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/env"
	"github.com/go-lambdapi/lambdapi/internal/lexer"
	"github.com/go-lambdapi/lambdapi/internal/nbe"
	"github.com/go-lambdapi/lambdapi/internal/parser"
	"github.com/go-lambdapi/lambdapi/internal/term"
	"github.com/go-lambdapi/lambdapi/internal/value"
)

// Driver executes statements against a growing top-level context.
type Driver struct {
	ctx     checker.Context
	checker *checker.Checker
	log     *diag.Logger
}

// New builds a Driver with an empty context. log may be nil.
func New(log *diag.Logger) *Driver {
	return &Driver{ctx: checker.Empty(), checker: checker.New(log), log: log}
}

// Result is the outcome of a single statement, formatted for display by
// the REPL or --input runner.
type Result struct {
	Statement string // "def", "let", "eval", or "check"
	Name      string // bound name, for def/let; empty otherwise
	Term      string // the resulting (or checked) term, pretty-printed
	Type      string // the term's type, pretty-printed
}

func (r Result) String() string {
	switch r.Statement {
	case "def":
		return fmt.Sprintf("%s : %s", r.Name, r.Type)
	case "let":
		return fmt.Sprintf("%s = %s : %s", r.Name, r.Term, r.Type)
	case "check":
		return fmt.Sprintf("%s : %s", r.Term, r.Type)
	default: // "eval"
		return fmt.Sprintf("%s : %s", r.Term, r.Type)
	}
}

// Run dispatches a parsed statement to the matching operation.
func (d *Driver) Run(stmt ast.Statement) (Result, error) {
	switch s := stmt.(type) {
	case ast.DeclareStmt:
		return d.Declare(s.Name, s.Type)
	case ast.LetStmt:
		return d.Let(s.Name, s.Term)
	case ast.EvalStmt:
		return d.Eval(s.Term)
	case ast.CheckStmt:
		return d.Check(s.Term)
	default:
		return Result{}, fmt.Errorf("driver: unhandled statement %T", stmt)
	}
}

// Declare implements `def name :: type`: the type expression must check
// against the universe, and name is bound in Γ to that type with no
// definition in Δ — an assumed constant that evaluates to a neutral
// (spec.md §4.8's Declare operation).
func (d *Driver) Declare(name string, typeNode ast.Node) (Result, error) {
	tyTerm, err := ast.Lower(typeNode, nil)
	if err != nil {
		return Result{}, err
	}
	if err := d.checker.Check(0, d.ctx, term.Inf{Term: tyTerm}, value.VUniverse{}); err != nil {
		return Result{}, err
	}
	tyVal, err := nbe.EvalInf(tyTerm, d.ctx.Values)
	if err != nil {
		return Result{}, err
	}
	d.bindType(name, tyVal)
	return Result{Statement: "def", Name: name, Type: value.String(tyVal)}, nil
}

// Let implements `let name = term`: term must be an inferable expression
// (spec.md §9's resolved open question — a bare unannotated lambda
// cannot be let-bound, same as it cannot stand alone under eval). name
// is bound in both Γ (its inferred type) and Δ (its value), so later
// references reduce through it instead of staying neutral.
func (d *Driver) Let(name string, n ast.Node) (Result, error) {
	t, err := ast.Lower(n, nil)
	if err != nil {
		return Result{}, err
	}
	ty, err := d.checker.Infer(0, d.ctx, t)
	if err != nil {
		return Result{}, err
	}
	val, err := nbe.EvalInf(t, d.ctx.Values)
	if err != nil {
		return Result{}, err
	}
	d.bindValue(name, ty, val)
	nf := nbe.Quote(0, val)
	return Result{Statement: "let", Name: name, Term: nf.String(), Type: value.String(ty)}, nil
}

// Eval implements `eval term`: infer term's type, evaluate it, and read
// the resulting value back to normal form (spec.md §4.8's Eval
// operation, the composition of Infer/EvalInf/Quote).
func (d *Driver) Eval(n ast.Node) (Result, error) {
	t, err := ast.Lower(n, nil)
	if err != nil {
		return Result{}, err
	}
	ty, err := d.checker.Infer(0, d.ctx, t)
	if err != nil {
		return Result{}, err
	}
	val, err := nbe.EvalInf(t, d.ctx.Values)
	if err != nil {
		return Result{}, err
	}
	nf := nbe.Quote(0, val)
	return Result{Statement: "eval", Term: nf.String(), Type: value.String(ty)}, nil
}

// Check implements `check term`: synthesize and report term's type
// without evaluating it. `term` is usually itself an annotation
// (`expr :: type`), in which case this also verifies the annotation.
func (d *Driver) Check(n ast.Node) (Result, error) {
	t, err := ast.Lower(n, nil)
	if err != nil {
		return Result{}, err
	}
	ty, err := d.checker.Infer(0, d.ctx, t)
	if err != nil {
		return Result{}, err
	}
	return Result{Statement: "check", Term: t.String(), Type: value.String(ty)}, nil
}

// LoadPrelude reads a YAML document of `name: type-expression` pairs
// from path and installs each as a Declare statement (spec.md §6's
// ambient "prelude file" convention — see SPEC_FULL.md), in file order.
// A malformed document or a declaration that fails to check aborts the
// whole load; the driver's context is left as it was before the call
// attempted any binding that came after the failure.
func (d *Driver) LoadPrelude(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return diag.FileNotFound(path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return diag.ParseError(fmt.Sprintf("prelude %s: %v", path, err))
	}
	if len(doc.Content) == 0 {
		return nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return diag.ParseError(fmt.Sprintf("prelude %s: expected a top-level mapping", path))
	}

	// mapping.Content alternates key, value nodes in file order.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		typeExpr := mapping.Content[i+1].Value
		p := parser.New(lexer.New(fmt.Sprintf("def %s :: %s ;", name, typeExpr), path))
		stmt := p.ParseStatement()
		if errs := p.Errors(); len(errs) != 0 {
			return diag.ParseError(fmt.Sprintf("prelude %s: %v", path, errs[0]))
		}
		if _, err := d.Run(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ShowEnv renders every name currently bound in Γ together with its
// type, newest binding first — the `show` REPL command of spec.md §6.
func (d *Driver) ShowEnv() string {
	var b strings.Builder
	empty := true
	env.Each(d.ctx.Types, func(name string, ty interface{}) bool {
		empty = false
		fmt.Fprintf(&b, "%s : %s\n", name, nbe.Quote(0, ty.(value.Value)).String())
		return true
	})
	if empty {
		return "(empty environment)\n"
	}
	return b.String()
}

// bindType extends Γ only, leaving name undefined in Δ.
func (d *Driver) bindType(name string, ty value.Value) {
	gname := term.GlobalName(name)
	d.ctx = checker.Context{
		Types:  env.Extend(d.ctx.Types, gname.String(), ty),
		Values: d.ctx.Values,
	}
}

// bindValue extends both Γ and Δ, so future references to name reduce
// through its definition instead of staying neutral.
func (d *Driver) bindValue(name string, ty, val value.Value) {
	gname := term.GlobalName(name)
	d.ctx = checker.Context{
		Types:  env.Extend(d.ctx.Types, gname.String(), ty),
		Values: d.ctx.Values.WithGlobal(name, val),
	}
}
