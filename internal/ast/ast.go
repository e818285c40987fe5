// Package ast defines the untyped concrete-syntax tree the parser
// produces (spec.md §6). This is the external "concrete syntax parser"
// collaborator's output shape — in scope here only so the CLI has
// something to actually parse; the calculus itself lives in
// internal/term and is reached only after lowering (see Lower/LowerC).
package ast

import "fmt"

// Pos is a source position, used only for diagnostics.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Node is any parsed expression before lowering to the core calculus.
type Node interface {
	fmt.Stringer
	Position() Pos
	astNode()
}

type base struct{ Pos Pos }

func (b base) Position() Pos { return b.Pos }

// Annotated is `term :: type`.
type Annotated struct {
	base
	Term Node
	Type Node
}

func (Annotated) astNode() {}
func (a Annotated) String() string { return fmt.Sprintf("(%s :: %s)", a.Term, a.Type) }

// NewAnnotated builds an Annotated node at pos.
func NewAnnotated(pos Pos, term, typ Node) Annotated {
	return Annotated{base: base{Pos: pos}, Term: term, Type: typ}
}

// Var is an identifier occurrence, resolved to Bounded or Free(Global)
// during lowering depending on whether it names an enclosing binder.
type Var struct {
	base
	Name string
}

func (Var) astNode()      {}
func (v Var) String() string { return v.Name }

// NewVar builds a Var node at pos.
func NewVar(pos Pos, name string) Var { return Var{base: base{Pos: pos}, Name: name} }

// App is left-associative application of two expressions.
type App struct {
	base
	Func Node
	Arg  Node
}

func (App) astNode()      {}
func (a App) String() string { return fmt.Sprintf("(%s %s)", a.Func, a.Arg) }

// NewApp builds an App node at pos.
func NewApp(pos Pos, fn, arg Node) App { return App{base: base{Pos: pos}, Func: fn, Arg: arg} }

// Lambda is `λ x -> body` (also spelled `lambda` or `\`).
type Lambda struct {
	base
	Param string
	Body  Node
}

func (Lambda) astNode()      {}
func (l Lambda) String() string { return fmt.Sprintf("(\\%s -> %s)", l.Param, l.Body) }

// NewLambda builds a Lambda node at pos.
func NewLambda(pos Pos, param string, body Node) Lambda {
	return Lambda{base: base{Pos: pos}, Param: param, Body: body}
}

// Arrow is the non-dependent function-type sugar `A -> B`.
type Arrow struct {
	base
	Domain   Node
	Codomain Node
}

func (Arrow) astNode()      {}
func (a Arrow) String() string { return fmt.Sprintf("(%s -> %s)", a.Domain, a.Codomain) }

// NewArrow builds an Arrow node at pos.
func NewArrow(pos Pos, domain, codomain Node) Arrow {
	return Arrow{base: base{Pos: pos}, Domain: domain, Codomain: codomain}
}

// Forall is the dependent function-type form `∀ x : A . B`, needed to
// write a Π-type whose codomain actually mentions the bound variable
// (spec.md §6's grammar only shows the non-dependent arrow; this form
// is a necessary addition — scenario S2 cannot be expressed without it).
type Forall struct {
	base
	Param     string
	ParamType Node
	Body      Node
}

func (Forall) astNode() {}
func (f Forall) String() string {
	return fmt.Sprintf("(forall %s : %s . %s)", f.Param, f.ParamType, f.Body)
}

// NewForall builds a Forall node at pos.
func NewForall(pos Pos, param string, paramType, body Node) Forall {
	return Forall{base: base{Pos: pos}, Param: param, ParamType: paramType, Body: body}
}

// Succ is the prefix successor former, `S expr` or `Succ expr`.
type Succ struct {
	base
	Pred Node
}

func (Succ) astNode()      {}
func (s Succ) String() string { return fmt.Sprintf("Succ %s", s.Pred) }

// NewSucc builds a Succ node at pos.
func NewSucc(pos Pos, pred Node) Succ { return Succ{base: base{Pos: pos}, Pred: pred} }

// Zero is the `O` / `Zero` literal.
type Zero struct{ base }

func (Zero) astNode()      {}
func (Zero) String() string { return "Zero" }

// NewZero builds a Zero node at pos.
func NewZero(pos Pos) Zero { return Zero{base: base{Pos: pos}} }

// NumberLit is a natural-number literal, sugar for n applications of
// Succ to Zero (spec.md §6).
type NumberLit struct {
	base
	Value int
}

func (NumberLit) astNode()      {}
func (n NumberLit) String() string { return fmt.Sprintf("%d", n.Value) }

// NewNumberLit builds a NumberLit node at pos.
func NewNumberLit(pos Pos, value int) NumberLit {
	return NumberLit{base: base{Pos: pos}, Value: value}
}

// Universe is the `Type` / `U` literal.
type Universe struct{ base }

func (Universe) astNode()      {}
func (Universe) String() string { return "Type" }

// NewUniverse builds a Universe node at pos.
func NewUniverse(pos Pos) Universe { return Universe{base: base{Pos: pos}} }

// NatType is the `Nat` / `ℕ` literal.
type NatType struct{ base }

func (NatType) astNode()      {}
func (NatType) String() string { return "Nat" }

// NewNatType builds a NatType node at pos.
func NewNatType(pos Pos) NatType { return NatType{base: base{Pos: pos}} }

// Statement is one top-level driver operation (spec.md §4.8, §6).
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// EvalStmt is `eval term ;`.
type EvalStmt struct{ Term Node }

func (EvalStmt) stmtNode()      {}
func (s EvalStmt) String() string { return fmt.Sprintf("eval %s", s.Term) }

// CheckStmt is `check term ;` (spec.md §4.8's Check operation, given a
// concrete keyword — see SPEC_FULL.md supplemented features).
type CheckStmt struct{ Term Node }

func (CheckStmt) stmtNode()      {}
func (s CheckStmt) String() string { return fmt.Sprintf("check %s", s.Term) }

// DeclareStmt is `def ident :: type ;`.
type DeclareStmt struct {
	Name string
	Type Node
}

func (DeclareStmt) stmtNode() {}
func (s DeclareStmt) String() string {
	return fmt.Sprintf("def %s :: %s", s.Name, s.Type)
}

// LetStmt is `let ident = term ;` (spec.md §9's resolved open question;
// see SPEC_FULL.md supplemented features).
type LetStmt struct {
	Name string
	Term Node
}

func (LetStmt) stmtNode() {}
func (s LetStmt) String() string {
	return fmt.Sprintf("let %s = %s", s.Name, s.Term)
}
