// Package parser implements a recursive-descent parser for the
// concrete syntax of spec.md §6, extended with `check` and `let` (see
// SPEC_FULL.md) and with the dependent form `∀ x : A . B` (see
// ast.Forall). It produces ast.Statement values; lowering
// those to the core calculus is ast.Lower/ast.LowerC.
package parser

import (
	"fmt"

	"github.com/go-lambdapi/lambdapi/internal/ast"
	"github.com/go-lambdapi/lambdapi/internal/lexer"
)

// Parser turns a token stream into a sequence of statements, collecting
// (rather than aborting on) parse errors the way the teacher's own
// parser accumulates p.Errors() across a whole file.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	errors []error
}

// New builds a Parser over l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errf(format string, args ...interface{}) {
	p.errors = append(p.errors, parseErrorAt(p.cur, fmt.Sprintf(format, args...)))
}

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.cur.Type != t {
		p.errf("expected %s, found %s (%q)", t, p.cur.Type, p.cur.Literal)
		return false
	}
	p.next()
	return true
}

// ParseProgram parses every statement in the input, terminated by EOF.
// A statement that fails to parse is skipped up to the next ';' so that
// later statements can still be recovered (one REPL line is one
// statement, but --input files may contain several).
func (p *Parser) ParseProgram() []ast.Statement {
	var stmts []ast.Statement
	for p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.cur.Type == lexer.SEMI {
			p.next()
		} else if p.cur.Type != lexer.EOF {
			p.errf("expected ';' after statement, found %s", p.cur.Type)
			p.skipToSemiOrEOF()
		}
	}
	return stmts
}

// ParseStatement parses exactly one statement (used by the REPL, which
// feeds one line at a time).
func (p *Parser) ParseStatement() ast.Statement {
	stmt := p.parseStatement()
	if p.cur.Type == lexer.SEMI {
		p.next()
	} else if p.cur.Type != lexer.EOF {
		p.errf("expected ';' after statement, found %s", p.cur.Type)
	}
	return stmt
}

func (p *Parser) skipToSemiOrEOF() {
	for p.cur.Type != lexer.SEMI && p.cur.Type != lexer.EOF {
		p.next()
	}
	if p.cur.Type == lexer.SEMI {
		p.next()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.DEF:
		return p.parseDeclare()
	case lexer.LET:
		return p.parseLet()
	case lexer.EVAL:
		return p.parseEval()
	case lexer.CHECK:
		return p.parseCheck()
	default:
		p.errf("expected a statement (def/let/eval/check), found %s", p.cur.Type)
		// Stop at the ';' without consuming it: the caller consumes it.
		for p.cur.Type != lexer.SEMI && p.cur.Type != lexer.EOF {
			p.next()
		}
		return nil
	}
}

func (p *Parser) parseDeclare() ast.Statement {
	p.next() // consume 'def'
	if p.cur.Type != lexer.IDENT {
		p.errf("expected identifier after 'def', found %s", p.cur.Type)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(lexer.DCOLON) {
		return nil
	}
	ty := p.parseExpr()
	return ast.DeclareStmt{Name: name, Type: ty}
}

func (p *Parser) parseLet() ast.Statement {
	p.next() // consume 'let'
	if p.cur.Type != lexer.IDENT {
		p.errf("expected identifier after 'let', found %s", p.cur.Type)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	t := p.parseExpr()
	return ast.LetStmt{Name: name, Term: t}
}

func (p *Parser) parseEval() ast.Statement {
	p.next() // consume 'eval'
	t := p.parseExpr()
	return ast.EvalStmt{Term: t}
}

func (p *Parser) parseCheck() ast.Statement {
	p.next() // consume 'check'
	t := p.parseExpr()
	return ast.CheckStmt{Term: t}
}

// expr := expr4 "::" expr | expr4
func (p *Parser) parseExpr() ast.Node {
	pos := p.pos()
	lhs := p.parseExpr4()
	if p.cur.Type == lexer.DCOLON {
		p.next()
		ty := p.parseExpr()
		return ast.NewAnnotated(pos, lhs, ty)
	}
	return lhs
}

// expr4 := "∀" ident ":" expr "." expr4 | expr3 "->" expr4 | expr3
func (p *Parser) parseExpr4() ast.Node {
	if p.cur.Type == lexer.FORALL {
		pos := p.pos()
		p.next()
		if p.cur.Type != lexer.IDENT {
			p.errf("expected identifier after '∀', found %s", p.cur.Type)
			return nil
		}
		param := p.cur.Literal
		p.next()
		if !p.expect(lexer.COLON) {
			return nil
		}
		paramTy := p.parseExpr()
		if !p.expect(lexer.DOT) {
			return nil
		}
		body := p.parseExpr4()
		return ast.NewForall(pos, param, paramTy, body)
	}

	lhs := p.parseExpr3()
	if p.cur.Type == lexer.ARROW {
		pos := p.pos()
		p.next()
		rhs := p.parseExpr4()
		return ast.NewArrow(pos, lhs, rhs)
	}
	return lhs
}

// expr3 := ("λ"|"lambda"|"\") ident "->" expr3 | expr2
func (p *Parser) parseExpr3() ast.Node {
	if p.cur.Type == lexer.LAMBDA {
		pos := p.pos()
		p.next()
		if p.cur.Type != lexer.IDENT {
			p.errf("expected identifier after lambda, found %s", p.cur.Type)
			return nil
		}
		param := p.cur.Literal
		p.next()
		if !p.expect(lexer.ARROW) {
			return nil
		}
		body := p.parseExpr3()
		return ast.NewLambda(pos, param, body)
	}
	return p.parseExpr2()
}

// expr2 := expr2 expr1 | expr1   (left-associative application)
func (p *Parser) parseExpr2() ast.Node {
	lhs := p.parseExpr1()
	for p.startsExpr1() {
		pos := p.pos()
		arg := p.parseExpr1()
		lhs = ast.NewApp(pos, lhs, arg)
	}
	return lhs
}

// expr1 := ("S"|"Succ") expr1 | expr0
func (p *Parser) parseExpr1() ast.Node {
	if p.cur.Type == lexer.SUCC {
		pos := p.pos()
		p.next()
		pred := p.parseExpr1()
		return ast.NewSucc(pos, pred)
	}
	return p.parseExpr0()
}

// expr0 := term
func (p *Parser) parseExpr0() ast.Node {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.LPAREN:
		p.next()
		inner := p.parseExpr()
		p.expect(lexer.RPAREN)
		return inner
	case lexer.ZERO:
		p.next()
		return ast.NewZero(pos)
	case lexer.INT:
		lit := p.cur.Literal
		p.next()
		n := 0
		for _, r := range lit {
			n = n*10 + int(r-'0')
		}
		return ast.NewNumberLit(pos, n)
	case lexer.IDENT:
		name := p.cur.Literal
		p.next()
		return ast.NewVar(pos, name)
	case lexer.NAT:
		p.next()
		return ast.NewNatType(pos)
	case lexer.TYPEKW:
		p.next()
		return ast.NewUniverse(pos)
	default:
		p.errf("unexpected token %s (%q)", p.cur.Type, p.cur.Literal)
		p.next()
		return ast.NewZero(pos)
	}
}

// startsExpr1 reports whether the current token can begin an expr1/expr0
// (used to decide whether application continues).
func (p *Parser) startsExpr1() bool {
	switch p.cur.Type {
	case lexer.LPAREN, lexer.ZERO, lexer.INT, lexer.IDENT, lexer.NAT, lexer.TYPEKW, lexer.SUCC:
		return true
	default:
		return false
	}
}

func (p *Parser) pos() ast.Pos { return ast.Pos{Line: p.cur.Line, Column: p.cur.Column} }
