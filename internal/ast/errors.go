package ast

import "github.com/go-lambdapi/lambdapi/internal/diag"

func errUnannotatedLambda(n Lambda) error {
	return diag.ParseError("lambda abstraction " + n.String() + " needs a type annotation to be used here")
}

func errUnhandledNode(n Node) error {
	return diag.ParseError("cannot lower node: " + n.String())
}
