package parser

import (
	"fmt"

	"github.com/go-lambdapi/lambdapi/internal/diag"
	"github.com/go-lambdapi/lambdapi/internal/lexer"
)

// parseErrorAt wraps a diag.ParseError with the token's source position.
func parseErrorAt(tok lexer.Token, message string) error {
	return diag.ParseError(fmt.Sprintf("%d:%d: %s", tok.Line, tok.Column, message))
}
