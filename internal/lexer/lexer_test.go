package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := `def id :: Nat -> Nat ;
eval (\x -> x) Zero ;`

	expected := []TokenType{
		DEF, IDENT, DCOLON, NAT, ARROW, NAT, SEMI,
		EVAL, LPAREN, LAMBDA, IDENT, ARROW, IDENT, RPAREN, ZERO, SEMI,
		EOF,
	}

	l := New(input, "test")
	for i, want := range expected {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: want %s, got %s (%q)", i, want, got.Type, got.Literal)
		}
	}
}

func TestNextTokenUnicode(t *testing.T) {
	input := `eval ((λ a -> λ x -> x) :: ∀ A : Type . A -> A) ℕ Zero ;`

	expected := []TokenType{
		EVAL, LPAREN, LPAREN, LAMBDA, IDENT, ARROW, LAMBDA, IDENT, ARROW, IDENT, RPAREN,
		DCOLON, FORALL, IDENT, COLON, TYPEKW, DOT, IDENT, ARROW, IDENT, RPAREN,
		NAT, ZERO, SEMI, EOF,
	}

	l := New(input, "test")
	for i, want := range expected {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: want %s, got %s (%q)", i, want, got.Type, got.Literal)
		}
	}
}

func TestNextTokenNumberLiteral(t *testing.T) {
	l := New("eval 3 ;", "test")
	tokens := []Token{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	if tokens[1].Type != INT || tokens[1].Literal != "3" {
		t.Fatalf("expected INT(3), got %v", tokens[1])
	}
}

func TestSkipsLineComments(t *testing.T) {
	l := New("-- a comment\neval Zero ;", "test")
	tok := l.NextToken()
	if tok.Type != EVAL {
		t.Fatalf("expected EVAL after comment, got %s", tok.Type)
	}
}
