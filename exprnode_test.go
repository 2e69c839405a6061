package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// ExprNode folding and substitution
// ============================================================

func TestExprNode_TryEvalFoldsClosedExpression(t *testing.T) {
	n, err := symxx.ParseExpr("1/2 + 1/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil {
		t.Fatalf("expected a fold for a closed expression")
	}
	if f.String() != "5/6" {
		t.Errorf("want 5/6, got %s", f.String())
	}
}

func TestExprNode_TryEvalFoldsFreeSymbolIntoPolynomial(t *testing.T) {
	// A bare symbol is just another Fraction leaf, and leaves always
	// fold, so TryEval doesn't return nil merely because a symbol is
	// free: it returns the folded (still-symbolic) polynomial.
	n, err := symxx.ParseExpr("x + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil {
		t.Fatalf("expected a folded Fraction, got nil")
	}
	if f.String() != "x + 1" {
		t.Errorf("want x + 1, got %s", f.String())
	}
}

func TestExprNode_TryEvalNilOnNonRationalExponent(t *testing.T) {
	// The only genuine nil path is '^' with an exponent that doesn't
	// fold to a symbol-free rational with a trivial denominator.
	n, err := symxx.ParseExpr("2^x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Errorf("expected nil fold for a non-rational exponent, got %s", f.String())
	}
}

func TestExprNode_SubstituteThenNormalize(t *testing.T) {
	n, err := symxx.ParseExpr("x^2 + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := map[string]symxx.Surd{"x": symxx.SurdFromInt(3)}
	got, err := n.Substitute(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "10" {
		t.Errorf("want 10, got %s", got.String())
	}
}

func TestExprNode_RadicalLiteralSquaresBack(t *testing.T) {
	n, err := symxx.ParseExpr("_/2 * _/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nn, err := n.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nn.String() != "2" {
		t.Errorf("want 2, got %s", nn.String())
	}
}

func TestExprNode_WithparenLeftOperatorAlwaysParenthesizes(t *testing.T) {
	// a^b*c must reprint as (a^b)*c: any operator left child under a
	// '*'/'/'/'^' parent is parenthesized unconditionally, even though
	// '^' already binds tighter than '*' and a generic precedence rule
	// would omit the parens here. This is the preserved withparen
	// truth table, not a generic precedence-only heuristic.
	n, err := symxx.ParseExpr("(a^b)*c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "(a^b)*c" {
		t.Errorf("want (a^b)*c, got %s", n.String())
	}
}
