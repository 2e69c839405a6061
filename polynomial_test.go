package symxx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Polynomial normalization and multinomial expansion
// ============================================================

func polyFromString(t *testing.T, s string) symxx.Polynomial {
	t.Helper()
	expr, err := symxx.ParseExpr(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	n, err := expr.Normalize()
	if err != nil {
		t.Fatalf("normalize %q: %v", s, err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("eval %q: %v", s, err)
	}
	if f == nil {
		t.Fatalf("expression %q did not fold to a Fraction", s)
	}
	return f.Numer
}

func TestPolynomial_NormalizationMergesLikeTerms(t *testing.T) {
	p := polyFromString(t, "x + x + 2*x")
	got, err := p.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Terms) != 1 {
		t.Fatalf("want a single merged term, got %d: %s", len(got.Terms), got.String())
	}
	if got.String() != "4*x" {
		t.Errorf("want 4*x, got %s", got.String())
	}
}

func TestPolynomial_NormalizationIdempotent(t *testing.T) {
	p := polyFromString(t, "3*x^2 + x + 5 - x")
	once, err := p.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := once.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("normalize(normalize(p)) != normalize(p) (-want +got):\n%s", diff)
	}
}

func TestPolynomial_CubeExpansionViaMultinomial(t *testing.T) {
	// (x+1)^3 == x^3 + 3x^2 + 3x + 1
	expr, err := symxx.ParseExpr("(x+1)^3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := expr.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := symxx.ParseExpr("x^3 + 3*x^2 + 3*x + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wn, err := want.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != wn.String() {
		t.Errorf("want %s, got %s", wn.String(), n.String())
	}
}
