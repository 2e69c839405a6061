package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Fraction reduction and arithmetic
// ============================================================

func fracFromString(t *testing.T, s string) symxx.Fraction {
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
	return *f
}

func TestFraction_AddOverDifferentDenominators(t *testing.T) {
	a := fracFromString(t, "1/2")
	b := fracFromString(t, "1/3")
	got, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fracFromString(t, "5/6")
	if got.String() != want.String() {
		t.Errorf("want %s, got %s", want.String(), got.String())
	}
}

func TestFraction_ZeroNumeratorDivisorErrors(t *testing.T) {
	a := fracFromString(t, "1")
	zero := fracFromString(t, "0")
	if _, err := a.Div(zero); err == nil {
		t.Errorf("expected error dividing by zero fraction")
	}
}

func TestFraction_TrivialDenominatorPrintsAsNumerator(t *testing.T) {
	f := symxx.FractionFromInt(5)
	if f.String() != "5" {
		t.Errorf("want 5, got %s", f.String())
	}
}
