package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Rational construction and reduction
// ============================================================

func TestRational_ReducesToLowestTerms(t *testing.T) {
	r, err := symxx.NewRational(symxx.IntFromInt64(6), symxx.IntFromInt64(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "3/4" {
		t.Errorf("want 3/4, got %s", r.String())
	}
}

func TestRational_NegativeDenominatorNormalized(t *testing.T) {
	r, err := symxx.NewRational(symxx.IntFromInt64(1), symxx.IntFromInt64(-2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "-1/2" {
		t.Errorf("want -1/2, got %s", r.String())
	}
}

func TestRational_ZeroDenominatorRejected(t *testing.T) {
	_, err := symxx.NewRational(symxx.IntFromInt64(1), symxx.IntFromInt64(0))
	if err == nil {
		t.Errorf("expected error for zero denominator")
	}
}

func TestRational_AddAcrossDenominators(t *testing.T) {
	a, _ := symxx.RationalFromString("1/2")
	b, _ := symxx.RationalFromString("1/3")
	got := a.Add(b)
	want, _ := symxx.RationalFromString("5/6")
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), got.String())
	}
}

func TestRational_FromFloatExactDecimal(t *testing.T) {
	a, err := symxx.RationalFromFloat64(0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := symxx.RationalFromFloat64(0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := a.Add(b)
	want, _ := symxx.RationalFromString("3/10")
	if !sum.Equal(want) {
		t.Errorf("want 3/10, got %s", sum.String())
	}
}

func TestRational_PowIntNegativeExponent(t *testing.T) {
	r := symxx.RationalFromInt(symxx.IntFromInt64(2))
	got, err := r.PowInt(-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := symxx.RationalFromString("1/8")
	if !got.Equal(want) {
		t.Errorf("want 1/8, got %s", got.String())
	}
}

func TestRational_LaTeX(t *testing.T) {
	r, _ := symxx.RationalFromString("-2/5")
	if r.LaTeX() != `-\frac{2}{5}` {
		t.Errorf(`want -\frac{2}{5}, got %s`, r.LaTeX())
	}
}
