package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Term multiplication, power, substitution
// ============================================================

func TestTerm_MulMergesExponents(t *testing.T) {
	x2 := symxx.Term{Coe: symxx.SurdFromInt(3), Symbols: map[string]symxx.Rational{"x": symxx.RationalFromInt(symxx.IntFromInt64(2))}}
	x3 := symxx.Term{Coe: symxx.SurdFromInt(5), Symbols: map[string]symxx.Rational{"x": symxx.RationalFromInt(symxx.IntFromInt64(3))}}
	got, err := x2.Mul(x3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "15*x^5" {
		t.Errorf("want 15*x^5, got %s", got.String())
	}
}

func TestTerm_SubstituteRemovesSymbol(t *testing.T) {
	term := symxx.Term{Coe: symxx.SurdFromInt(2), Symbols: map[string]symxx.Rational{"x": symxx.RationalFromInt(symxx.IntFromInt64(3))}}
	env := map[string]symxx.Surd{"x": symxx.SurdFromInt(2)}
	got, err := term.Substitute(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsSymbolFree() {
		t.Fatalf("expected symbol-free term, got %s", got.String())
	}
	if got.Coe.Coe.String() != "16" {
		t.Errorf("want 16, got %s", got.Coe.Coe.String())
	}
}

func TestTerm_IsLikeTermRequiresSameRadicalPart(t *testing.T) {
	a := symxx.Term{Coe: symxx.SurdFromInt(1), Symbols: map[string]symxx.Rational{"x": symxx.RationalFromInt(symxx.IntFromInt64(1))}}
	sqrt2, _ := symxx.NewSurd(symxx.RationalFromInt(symxx.IntFromInt64(1)), symxx.RationalFromInt(symxx.IntFromInt64(2)), 2)
	b := symxx.Term{Coe: sqrt2, Symbols: map[string]symxx.Rational{"x": symxx.RationalFromInt(symxx.IntFromInt64(1))}}
	if a.IsLikeTerm(b) {
		t.Errorf("terms with differing radical parts should not be like terms")
	}
}
