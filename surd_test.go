package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Surd normalization
// ============================================================

func TestSurd_ExtractsPerfectSquareFactor(t *testing.T) {
	// sqrt(8) == 2*sqrt(2)
	s, err := symxx.NewSurd(symxx.RationalFromInt(symxx.IntFromInt64(1)), symxx.RationalFromInt(symxx.IntFromInt64(8)), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.String() != "2_/2" {
		t.Errorf("want 2_/2, got %s", s.String())
	}
}

func TestSurd_FourthRootOfFourReducesIndex(t *testing.T) {
	// (4)^(1/4) == sqrt(2)
	s, err := symxx.NewSurd(symxx.RationalFromInt(symxx.IntFromInt64(1)), symxx.RationalFromInt(symxx.IntFromInt64(4)), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.String() != "_/2" {
		t.Errorf("want _/2, got %s", s.String())
	}
}

func TestSurd_ConjugateProductIsRational(t *testing.T) {
	// (sqrt(2)+1)(sqrt(2)-1) == 1. sqrt(2) and 1 have unequal radical
	// parts, so this is a Polynomial-level product, not a Surd.Add
	// (Surd.Add rejects unequal radical parts by design).
	n, err := symxx.ParseExpr("(_/2+1)*(_/2-1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nn, err := n.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nn.String() != "1" {
		t.Errorf("want 1, got %s", nn.String())
	}
}

func TestSurd_ReciprocalIdentity(t *testing.T) {
	a, _ := symxx.NewSurd(symxx.RationalFromInt(symxx.IntFromInt64(3)), symxx.RationalFromInt(symxx.IntFromInt64(5)), 2)
	inv, err := a.Recip()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := a.Mul(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsRational() || !got.Coe.IsOne() {
		t.Errorf("want rational 1, got %s", got.String())
	}
}

func TestSurd_PowIntegerMatchesRepeatedMultiplication(t *testing.T) {
	s, _ := symxx.NewSurd(symxx.RationalFromInt(symxx.IntFromInt64(1)), symxx.RationalFromInt(symxx.IntFromInt64(3)), 2)
	viaPow, err := s.Pow(symxx.RationalFromInt(symxx.IntFromInt64(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaMul, err := s.Mul(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !viaPow.Equal(viaMul) {
		t.Errorf("want %s, got %s", viaMul.String(), viaPow.String())
	}
}
