package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Parser: implicit multiplication, radicals, malformed input
// ============================================================

func TestParser_ImplicitMultiplicationDigitSymbol(t *testing.T) {
	n, err := symxx.ParseExpr("2x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nn, err := n.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nn.String() != "2*x" {
		t.Errorf("want 2*x, got %s", nn.String())
	}
}

func TestParser_MultiCharacterBracedSymbol(t *testing.T) {
	n, err := symxx.ParseExpr("{foo}+{foo}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nn, err := n.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nn.String() != "2*{foo}" {
		t.Errorf("want 2*{foo}, got %s", nn.String())
	}
}

func TestParser_RadicalWithExplicitIndex(t *testing.T) {
	// _3/8 == cube root of 8 == 2
	n, err := symxx.ParseExpr("_3/8")
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

func TestParser_MismatchedParenIsParseError(t *testing.T) {
	if _, err := symxx.ParseExpr("(1+2"); err == nil {
		t.Errorf("expected a parse error for an unmatched '('")
	}
}

func TestParser_LeadingNegativeNumber(t *testing.T) {
	n, err := symxx.ParseExpr("-3+5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil || f.String() != "2" {
		t.Errorf("want 2, got %v", f)
	}
}

func TestParser_DoubleStarIsPower(t *testing.T) {
	n, err := symxx.ParseExpr("2**10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := n.TryEval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil || f.String() != "1024" {
		t.Errorf("want 1024, got %v", f)
	}
}
