package symxx_test

import (
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// Primality
// ============================================================

func TestIsPrime_SmallKnownPrimesAndComposites(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 97, 7919}
	for _, p := range primes {
		if !symxx.IsPrime(symxx.IntFromInt64(p)) {
			t.Errorf("%d should be prime", p)
		}
	}
	composites := []int64{1, 4, 6, 100, 7921}
	for _, c := range composites {
		if symxx.IsPrime(symxx.IntFromInt64(c)) {
			t.Errorf("%d should not be prime", c)
		}
	}
}

func TestIsPrime_LargeDeterministicBand(t *testing.T) {
	// 1000003 is prime, well within the fast-path bands.
	if !symxx.IsPrime(symxx.IntFromInt64(1000003)) {
		t.Errorf("1000003 should be prime")
	}
	if symxx.IsPrime(symxx.IntFromInt64(1000005)) {
		t.Errorf("1000005 should not be prime")
	}
}

// ============================================================
// Factorize
// ============================================================

func TestFactorize_ProductOfPrimes(t *testing.T) {
	n, _ := symxx.IntFromString("1234554321")
	got := symxx.Factorize(n)
	want := []int64{3, 7, 11, 13, 37, 41, 271}
	if len(got) != len(want) {
		t.Fatalf("want %d factors, got %d: %v", len(want), len(got), got)
	}
	product := symxx.IntFromInt64(1)
	for _, f := range got {
		if !symxx.IsPrime(f) {
			t.Errorf("factor %s is not prime", f.String())
		}
		product = product.Mul(f)
	}
	if product.Cmp(n) != 0 {
		t.Errorf("product of factors %s != n %s", product.String(), n.String())
	}
}

func TestFactorize_PrimeInputIsSingleFactor(t *testing.T) {
	n := symxx.IntFromInt64(104729) // the 10000th prime
	got := symxx.Factorize(n)
	if len(got) != 1 || got[0].Cmp(n) != 0 {
		t.Errorf("expected [%s], got %v", n.String(), got)
	}
}
