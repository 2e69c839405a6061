package symxx_test

import (
	"strings"
	"testing"

	"github.com/caozhanhao/symxx"
)

// ============================================================
// BigInt basic arithmetic
// ============================================================

func TestBigInt_AddSub(t *testing.T) {
	a, _ := symxx.BigIntFromString("123456789012345678901234567890")
	b, _ := symxx.BigIntFromString("987654321098765432109876543210")
	sum := a.Add(b)
	want, _ := symxx.BigIntFromString("1111111110111111111011111111100")
	if !sum.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), sum.String())
	}
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Errorf("sub did not invert add: got %s", back.String())
	}
}

func TestBigInt_MulSchoolbookAndKaratsuba(t *testing.T) {
	small := symxx.BigIntFromInt64(12345)
	other := symxx.BigIntFromInt64(6789)
	got := small.Mul(other)
	want := symxx.BigIntFromInt64(12345 * 6789)
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), got.String())
	}

	// 10^700 spans 78 limbs, above the Karatsuba cutoff.
	big := symxx.BigIntFromInt64(10).Pow(700)
	gotBig := big.Mul(big)
	wantBig, _ := symxx.BigIntFromString("1" + strings.Repeat("0", 1400))
	if !gotBig.Equal(wantBig) {
		t.Errorf("Karatsuba product of 10^700 with itself is not 10^1400")
	}
}

func TestBigInt_DivModEuclidean(t *testing.T) {
	n := symxx.BigIntFromInt64(-7)
	d := symxx.BigIntFromInt64(3)
	q, r, err := n.DivMod(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Sign() < 0 {
		t.Errorf("remainder must be non-negative, got %s", r.String())
	}
	if !q.Mul(d).Add(r).Equal(n) {
		t.Errorf("q*d+r != n: q=%s r=%s", q.String(), r.String())
	}
}

func TestBigInt_Pow(t *testing.T) {
	base := symxx.BigIntFromInt64(2)
	got := base.Pow(64)
	want, _ := symxx.BigIntFromString("18446744073709551616")
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), got.String())
	}
}

func TestBigInt_GcdTerminatesOnNegative(t *testing.T) {
	a := symxx.BigIntFromInt64(-48)
	b := symxx.BigIntFromInt64(18)
	g := a.Gcd(b)
	if g.Cmp(symxx.BigIntFromInt64(6)) != 0 {
		t.Errorf("want gcd 6, got %s", g.String())
	}
}

func TestBigInt_StringRoundTrip(t *testing.T) {
	s := "-98765432109876543210123456789"
	n, err := symxx.BigIntFromString(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != s {
		t.Errorf("want %s, got %s", s, n.String())
	}
}
