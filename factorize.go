package symxx

import (
	"math/rand/v2"
)

// firstPrimes mirrors factorize_internal's first_prime witness table,
// grounded on original_source/include/symxx/factorize.hpp.
var firstPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71}

// IsPrimeSlowPath is the 6k±1 trial-division primality test used below
// 100,000.
func IsPrimeSlowPath(n Int) bool {
	two := IntFromInt64(2)
	three := IntFromInt64(3)
	nine := IntFromInt64(9)
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if isEven(n) {
		return false
	}
	if divides(n, three) {
		return false
	}
	if n.Cmp(nine) < 0 {
		return true
	}
	sqrtN := n.Sqrt().Add(intOne)
	six := IntFromInt64(6)
	for i := IntFromInt64(5); i.Cmp(sqrtN) < 0; i = i.Add(six) {
		if divides(n, i) || divides(n, i.Add(two)) {
			return false
		}
	}
	return true
}

func isEven(n Int) bool {
	_, r, _ := n.DivMod(IntFromInt64(2))
	return r.IsZero()
}

func divides(n, d Int) bool {
	_, r, _ := n.DivMod(d)
	return r.IsZero()
}

// witnessCountByMagnitude picks the number of leading firstPrimes
// entries to use as deterministic Miller-Rabin witnesses, following the
// magnitude bands of the source's is_prime_fast_path.
func witnessCountByMagnitude(n Int) (int, bool) {
	bands := []struct {
		bound Int
		count int
	}{
		{intFromDecimal("3825123056546413051"), 12},
		{intFromDecimal("341550071728321"), 9},
		{intFromDecimal("3474749660383"), 7},
		{intFromDecimal("2152302898747"), 6},
		{intFromDecimal("4759123141"), 5},
	}
	for _, b := range bands {
		if n.Cmp(b.bound) >= 0 {
			return b.count, true
		}
	}
	return 0, false
}

func intFromDecimal(s string) Int {
	v, err := IntFromString(s)
	if err != nil {
		invariantViolation("bad witness bound literal: " + s)
	}
	return v
}

// IsPrimeFastPath implements the deterministic-witness Miller-Rabin test
// of the source: each magnitude band uses a fixed witness set, {2, 7, 61}
// below 4,759,123,141 and then the first 5, 6, 7 or 9 primes per
// witnessCountByMagnitude. From 3,825,123,056,546,413,051 upward the
// first 12 primes are used with no further bands; no band draws random
// witnesses.
func IsPrimeFastPath(n Int) bool {
	if !smallPrimeSieveOK(n) {
		return false
	}
	if wc, ok := witnessCountByMagnitude(n); ok {
		return millerRabin(n, intsFromInt64s(firstPrimes[:wc]))
	}
	return millerRabin(n, intsFromInt64s([]int64{2, 7, 61}))
}

// smallPrimeSieveOK checks n isn't divisible by any of the first
// several primes, a cheap pre-filter before the modular-exponentiation
// based Miller-Rabin rounds.
func smallPrimeSieveOK(n Int) bool {
	for _, p := range firstPrimes {
		pi := IntFromInt64(p)
		if n.Cmp(pi) == 0 {
			return true
		}
		if divides(n, pi) {
			return false
		}
	}
	return true
}

func intsFromInt64s(vs []int64) []Int {
	out := make([]Int, len(vs))
	for i, v := range vs {
		out[i] = IntFromInt64(v)
	}
	return out
}

// millerRabin runs the deterministic Miller-Rabin test with the given
// witness set, per the s/d decomposition of n-1 in the source.
func millerRabin(n Int, witnesses []Int) bool {
	if !smallPrimeSieveOK(n) {
		return n.Cmp(IntFromInt64(2)) == 0 || n.Cmp(IntFromInt64(3)) == 0 || n.Cmp(IntFromInt64(5)) == 0 ||
			n.Cmp(IntFromInt64(7)) == 0
	}
	one := intOne
	two := IntFromInt64(2)
	nm1 := n.Sub(one)
	d := nm1
	s := IntFromInt64(0)
	for isEven(d) {
		d, _, _ = d.DivMod(two)
		s = s.Add(one)
	}
	for _, w := range witnesses {
		if w.Cmp(n) >= 0 {
			continue
		}
		x := w.ModPow(d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		composite := true
		for i := IntFromInt64(0); i.Cmp(s) < 0; i = i.Add(one) {
			x = x.MulMod(x, n)
			if x.Cmp(nm1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// IsPrime dispatches to the slow trial-division path below 100,000 and
// the fast deterministic/probabilistic path above it, matching
// factorize_internal::is_prime.
func IsPrime(n Int) bool {
	if n.Cmp(IntFromInt64(100000)) < 0 {
		return IsPrimeSlowPath(n)
	}
	return IsPrimeFastPath(n)
}

// randomInRange returns a uniformly random Int in [a, b].
func randomInRange(a, b Int) Int {
	af, _ := a.Int64()
	bf, _ := b.Int64()
	if bf <= af {
		return a
	}
	span := uint64(bf - af)
	return IntFromInt64(af + int64(rand.Uint64N(span+1)))
}

// pollardRho finds a nontrivial factor of a composite n via Brent-style
// batching of 128 steps between GCD checks, grounded on
// factorize_internal::Pollard_Rho.
func pollardRho(n Int) Int {
	four := IntFromInt64(4)
	if n.Cmp(four) == 0 {
		return IntFromInt64(2)
	}
	if IsPrime(n) {
		return n
	}
	two := IntFromInt64(2)
	one := intOne
	for {
		c := randomInRange(one, n.Sub(two))
		fx := func(x Int) Int {
			xx := x.MulMod(x, n)
			_, cm, _ := c.DivMod(n)
			s := xx.Add(cm)
			_, r, _ := s.DivMod(n)
			return r
		}
		t, r, p := IntFromInt64(0), IntFromInt64(0), one
		var q Int
		cycleFound := false
		for {
			for i := 0; i < 128; i++ {
				t = fx(t)
				r = fx(fx(r))
				diff := t.Sub(r).Abs()
				q = p.MulMod(diff, n)
				if t.Cmp(r) == 0 || q.IsZero() {
					cycleFound = true
					break
				}
				p = q
			}
			d := p.Gcd(n)
			if d.Cmp(one) > 0 {
				return d
			}
			if t.Cmp(r) == 0 {
				break
			}
			if cycleFound {
				break
			}
		}
	}
}

// Factorize decomposes n > 1 recursively into a multiset of primes via
// Pollard's rho, following factorize_internal::factorize.
func Factorize(n Int) []Int {
	if n.Cmp(intOne) <= 0 {
		return nil
	}
	fac := pollardRho(n)
	rest, _, _ := n.DivMod(fac)

	var out []Int
	if !IsPrime(fac) {
		out = append(out, Factorize(fac)...)
	} else {
		out = append(out, fac)
	}
	if !IsPrime(rest) {
		out = append(out, Factorize(rest)...)
	} else if rest.Cmp(intOne) > 0 {
		out = append(out, rest)
	}
	return out
}
