//go:build !symxx_int128 && !symxx_huge

package symxx

import (
	"math/bits"
	"strconv"
)

// Int64Backend is the default IntBackend: a native 64-bit signed
// integer. It is selected when neither the symxx_int128 nor the
// symxx_huge build tag is set.
type Int64Backend int64

// Int is the integer backend the rest of the tower is built against,
// resolved at compile time by build tags (§4.B).
type Int = Int64Backend

// backendName identifies the compiled-in Int backend for the Shell's
// "version" command.
const backendName = "int64"

func IntFromInt64(v int64) Int { return Int64Backend(v) }

func IntFromString(s string) (Int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, WrapParseError("invalid int64 literal "+s, err)
	}
	return Int64Backend(v), nil
}

func (i Int64Backend) Sign() int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	default:
		return 0
	}
}

func (i Int64Backend) IsZero() bool     { return i == 0 }
func (i Int64Backend) Neg() Int         { return -i }
func (i Int64Backend) Add(o Int) Int    { return i + o }
func (i Int64Backend) Sub(o Int) Int    { return i - o }
func (i Int64Backend) Mul(o Int) Int    { return i * o }
func (i Int64Backend) Cmp(o Int) int {
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	default:
		return 0
	}
}

func (i Int64Backend) Abs() Int {
	if i < 0 {
		return -i
	}
	return i
}

// DivMod returns Euclidean division: 0 <= r < |o|.
func (i Int64Backend) DivMod(o Int) (Int, Int, error) {
	if o == 0 {
		return 0, 0, NewArithmeticError("division by zero")
	}
	q := i / o
	r := i % o
	if r < 0 {
		if o > 0 {
			q--
			r += o
		} else {
			q++
			r -= o
		}
	}
	return q, r, nil
}

func (i Int64Backend) Pow(e uint64) Int {
	result := Int64Backend(1)
	base := i
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}
	return result
}

func (i Int64Backend) Gcd(o Int) Int {
	a, b := i.Abs(), o.Abs()
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (i Int64Backend) Lcm(o Int) Int {
	if i == 0 || o == 0 {
		return 0
	}
	g := i.Gcd(o)
	return (i.Abs() / g) * o.Abs()
}

// MulMod computes (i*a) mod m using 128-bit intermediate products via
// math/bits to avoid overflow, result in [0, |m|).
func (i Int64Backend) MulMod(a, m Int) Int {
	ai, aa, mm := int64(i), int64(a), int64(m)
	neg := (ai < 0) != (aa < 0)
	ua, ub := uint64(abs64(ai)), uint64(abs64(aa))
	hi, lo := bits.Mul64(ua, ub)
	um := uint64(abs64(mm))
	_, rem := bits.Div64(hi%um, lo, um)
	r := int64(rem)
	if neg && r != 0 {
		r = int64(um) - r
	}
	return Int64Backend(r)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (i Int64Backend) ModPow(exp, mod Int) Int {
	result := Int64Backend(1)
	_, base, _ := i.DivMod(mod)
	e := exp
	zero := Int64Backend(0)
	two := Int64Backend(2)
	for e.Cmp(zero) > 0 {
		_, rem, _ := e.DivMod(two)
		if rem != 0 {
			result = result.MulMod(base, mod)
		}
		base = base.MulMod(base, mod)
		e, _, _ = e.DivMod(two)
	}
	return result
}

func (i Int64Backend) BitLen() int { return bits.Len64(uint64(i.Abs())) }

func (i Int64Backend) Sqrt() Int {
	a := uint64(i.Abs())
	if a == 0 {
		return 0
	}
	x := a
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + a/x) / 2
	}
	return Int64Backend(x)
}

func (i Int64Backend) String() string { return strconv.FormatInt(int64(i), 10) }

func (i Int64Backend) Int64() (int64, bool) { return int64(i), true }
