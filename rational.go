package symxx

import (
	"strconv"
	"strings"
)

// Rational is an exact ratio of two Int backend values, grounded on
// original_source/include/symxx/num.hpp's Rational<T>. The invariant
// maintained after every constructor and operation is Denom > 0 and
// gcd(|Numer|, Denom) == 1.
type Rational struct {
	Numer Int
	Denom Int
}

func RationalFromInt(n Int) Rational {
	return Rational{Numer: n, Denom: intOne}
}

// NewRational builds and reduces n/d, rejecting a zero denominator.
func NewRational(n, d Int) (Rational, error) {
	if d.IsZero() {
		return Rational{}, NewArithmeticError("rational denominator is zero")
	}
	r := Rational{Numer: n, Denom: d}
	return r.reduce(), nil
}

func (r Rational) reduce() Rational {
	if r.Denom.Sign() < 0 {
		r.Numer, r.Denom = r.Numer.Neg(), r.Denom.Neg()
	}
	if r.Numer.IsZero() {
		return Rational{Numer: intZero, Denom: intOne}
	}
	g := r.Numer.Gcd(r.Denom)
	if g.Cmp(intOne) > 0 {
		n, _, _ := r.Numer.DivMod(g)
		d, _, _ := r.Denom.DivMod(g)
		r.Numer, r.Denom = n, d
	}
	return r
}

// RationalFromString parses "[±]n[.d...]" or "[±]n/d".
func RationalFromString(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, NewParseError("empty rational literal")
	}
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		n, err := IntFromString(s[:idx])
		if err != nil {
			return Rational{}, WrapParseError("invalid rational numerator", err)
		}
		d, err := IntFromString(s[idx+1:])
		if err != nil {
			return Rational{}, WrapParseError("invalid rational denominator", err)
		}
		return NewRational(n, d)
	}
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart := s[:idx]
		fracPart := s[idx+1:]
		if intPart == "" || intPart == "-" || intPart == "+" {
			intPart += "0"
		}
		combined := intPart + fracPart
		n, err := IntFromString(combined)
		if err != nil {
			return Rational{}, WrapParseError("invalid decimal literal", err)
		}
		d := intOne
		for i := 0; i < len(fracPart); i++ {
			d = d.Mul(IntFromInt64(10))
		}
		return NewRational(n, d)
	}
	n, err := IntFromString(s)
	if err != nil {
		return Rational{}, WrapParseError("invalid integer literal", err)
	}
	return NewRational(n, intOne)
}

// RationalFromFloat64 formats f as its shortest round-trip decimal
// string and parses that string exactly, so that e.g. 0.1+0.2 == 0.3
// exactly rather than accumulating binary-float noise (scenario 8 of
// the testable properties). It does no decimal-place probing and applies
// no digit bound: every digit of that string goes into the Int numerator
// and power-of-ten denominator.
func RationalFromFloat64(f float64) (Rational, error) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return RationalFromString(s)
}

func (r Rational) IsZero() bool { return r.Numer.IsZero() }
func (r Rational) IsOne() bool  { return r.Numer.Cmp(intOne) == 0 && r.Denom.Cmp(intOne) == 0 }
func (r Rational) IsInt() bool  { return r.Denom.Cmp(intOne) == 0 }
func (r Rational) Sign() int    { return r.Numer.Sign() }

func (r Rational) Neg() Rational { return Rational{Numer: r.Numer.Neg(), Denom: r.Denom} }

func (r Rational) Add(o Rational) Rational {
	l := r.Denom.Lcm(o.Denom)
	lr, _, _ := l.DivMod(r.Denom)
	lo, _, _ := l.DivMod(o.Denom)
	n := r.Numer.Mul(lr).Add(o.Numer.Mul(lo))
	return Rational{Numer: n, Denom: l}.reduce()
}

func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

func (r Rational) Mul(o Rational) Rational {
	g1 := r.Numer.Gcd(o.Denom)
	g2 := o.Numer.Gcd(r.Denom)
	n1, _, _ := r.Numer.DivMod(g1)
	d2, _, _ := o.Denom.DivMod(g1)
	n2, _, _ := o.Numer.DivMod(g2)
	d1, _, _ := r.Denom.DivMod(g2)
	return Rational{Numer: n1.Mul(n2), Denom: d1.Mul(d2)}.reduce()
}

func (r Rational) Recip() (Rational, error) {
	if r.IsZero() {
		return Rational{}, NewArithmeticError("reciprocal of zero rational")
	}
	if r.Numer.Sign() < 0 {
		return Rational{Numer: r.Denom.Neg(), Denom: r.Numer.Neg()}, nil
	}
	return Rational{Numer: r.Denom, Denom: r.Numer}, nil
}

func (r Rational) Div(o Rational) (Rational, error) {
	ro, err := o.Recip()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(ro), nil
}

func (r Rational) Cmp(o Rational) int {
	lhs := r.Numer.Mul(o.Denom)
	rhs := o.Numer.Mul(r.Denom)
	return lhs.Cmp(rhs)
}

func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// PowInt raises r to an integer power (possibly negative).
func (r Rational) PowInt(e int64) (Rational, error) {
	if e == 0 {
		return RationalFromInt(intOne), nil
	}
	neg := e < 0
	u := uint64(e)
	if neg {
		u = uint64(-e)
	}
	result := Rational{Numer: r.Numer.Pow(u), Denom: r.Denom.Pow(u)}.reduce()
	if neg {
		return result.Recip()
	}
	return result, nil
}

func (r Rational) Float64() float64 {
	nf, _ := strconv.ParseFloat(r.Numer.String(), 64)
	df, _ := strconv.ParseFloat(r.Denom.String(), 64)
	return nf / df
}

func (r Rational) String() string {
	if r.IsInt() {
		return r.Numer.String()
	}
	return r.Numer.String() + "/" + r.Denom.String()
}

func (r Rational) LaTeX() string {
	if r.IsInt() {
		return r.Numer.String()
	}
	sign := ""
	n := r.Numer
	if n.Sign() < 0 {
		sign = "-"
		n = n.Neg()
	}
	return sign + "\\frac{" + n.String() + "}{" + r.Denom.String() + "}"
}
