package symxx

import (
	"math"
	"strconv"
)

// Surd is coe * radicand^(1/index), normalized so radicand carries no
// prime factor with multiplicity >= index and index is minimal,
// grounded on original_source/include/symxx/num.hpp's Real<T> — with
// factor extraction delegated to the Factorizer (factorize.go) rather
// than the source's inline trial division, per the data-flow line
// "radical normalization calls Factorizer".
type Surd struct {
	Coe      Rational
	Radicand Rational
	Index    uint64
}

func SurdFromRational(r Rational) Surd {
	return Surd{Coe: r, Radicand: RationalFromInt(intOne), Index: 1}
}

func SurdFromInt(n int64) Surd {
	return SurdFromRational(RationalFromInt(IntFromInt64(n)))
}

// NewSurd constructs and normalizes coe * radicand^(1/index).
func NewSurd(coe, radicand Rational, index uint64) (Surd, error) {
	if index == 0 {
		return Surd{}, NewDomainError("surd index must be >= 1")
	}
	s := Surd{Coe: coe, Radicand: radicand, Index: index}
	return s.normalize()
}

func factorMultiplicities(n Int) map[string]uint64 {
	facs := Factorize(n)
	m := make(map[string]uint64, len(facs))
	for _, f := range facs {
		m[f.String()]++
	}
	return m
}

func gcdOfExponents(index uint64, exps map[string]uint64) uint64 {
	g := index
	for _, e := range exps {
		g = gcdUint64(g, e)
		if g == 1 {
			return 1
		}
	}
	return g
}

func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (s Surd) normalize() (Surd, error) {
	if s.Coe.IsZero() {
		return Surd{Coe: RationalFromInt(intZero), Radicand: RationalFromInt(intOne), Index: 1}, nil
	}
	coe := s.Coe
	radicand := s.Radicand

	// Step 1: absorb a non-unit denominator into the numerator by
	// raising to Index and dividing coe by the old denominator.
	if radicand.Denom.Cmp(intOne) != 0 {
		oldDenom := radicand.Denom
		numRaised := radicand.Numer.Mul(oldDenom.Pow(s.Index - 1))
		radicand = RationalFromInt(numRaised)
		denRecip, err := RationalFromInt(oldDenom).Recip()
		if err != nil {
			return Surd{}, err
		}
		coe = coe.Mul(denRecip)
	}

	if radicand.Numer.Sign() < 0 {
		return Surd{}, NewDomainError("negative radicand is not representable as a real surd")
	}

	index := s.Index
	numExps := factorMultiplicities(radicand.Numer)
	for p, k := range numExps {
		if k >= index {
			pInt, _ := IntFromString(p)
			extractPow := k / index
			remainPow := k - extractPow*index
			coe = coe.Mul(RationalFromInt(pInt.Pow(extractPow)))
			if remainPow == 0 {
				delete(numExps, p)
			} else {
				numExps[p] = remainPow
			}
		}
	}
	radicandNum := reconstructFromExponents(numExps)

	g := gcdOfExponentsNonEmpty(index, numExps)
	if g > 1 {
		index /= g
		for p, k := range numExps {
			numExps[p] = k / g
		}
		radicandNum = reconstructFromExponents(numExps)
	}

	radicand = RationalFromInt(radicandNum)
	if radicand.IsOne() || coe.IsZero() {
		index = 1
		if coe.IsZero() {
			radicand = RationalFromInt(intOne)
		}
	}

	return Surd{Coe: coe, Radicand: radicand, Index: index}, nil
}

func gcdOfExponentsNonEmpty(index uint64, exps map[string]uint64) uint64 {
	if len(exps) == 0 {
		return index
	}
	return gcdOfExponents(index, exps)
}

func reconstructFromExponents(exps map[string]uint64) Int {
	result := intOne
	for p, k := range exps {
		pInt, _ := IntFromString(p)
		result = result.Mul(pInt.Pow(k))
	}
	return result
}

func (s Surd) IsEquivalentWith(o Surd) bool {
	if s.Radicand.IsOne() || s.Index == 1 {
		return o.Radicand.IsOne() || o.Index == 1
	}
	return s.Index == o.Index && s.Radicand.Equal(o.Radicand)
}

func (s Surd) Add(o Surd) (Surd, error) {
	if !s.IsEquivalentWith(o) {
		return Surd{}, NewDomainError("cannot add surds with unequal radical parts")
	}
	radicand, index := s.Radicand, s.Index
	if index == 1 || radicand.IsOne() {
		radicand, index = o.Radicand, o.Index
	}
	return NewSurd(s.Coe.Add(o.Coe), radicand, index)
}

func (s Surd) Neg() Surd { return Surd{Coe: s.Coe.Neg(), Radicand: s.Radicand, Index: s.Index} }

func (s Surd) Sub(o Surd) (Surd, error) { return s.Add(o.Neg()) }

func (s Surd) Mul(o Surd) (Surd, error) {
	l := lcmU64(s.Index, o.Index)
	r1, err := s.Radicand.PowInt(int64(l / s.Index))
	if err != nil {
		return Surd{}, err
	}
	r2, err := o.Radicand.PowInt(int64(l / o.Index))
	if err != nil {
		return Surd{}, err
	}
	return NewSurd(s.Coe.Mul(o.Coe), r1.Mul(r2), l)
}

func lcmU64(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcdUint64(a, b) * b
}

func (s Surd) Recip() (Surd, error) {
	if s.Coe.IsZero() {
		return Surd{}, NewArithmeticError("reciprocal of zero surd")
	}
	coeRecip, err := s.Coe.Recip()
	if err != nil {
		return Surd{}, err
	}
	radRecip, err := s.Radicand.Recip()
	if err != nil {
		return Surd{}, err
	}
	return NewSurd(coeRecip, radRecip, s.Index)
}

func (s Surd) Div(o Surd) (Surd, error) {
	ro, err := o.Recip()
	if err != nil {
		return Surd{}, err
	}
	return s.Mul(ro)
}

// Pow raises s to the rational power p = num/den (den > 0).
func (s Surd) Pow(p Rational) (Surd, error) {
	if p.IsInt() {
		e, ok := p.Numer.Int64()
		if !ok {
			return Surd{}, NewDomainError("integer exponent out of range")
		}
		coe, err := s.Coe.PowInt(e)
		if err != nil {
			return Surd{}, err
		}
		rad, err := s.Radicand.PowInt(e)
		if err != nil {
			return Surd{}, err
		}
		return NewSurd(coe, rad, s.Index)
	}
	a, ok1 := p.Numer.Int64()
	b, ok2 := p.Denom.Int64()
	if !ok1 || !ok2 || b <= 0 {
		return Surd{}, NewDomainError("surd power exponent out of range")
	}
	radRaised, err := s.Radicand.PowInt(a)
	if err != nil {
		return Surd{}, err
	}
	coeRaised, err := s.Coe.PowInt(a)
	if err != nil {
		return Surd{}, err
	}
	newIndex := s.Index * uint64(b)
	root, err := nthRoot(coeRaised, uint64(b))
	if err != nil {
		return Surd{}, err
	}
	built, err := nthRoot(radRaised, newIndex)
	if err != nil {
		return Surd{}, err
	}
	merged, err := built.Mul(root)
	if err != nil {
		return Surd{}, err
	}
	return merged, nil
}

// nthRoot mirrors the source's nth_root(n, x) free function, used by
// Surd.Pow to build the coefficient- and radicand-root factors of a
// fractional power.
func nthRoot(x Rational, n uint64) (Surd, error) {
	return NewSurd(RationalFromInt(intOne), x, n)
}

func (s Surd) Cmp(o Surd) int {
	if ss, os := s.Coe.Sign(), o.Coe.Sign(); ss != os {
		if ss < os {
			return -1
		}
		return 1
	}
	l := lcmU64(s.Index, o.Index)
	lhs, _ := s.Coe.PowInt(int64(l))
	lhsRad, _ := s.Radicand.PowInt(int64(l / s.Index))
	lhsVal := lhs.Mul(lhsRad)
	rhs, _ := o.Coe.PowInt(int64(l))
	rhsRad, _ := o.Radicand.PowInt(int64(l / o.Index))
	rhsVal := rhs.Mul(rhsRad)
	c := lhsVal.Cmp(rhsVal)
	if s.Coe.Sign() < 0 && o.Coe.Sign() < 0 && l%2 == 0 {
		return -c
	}
	return c
}

func (s Surd) Equal(o Surd) bool {
	return s.Coe.Equal(o.Coe) && s.Radicand.Equal(o.Radicand) && s.Index == o.Index
}

func (s Surd) IsRational() bool { return s.Index == 1 || s.Radicand.IsOne() }

func (s Surd) Float64() float64 {
	if s.IsRational() {
		return s.Coe.Float64()
	}
	base := s.Radicand.Float64()
	return s.Coe.Float64() * math.Pow(base, 1.0/float64(s.Index))
}

// String renders the surface radical literal `_n/r`, with n omitted
// when it is the default index 2, per §4.J's number-literal grammar.
func (s Surd) String() string {
	if s.IsRational() {
		return s.Coe.String()
	}
	coeStr := s.Coe.String()
	var out string
	switch coeStr {
	case "1":
		out = ""
	case "-1":
		out = "-"
	default:
		out = coeStr
	}
	out += "_"
	if s.Index != 2 {
		out += strconv.FormatUint(s.Index, 10)
	}
	out += "/" + s.Radicand.String()
	return out
}

// LaTeX renders the surd using \sqrt or \sqrt[n]{} notation.
func (s Surd) LaTeX() string {
	if s.IsRational() {
		return s.Coe.LaTeX()
	}
	coeStr := s.Coe.LaTeX()
	prefix := coeStr
	if coeStr == "1" {
		prefix = ""
	} else if coeStr == "-1" {
		prefix = "-"
	}
	if s.Index == 2 {
		return prefix + "\\sqrt{" + s.Radicand.LaTeX() + "}"
	}
	return prefix + "\\sqrt[" + strconv.FormatUint(s.Index, 10) + "]{" + s.Radicand.LaTeX() + "}"
}

// formatSurdCoefficient is used by Term.String to render the Surd
// coefficient portion of a term.
func formatSurdCoefficient(s Surd) string { return s.String() }
