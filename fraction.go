package symxx

// Fraction is numerator/denominator over Polynomial, grounded on
// original_source/include/symxx/frac.hpp's Frac<T> ratio-of-Frac
// representation.
type Fraction struct {
	Numer Polynomial
	Denom Polynomial
}

func FractionFromPolynomial(p Polynomial) Fraction {
	return Fraction{Numer: p, Denom: PolynomialFromInt(1)}
}

func FractionFromInt(n int64) Fraction { return FractionFromPolynomial(PolynomialFromInt(n)) }

// NewFraction builds and normalizes numer/denom, rejecting a zero
// denominator.
func NewFraction(numer, denom Polynomial) (Fraction, error) {
	nd, err := denom.Normalize()
	if err != nil {
		return Fraction{}, err
	}
	if nd.IsZero() {
		return Fraction{}, NewArithmeticError("fraction denominator is zero")
	}
	nn, err := numer.Normalize()
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Numer: nn, Denom: nd}.normalize()
}

func (f Fraction) IsZero() bool { return f.Numer.IsZero() }

// coefficientDenoms collects the Denom of every term's rational
// coefficient value, walking through the Surd's rational coefficient,
// used to find the LCM that clears fractional coefficients.
func coefficientDenoms(p Polynomial) []Int {
	out := make([]Int, 0, len(p.Terms))
	for _, t := range p.Terms {
		out = append(out, t.Coe.Coe.Denom)
	}
	return out
}

func lcmAll(xs []Int) Int {
	l := intOne
	for _, x := range xs {
		l = l.Lcm(x)
	}
	return l
}

func scalePolynomial(p Polynomial, factor Int) (Polynomial, error) {
	s := SurdFromRational(RationalFromInt(factor))
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		m, err := t.Mul(TermFromSurd(s))
		if err != nil {
			return Polynomial{}, err
		}
		terms[i] = m
	}
	return Polynomial{Terms: terms}.Normalize()
}

// coefficientNumerators collects the Numer of every term's rational
// coefficient, used by the GCD reduction pass below.
func coefficientNumerators(p Polynomial) []Int {
	out := make([]Int, 0, len(p.Terms))
	for _, t := range p.Terms {
		out = append(out, t.Coe.Coe.Numer)
	}
	return out
}

// normalize clears fractional coefficients by scaling both polynomials
// by the LCM of the denominator polynomial's coefficient denominators
// only, then reduces by a GCD of integer coefficients. Building the
// clearing factor from the denominator alone (not the numerator too)
// matters: a bare rational result like 5/6 folded into numer [5/6],
// denom [1] must stay a trivial-denominator fraction, not get rewritten
// as numer [5], denom [6].
//
// The reduction loop keeps the source's bail-out check: it walks
// numerator-then-denominator coefficient numerators updating a running
// GCD, and would stop the first time a coefficient's GCD with the
// running value does not evenly divide the running value. That GCD
// always divides the running value, so the check never fires and g ends
// as the GCD of every coefficient numerator.
func (f Fraction) normalize() (Fraction, error) {
	if f.Denom.IsZero() {
		return Fraction{}, NewArithmeticError("fraction denominator is zero")
	}
	numer, denom := f.Numer, f.Denom

	l := lcmAll(coefficientDenoms(denom))
	if l.Cmp(intOne) > 0 {
		var err error
		numer, err = scalePolynomial(numer, l)
		if err != nil {
			return Fraction{}, err
		}
		denom, err = scalePolynomial(denom, l)
		if err != nil {
			return Fraction{}, err
		}
	}

	coeffs := append(coefficientNumerators(numer), coefficientNumerators(denom)...)
	if len(coeffs) == 0 {
		return Fraction{Numer: numer, Denom: denom}, nil
	}
	g := coeffs[0].Abs()
	for _, c := range coeffs[1:] {
		next := g.Gcd(c.Abs())
		_, r, err := g.DivMod(next)
		if err != nil {
			return Fraction{}, err
		}
		if !r.IsZero() {
			break
		}
		g = next
	}
	if g.Cmp(intOne) > 0 {
		gs := SurdFromRational(RationalFromInt(g))
		var err error
		numer, err = numer.DivSurd(gs)
		if err != nil {
			return Fraction{}, err
		}
		denom, err = denom.DivSurd(gs)
		if err != nil {
			return Fraction{}, err
		}
	}
	return Fraction{Numer: numer, Denom: denom}, nil
}

func (f Fraction) Add(o Fraction) (Fraction, error) {
	if f.Denom.Equal(o.Denom) {
		n, err := f.Numer.Add(o.Numer)
		if err != nil {
			return Fraction{}, err
		}
		return NewFraction(n, f.Denom)
	}
	n1, err := f.Numer.Mul(o.Denom)
	if err != nil {
		return Fraction{}, err
	}
	n2, err := o.Numer.Mul(f.Denom)
	if err != nil {
		return Fraction{}, err
	}
	n, err := n1.Add(n2)
	if err != nil {
		return Fraction{}, err
	}
	d, err := f.Denom.Mul(o.Denom)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(n, d)
}

func (f Fraction) Neg() Fraction { return Fraction{Numer: f.Numer.Neg(), Denom: f.Denom} }

func (f Fraction) Sub(o Fraction) (Fraction, error) { return f.Add(o.Neg()) }

func (f Fraction) Mul(o Fraction) (Fraction, error) {
	n, err := f.Numer.Mul(o.Numer)
	if err != nil {
		return Fraction{}, err
	}
	d, err := f.Denom.Mul(o.Denom)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(n, d)
}

func (f Fraction) Recip() (Fraction, error) {
	if f.Numer.IsZero() {
		return Fraction{}, NewArithmeticError("reciprocal of zero fraction")
	}
	return NewFraction(f.Denom, f.Numer)
}

func (f Fraction) Div(o Fraction) (Fraction, error) {
	ro, err := o.Recip()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(ro)
}

func (f Fraction) PowInt(k int64) (Fraction, error) {
	neg := k < 0
	u := uint64(k)
	if neg {
		u = uint64(-k)
	}
	n, err := f.Numer.PowInt(u)
	if err != nil {
		return Fraction{}, err
	}
	d, err := f.Denom.PowInt(u)
	if err != nil {
		return Fraction{}, err
	}
	if neg {
		return NewFraction(d, n)
	}
	return NewFraction(n, d)
}

func (f Fraction) Substitute(env map[string]Surd) (Fraction, error) {
	n, err := f.Numer.Substitute(env)
	if err != nil {
		return Fraction{}, err
	}
	d, err := f.Denom.Substitute(env)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(n, d)
}

func (f Fraction) IsTrivialDenominator() bool {
	t, ok := f.Denom.AsSingleTerm()
	return ok && t.IsSymbolFree() && t.Coe.IsRational() && t.Coe.Coe.IsOne()
}

func (f Fraction) Equal(o Fraction) bool {
	return f.Numer.Equal(o.Numer) && f.Denom.Equal(o.Denom)
}

func (f Fraction) String() string {
	if f.IsTrivialDenominator() {
		return f.Numer.String()
	}
	return "(" + f.Numer.String() + "/" + f.Denom.String() + ")"
}

func (f Fraction) LaTeX() string {
	if f.IsTrivialDenominator() {
		return f.Numer.String()
	}
	return "\\frac{" + f.Numer.String() + "}{" + f.Denom.String() + "}"
}
