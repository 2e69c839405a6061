package symxx

import (
	"sort"
	"strings"
)

// Polynomial is a sorted list of Terms with like-term merging, grounded
// on original_source/include/symxx/frac.hpp's Frac<T> term list and the
// teacher's Add.Simplify slice-rebuilding style (gosymbol.go).
type Polynomial struct {
	Terms []Term
}

func PolynomialFromTerm(t Term) Polynomial { return Polynomial{Terms: []Term{t}} }

func PolynomialFromInt(n int64) Polynomial { return PolynomialFromTerm(TermFromInt(n)) }

func PolynomialZero() Polynomial { return Polynomial{} }

func (p Polynomial) IsZero() bool { return len(p.Terms) == 0 }

// termDegreeKey lists a term's symbols in name order as alternating
// name, exponent-string entries. Degrees are compared per symbol rather
// than folded into a single total-degree scalar.
func termDegreeKey(t Term) []string {
	names := t.sortedSymbolNames()
	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		out = append(out, n, t.Symbols[n].String())
	}
	return out
}

// compareTerms implements the total order of §3: symbol map first
// (lexicographic by decreasing degree: symbol names in ascending order,
// and for the same symbol the higher exponent sorts first), then
// coefficient index, radicand, then rational value.
func compareTerms(a, b Term) int {
	ak, bk := termDegreeKey(a), termDegreeKey(b)
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if ak[i] != bk[i] {
			if i%2 == 1 {
				return -a.Symbols[ak[i-1]].Cmp(b.Symbols[bk[i-1]])
			}
			if ak[i] < bk[i] {
				return -1
			}
			return 1
		}
	}
	if len(ak) != len(bk) {
		if len(ak) > len(bk) {
			return -1
		}
		return 1
	}
	if a.Coe.Index != b.Coe.Index {
		if a.Coe.Index < b.Coe.Index {
			return -1
		}
		return 1
	}
	if c := a.Coe.Radicand.Cmp(b.Coe.Radicand); c != 0 {
		return c
	}
	return a.Coe.Coe.Cmp(b.Coe.Coe)
}

// Normalize sorts terms by the total order and merges adjacent like
// terms, dropping any that reduce to a zero coefficient.
func (p Polynomial) Normalize() (Polynomial, error) {
	terms := make([]Term, len(p.Terms))
	copy(terms, p.Terms)
	sort.SliceStable(terms, func(i, j int) bool { return compareTerms(terms[i], terms[j]) < 0 })

	var out []Term
	for _, t := range terms {
		if len(out) > 0 && out[len(out)-1].IsLikeTerm(t) {
			merged, err := out[len(out)-1].Add(t)
			if err != nil {
				return Polynomial{}, err
			}
			out[len(out)-1] = merged
			continue
		}
		out = append(out, t)
	}
	var filtered []Term
	for _, t := range out {
		if !t.Coe.Coe.IsZero() {
			filtered = append(filtered, t)
		}
	}
	return Polynomial{Terms: filtered}, nil
}

func (p Polynomial) Add(o Polynomial) (Polynomial, error) {
	combined := make([]Term, 0, len(p.Terms)+len(o.Terms))
	combined = append(combined, p.Terms...)
	combined = append(combined, o.Terms...)
	return Polynomial{Terms: combined}.Normalize()
}

func (p Polynomial) Neg() Polynomial {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.Neg()
	}
	return Polynomial{Terms: terms}
}

func (p Polynomial) Sub(o Polynomial) (Polynomial, error) { return p.Add(o.Neg()) }

func (p Polynomial) Mul(o Polynomial) (Polynomial, error) {
	terms := make([]Term, 0, len(p.Terms)*len(o.Terms))
	for _, a := range p.Terms {
		for _, b := range o.Terms {
			m, err := a.Mul(b)
			if err != nil {
				return Polynomial{}, err
			}
			terms = append(terms, m)
		}
	}
	return Polynomial{Terms: terms}.Normalize()
}

// DivSurd divides every term's coefficient by a Surd (division of a
// polynomial by a bare polynomial is Fraction's job, per §4.H).
func (p Polynomial) DivSurd(s Surd) (Polynomial, error) {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		d, err := t.DivSurd(s)
		if err != nil {
			return Polynomial{}, err
		}
		terms[i] = d
	}
	return Polynomial{Terms: terms}, nil
}

// multinomialSolutions enumerates all length-m tuples of non-negative
// integers summing to k, recursively, following the multinomial-theorem
// expansion instruction of §4.G.
func multinomialSolutions(m int, k uint64) [][]uint64 {
	if m == 1 {
		return [][]uint64{{k}}
	}
	var out [][]uint64
	for a := uint64(0); a <= k; a++ {
		for _, rest := range multinomialSolutions(m-1, k-a) {
			sol := append([]uint64{a}, rest...)
			out = append(out, sol)
		}
	}
	return out
}

func factorialInt(n uint64) Int {
	r := intOne
	for i := uint64(2); i <= n; i++ {
		r = r.Mul(IntFromInt64(int64(i)))
	}
	return r
}

// PowInt raises the polynomial to a non-negative integer power k via
// the multinomial theorem for multi-term polynomials, per §4.G.
func (p Polynomial) PowInt(k uint64) (Polynomial, error) {
	if k == 0 {
		return PolynomialFromInt(1), nil
	}
	if k == 1 {
		return p.Normalize()
	}
	if len(p.Terms) == 0 {
		return PolynomialZero(), nil
	}
	if len(p.Terms) == 1 {
		t, err := p.Terms[0].Pow(RationalFromInt(IntFromInt64(int64(k))))
		if err != nil {
			return Polynomial{}, err
		}
		return PolynomialFromTerm(t).Normalize()
	}

	m := len(p.Terms)
	kFact := factorialInt(k)
	var terms []Term
	for _, sol := range multinomialSolutions(m, k) {
		coeff := kFact
		term := TermFromInt(1)
		for i, a := range sol {
			coeff, _, _ = coeff.DivMod(factorialInt(a))
			raised, err := p.Terms[i].Pow(RationalFromInt(IntFromInt64(int64(a))))
			if err != nil {
				return Polynomial{}, err
			}
			term, err = term.Mul(raised)
			if err != nil {
				return Polynomial{}, err
			}
		}
		scaled, err := term.Mul(TermFromSurd(SurdFromRational(RationalFromInt(coeff))))
		if err != nil {
			return Polynomial{}, err
		}
		terms = append(terms, scaled)
	}
	return Polynomial{Terms: terms}.Normalize()
}

// Pow dispatches integer powers to PowInt; a non-integer exponent
// applied to a multi-term polynomial is a Domain Diagnostic (§4.G).
func (p Polynomial) Pow(exp Rational) (Polynomial, error) {
	if exp.IsInt() {
		e, ok := exp.Numer.Int64()
		if !ok || e < 0 {
			return Polynomial{}, NewDomainError("polynomial power exponent out of range")
		}
		return p.PowInt(uint64(e))
	}
	if len(p.Terms) == 1 {
		t, err := p.Terms[0].Pow(exp)
		if err != nil {
			return Polynomial{}, err
		}
		return PolynomialFromTerm(t).Normalize()
	}
	return Polynomial{}, NewDomainError("non-integer power of a multi-term polynomial")
}

func (p Polynomial) Substitute(env map[string]Surd) (Polynomial, error) {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		st, err := t.Substitute(env)
		if err != nil {
			return Polynomial{}, err
		}
		terms[i] = st
	}
	return Polynomial{Terms: terms}.Normalize()
}

func (p Polynomial) Equal(o Polynomial) bool {
	if len(p.Terms) != len(o.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

// AsSingleTerm reports whether the polynomial reduces to exactly one
// term, used by Fraction.IsTrivialDenominator, the '^' exponent check in
// evalOp, and the Shell to treat symbol-free single-term polynomials as
// plain rationals.
func (p Polynomial) AsSingleTerm() (Term, bool) {
	if len(p.Terms) == 1 {
		return p.Terms[0], true
	}
	return Term{}, false
}

func (p Polynomial) String() string {
	if len(p.Terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.Terms {
		s := t.String()
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}
