package symxx

import (
	"sort"
	"strings"
)

// Term is a Surd coefficient times a product of symbolic variables each
// raised to a rational exponent, grounded on
// original_source/include/symxx/frac.hpp's Term<T> and the teacher's
// symbol-collection style in Add.Simplify/Mul.Simplify (gosymbol.go).
// No entry in Symbols has a zero exponent.
type Term struct {
	Coe     Surd
	Symbols map[string]Rational
}

func TermFromSurd(s Surd) Term { return Term{Coe: s, Symbols: map[string]Rational{}} }

func TermFromInt(n int64) Term { return TermFromSurd(SurdFromInt(n)) }

func (t Term) clone() Term {
	m := make(map[string]Rational, len(t.Symbols))
	for k, v := range t.Symbols {
		m[k] = v
	}
	return Term{Coe: t.Coe, Symbols: m}
}

func (t Term) IsSymbolFree() bool { return len(t.Symbols) == 0 }

// sortedSymbolNames returns Symbols' keys ordered for the total order
// used by like-term comparison and Polynomial sorting.
func (t Term) sortedSymbolNames() []string {
	names := make([]string, 0, len(t.Symbols))
	for k := range t.Symbols {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// sameSymbols reports whether t and o have identical symbol-exponent
// maps.
func (t Term) sameSymbols(o Term) bool {
	if len(t.Symbols) != len(o.Symbols) {
		return false
	}
	for k, v := range t.Symbols {
		ov, ok := o.Symbols[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// IsLikeTerm reports whether t and o can be merged by summing
// coefficients: equal symbol maps and equal radical parts.
func (t Term) IsLikeTerm(o Term) bool {
	return t.sameSymbols(o) && t.Coe.IsEquivalentWith(o.Coe) &&
		t.Coe.Index == o.Coe.Index && t.Coe.Radicand.Equal(o.Coe.Radicand)
}

func (t Term) Neg() Term { return Term{Coe: t.Coe.Neg(), Symbols: t.Symbols} }

// Add merges two like terms by summing coefficients; callers (Polynomial)
// are responsible for verifying IsLikeTerm first.
func (t Term) Add(o Term) (Term, error) {
	c, err := t.Coe.Add(o.Coe)
	if err != nil {
		return Term{}, err
	}
	return Term{Coe: c, Symbols: t.Symbols}, nil
}

func mergeExponents(a, b map[string]Rational) map[string]Rational {
	out := make(map[string]Rational, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if cur, ok := out[k]; ok {
			sum := cur.Add(v)
			if sum.IsZero() {
				delete(out, k)
			} else {
				out[k] = sum
			}
		} else if !v.IsZero() {
			out[k] = v
		}
	}
	return out
}

func (t Term) Mul(o Term) (Term, error) {
	c, err := t.Coe.Mul(o.Coe)
	if err != nil {
		return Term{}, err
	}
	return Term{Coe: c, Symbols: mergeExponents(t.Symbols, o.Symbols)}, nil
}

// DivSurd divides the coefficient only, per the component design's
// "division by a Surd only" rule.
func (t Term) DivSurd(s Surd) (Term, error) {
	c, err := t.Coe.Div(s)
	if err != nil {
		return Term{}, err
	}
	return Term{Coe: c, Symbols: t.Symbols}, nil
}

// Pow raises t to a rational power: multiplies every symbol exponent by
// p and raises the Surd coefficient by p. Only defined when the result
// keeps all exponents rational, which it always does since Rational is
// closed under multiplication.
func (t Term) Pow(p Rational) (Term, error) {
	c, err := t.Coe.Pow(p)
	if err != nil {
		return Term{}, err
	}
	m := make(map[string]Rational, len(t.Symbols))
	for k, v := range t.Symbols {
		nv := v.Mul(p)
		if !nv.IsZero() {
			m[k] = nv
		}
	}
	return Term{Coe: c, Symbols: m}, nil
}

// Substitute multiplies the coefficient by env[name]^exponent for every
// symbol present in env and removes that entry, reading the shared
// environment lazily rather than caching a substituted copy (§4.F).
func (t Term) Substitute(env map[string]Surd) (Term, error) {
	coe := t.Coe
	m := make(map[string]Rational, len(t.Symbols))
	for name, exp := range t.Symbols {
		if val, ok := env[name]; ok {
			raised, err := val.Pow(exp)
			if err != nil {
				return Term{}, err
			}
			coe, err = coe.Mul(raised)
			if err != nil {
				return Term{}, err
			}
			continue
		}
		m[name] = exp
	}
	return Term{Coe: coe, Symbols: m}, nil
}

func (t Term) Equal(o Term) bool {
	return t.Coe.Equal(o.Coe) && t.sameSymbols(o)
}

func (t Term) String() string {
	var sb strings.Builder
	coeStr := formatSurdCoefficient(t.Coe)
	names := t.sortedSymbolNames()
	if len(names) == 0 {
		return coeStr
	}
	if coeStr != "1" {
		if coeStr == "-1" {
			sb.WriteByte('-')
		} else {
			sb.WriteString(coeStr)
			sb.WriteByte('*')
		}
	}
	for i, name := range names {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(formatSymbolName(name))
		exp := t.Symbols[name]
		if !exp.IsOne() {
			sb.WriteByte('^')
			sb.WriteString(exp.String())
		}
	}
	return sb.String()
}

func formatSymbolName(name string) string {
	if len(name) == 1 {
		return name
	}
	return "{" + name + "}"
}
