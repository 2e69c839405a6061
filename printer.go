package symxx

// Printer is a thin facade over the String()/LaTeX() methods of the
// tower types, grounded on original_source/include/symxx/num.hpp's
// operator<< convention and expr.hpp's printing recursion. Every type
// has String(); LaTeX() exists on Rational, Surd, Fraction and ExprNode
// only, and Fraction.LaTeX renders its numerator and denominator
// polynomials with String(). This file gathers the entry points the
// Shell calls.
type Printer struct {
	LaTeX bool
}

func (p Printer) Print(n *ExprNode) string {
	if p.LaTeX {
		return n.LaTeX()
	}
	return n.String()
}

func (p Printer) PrintFraction(f Fraction) string {
	if p.LaTeX {
		return f.LaTeX()
	}
	return f.String()
}

func (p Printer) PrintFloat(f float64) string { return Dtoa(f) }
