package symxx

import "math"

// ExprNode is a tagged union of a Fraction leaf or a binary operator
// node, grounded on original_source/include/symxx/expr.hpp's
// std::variant<Frac<T>, OpData<T>> representation.
type ExprNode struct {
	isOp bool
	frac Fraction
	op   byte
	lhs  *ExprNode
	rhs  *ExprNode
}

func LeafNode(f Fraction) *ExprNode { return &ExprNode{frac: f} }

func OpNode(op byte, lhs, rhs *ExprNode) *ExprNode {
	return &ExprNode{isOp: true, op: op, lhs: lhs, rhs: rhs}
}

func (n *ExprNode) IsLeaf() bool { return !n.isOp }

// TryEval bottom-up folds the tree into a single Fraction, returning
// nil if any subtree contains an unresolved operator (a free symbol
// that isn't a leaf's concern until the '^' exponent check, per §4.I).
func (n *ExprNode) TryEval() (*Fraction, error) {
	if !n.isOp {
		f := n.frac
		return &f, nil
	}
	lv, err := n.lhs.TryEval()
	if err != nil {
		return nil, err
	}
	rv, err := n.rhs.TryEval()
	if err != nil {
		return nil, err
	}
	if lv == nil || rv == nil {
		return nil, nil
	}
	return evalOp(n.op, *lv, *rv)
}

func evalOp(op byte, l, r Fraction) (*Fraction, error) {
	switch op {
	case '+':
		v, err := l.Add(r)
		return &v, err
	case '-':
		v, err := l.Sub(r)
		return &v, err
	case '*':
		v, err := l.Mul(r)
		return &v, err
	case '/':
		v, err := l.Div(r)
		return &v, err
	case '^':
		t, ok := r.Numer.AsSingleTerm()
		if !ok || !t.IsSymbolFree() || !t.Coe.IsRational() || !r.IsTrivialDenominator() {
			return nil, nil
		}
		v, err := l.PowRational(t.Coe.Coe)
		return &v, err
	default:
		invariantViolation("unexpected operator '" + string(op) + "'")
		return nil, nil
	}
}

// PowRational raises a Fraction to a rational exponent, dispatching to
// Polynomial.Pow on both numerator and denominator.
func (f Fraction) PowRational(p Rational) (Fraction, error) {
	if p.IsInt() {
		e, ok := p.Numer.Int64()
		if !ok {
			return Fraction{}, NewDomainError("power exponent out of range")
		}
		return f.PowInt(e)
	}
	n, err := f.Numer.Pow(p)
	if err != nil {
		return Fraction{}, err
	}
	d, err := f.Denom.Pow(p)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(n, d)
}

// TryEvalEnv numerically evaluates the tree given a float environment,
// failing (returning ok=false) if a leaf term references a symbol
// absent from env.
func (n *ExprNode) TryEvalEnv(env map[string]float64) (float64, bool) {
	if !n.isOp {
		return evalFractionFloat(n.frac, env)
	}
	lv, ok := n.lhs.TryEvalEnv(env)
	if !ok {
		return 0, false
	}
	rv, ok := n.rhs.TryEvalEnv(env)
	if !ok {
		return 0, false
	}
	switch n.op {
	case '+':
		return lv + rv, true
	case '-':
		return lv - rv, true
	case '*':
		return lv * rv, true
	case '/':
		return lv / rv, true
	case '^':
		return powFloat(lv, rv), true
	default:
		return 0, false
	}
}

func evalFractionFloat(f Fraction, env map[string]float64) (float64, bool) {
	nv, ok := evalPolynomialFloat(f.Numer, env)
	if !ok {
		return 0, false
	}
	dv, ok := evalPolynomialFloat(f.Denom, env)
	if !ok {
		return 0, false
	}
	return nv / dv, true
}

func evalPolynomialFloat(p Polynomial, env map[string]float64) (float64, bool) {
	sum := 0.0
	for _, t := range p.Terms {
		v := t.Coe.Float64()
		for name, exp := range t.Symbols {
			ev, ok := env[name]
			if !ok {
				return 0, false
			}
			v *= powFloat(ev, exp.Float64())
		}
		sum += v
	}
	return sum, true
}

func powFloat(base, exp float64) float64 { return math.Pow(base, exp) }

// Normalize folds every subtree it can, replacing folded subtrees with
// Fraction leaves in place, per §4.I.
func (n *ExprNode) Normalize() (*ExprNode, error) {
	if !n.isOp {
		return n, nil
	}
	v, err := n.TryEval()
	if err != nil {
		return nil, err
	}
	if v != nil {
		return LeafNode(*v), nil
	}
	lhs, err := n.lhs.Normalize()
	if err != nil {
		return nil, err
	}
	rhs, err := n.rhs.Normalize()
	if err != nil {
		return nil, err
	}
	return OpNode(n.op, lhs, rhs), nil
}

// Substitute walks every leaf, substituting env into its Fraction, then
// re-normalizes the whole tree.
func (n *ExprNode) Substitute(env map[string]Surd) (*ExprNode, error) {
	sub, err := n.substituteLeaves(env)
	if err != nil {
		return nil, err
	}
	return sub.Normalize()
}

func (n *ExprNode) substituteLeaves(env map[string]Surd) (*ExprNode, error) {
	if !n.isOp {
		f, err := n.frac.Substitute(env)
		if err != nil {
			return nil, err
		}
		return LeafNode(f), nil
	}
	lhs, err := n.lhs.substituteLeaves(env)
	if err != nil {
		return nil, err
	}
	rhs, err := n.rhs.substituteLeaves(env)
	if err != nil {
		return nil, err
	}
	return OpNode(n.op, lhs, rhs), nil
}

// withparen replicates original_source/include/symxx/expr.hpp's
// withparen exactly, fallthrough quirks included: for the left side an
// operator child under '*'/'/'/'^' always parenthesizes (the '*'/'/'
// case falls through into the '^' case's unconditional true whenever
// its own +/- check doesn't already fire), while '+'/'-' never
// parenthesize their left child. This is preserved verbatim rather than
// replaced with a conventional precedence-only rule.
func withparen(n *ExprNode, left bool) bool {
	if !n.isOp {
		return false
	}
	if n.lhs == nil || n.rhs == nil {
		return false
	}
	if left {
		if !n.lhs.isOp {
			return false
		}
		switch n.op {
		case '*', '/', '^':
			return true
		}
		return false
	}
	if !n.rhs.isOp {
		return false
	}
	rightop := n.rhs.op
	switch n.op {
	case '*':
		if rightop == '+' || rightop == '-' {
			return true
		}
	case '/':
		if rightop == '+' || rightop == '-' || rightop == '*' || rightop == '/' {
			return true
		}
	case '-':
		if rightop == '+' || rightop == '-' {
			return true
		}
	case '^':
		return true
	}
	return false
}

func (n *ExprNode) String() string {
	if !n.isOp {
		return n.frac.String()
	}
	var sb []byte
	if withparen(n, true) {
		sb = append(sb, '(')
		sb = append(sb, n.lhs.String()...)
		sb = append(sb, ')')
	} else {
		sb = append(sb, n.lhs.String()...)
	}
	sb = append(sb, n.op)
	if withparen(n, false) {
		sb = append(sb, '(')
		sb = append(sb, n.rhs.String()...)
		sb = append(sb, ')')
	} else {
		sb = append(sb, n.rhs.String()...)
	}
	return string(sb)
}

func (n *ExprNode) LaTeX() string {
	if !n.isOp {
		return n.frac.LaTeX()
	}
	if n.op == '/' {
		return "\\frac{" + n.lhs.LaTeX() + "}{" + n.rhs.LaTeX() + "}"
	}
	var sb []byte
	if withparen(n, true) {
		sb = append(sb, '(')
		sb = append(sb, n.lhs.LaTeX()...)
		sb = append(sb, ')')
	} else {
		sb = append(sb, n.lhs.LaTeX()...)
	}
	opStr := string(n.op)
	if n.op == '*' {
		opStr = " \\cdot "
	}
	sb = append(sb, opStr...)
	if withparen(n, false) {
		sb = append(sb, '(')
		sb = append(sb, n.rhs.LaTeX()...)
		sb = append(sb, ')')
	} else {
		sb = append(sb, n.rhs.LaTeX()...)
	}
	return string(sb)
}
