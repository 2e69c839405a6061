package symxx

// IntBackend is the uniform integer interface the rest of the tower is
// written against. Exactly one concrete implementation is compiled into
// a build via Go build tags — Int64Backend by default, Int128Backend
// under the symxx_int128 tag, or BigInt under the symxx_huge tag — and
// aliased to the package-level Int type. This mirrors symxx's own
// template-genericity-over-integer-type, resolved here at compile time
// instead of at instantiation time, since Go has no template
// specialization mechanism to hang three coexisting integer widths off
// of at once.
type IntBackend interface {
	Sign() int
	IsZero() bool
	Neg() Int
	Abs() Int
	Add(Int) Int
	Sub(Int) Int
	Mul(Int) Int
	DivMod(Int) (q, r Int, err error)
	Cmp(Int) int
	Pow(uint64) Int
	Gcd(Int) Int
	Lcm(Int) Int
	MulMod(a, m Int) Int
	ModPow(exp, mod Int) Int
	BitLen() int
	Sqrt() Int
	String() string
	Int64() (int64, bool)
}

// FromInt64 and FromString are backend constructors; each concrete
// backend supplies its own package-level functions of these names
// (IntFromInt64, IntFromString) rather than methods, since Go has no
// static/associated-function polymorphism independent of a receiver
// value.

var (
	intZero = IntFromInt64(0)
	intOne  = IntFromInt64(1)
	intTwo  = IntFromInt64(2)
)

// BackendName identifies the compiled-in Int backend, for the Shell's
// "version" command.
func BackendName() string { return backendName }
