package symxx

import (
	"strings"
)

// BigInt is an arbitrary-precision signed integer stored as a
// little-endian vector of 30-bit limbs, following symxx's Huge type
// (original_source/include/symxx/huge.hpp). The zero value is the
// empty limb vector with neg == false; there is never a trailing zero
// limb.
type BigInt struct {
	neg   bool
	limbs []uint32
}

const (
	limbBits = 30
	limbBase = 1 << limbBits
	limbMask = limbBase - 1

	// karatsubaCutoff is the limb count above which Mul switches from
	// schoolbook to Karatsuba, per the ~70-limb cutoff named in the
	// component design.
	karatsubaCutoff = 70

	// decimalChunk is the number of decimal digits parsed/printed per
	// chunk, matching the source's chunked base-10^9 conversion.
	decimalChunk    = 9
	decimalChunkPow = 1_000_000_000
)

func trim(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

func bigIntZero() *BigInt { return &BigInt{} }

// BigIntFromInt64 builds a BigInt from a native signed integer.
func BigIntFromInt64(v int64) *BigInt {
	neg := v < 0
	uv := uint64(v)
	if neg {
		uv = uint64(-v)
	}
	var limbs []uint32
	for uv != 0 {
		limbs = append(limbs, uint32(uv&limbMask))
		uv >>= limbBits
	}
	return &BigInt{neg: neg, limbs: limbs}
}

// BigIntFromString parses "[±]digits", chunking 9 decimal digits at a
// time: the running value is multiplied by 10^9 and the chunk added,
// per the source's decimal parse routine.
func BigIntFromString(s string) (*BigInt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, NewParseError("empty integer literal")
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, NewParseError("integer literal has no digits")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, NewParseError("invalid digit in integer literal: " + string(c))
		}
	}
	result := bigIntZero()
	chunkMul := BigIntFromInt64(decimalChunkPow)
	i := 0
	first := len(s) % decimalChunk
	if first == 0 {
		first = decimalChunk
	}
	chunk, err := parseDigits(s[i:first])
	if err != nil {
		return nil, err
	}
	result = BigIntFromInt64(int64(chunk))
	i = first
	for i < len(s) {
		chunk, err = parseDigits(s[i : i+decimalChunk])
		if err != nil {
			return nil, err
		}
		result = result.Mul(chunkMul).Add(BigIntFromInt64(int64(chunk)))
		i += decimalChunk
	}
	result.neg = neg && !result.IsZero()
	return result, nil
}

func parseDigits(s string) (int64, error) {
	var v int64
	for _, c := range s {
		v = v*10 + int64(c-'0')
	}
	return v, nil
}

func (b *BigInt) Sign() int {
	if len(b.limbs) == 0 {
		return 0
	}
	if b.neg {
		return -1
	}
	return 1
}

func (b *BigInt) IsZero() bool { return len(b.limbs) == 0 }

func (b *BigInt) Neg() *BigInt {
	if b.IsZero() {
		return bigIntZero()
	}
	return &BigInt{neg: !b.neg, limbs: b.limbs}
}

func (b *BigInt) Abs() *BigInt {
	if !b.neg {
		return b
	}
	return &BigInt{neg: false, limbs: b.limbs}
}

func cmpAbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func addAbs(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s & limbMask
		carry = s >> limbBits
	}
	out[len(a)] = carry
	return trim(out)
}

// subAbs computes a-b assuming a >= b in magnitude.
func subAbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int32
	for i := range a {
		d := int32(a[i]) - borrow
		if i < len(b) {
			d -= int32(b[i])
		}
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trim(out)
}

func (b *BigInt) Cmp(o *BigInt) int {
	sb, so := b.Sign(), o.Sign()
	if sb != so {
		if sb < so {
			return -1
		}
		return 1
	}
	if sb == 0 {
		return 0
	}
	c := cmpAbs(b.limbs, o.limbs)
	if sb < 0 {
		return -c
	}
	return c
}

func (b *BigInt) Equal(o *BigInt) bool { return b.Cmp(o) == 0 }

func (b *BigInt) Add(o *BigInt) *BigInt {
	if b.neg == o.neg {
		return &BigInt{neg: b.neg && !allZero(addAbs(b.limbs, o.limbs)), limbs: addAbs(b.limbs, o.limbs)}
	}
	c := cmpAbs(b.limbs, o.limbs)
	if c == 0 {
		return bigIntZero()
	}
	if c > 0 {
		return &BigInt{neg: b.neg, limbs: subAbs(b.limbs, o.limbs)}
	}
	return &BigInt{neg: o.neg, limbs: subAbs(o.limbs, b.limbs)}
}

func allZero(limbs []uint32) bool { return len(limbs) == 0 }

func (b *BigInt) Sub(o *BigInt) *BigInt { return b.Add(o.Neg()) }

func mulAbsSchoolbook(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			out[i+j] += uint64(av)*uint64(bv) + carry
			carry = out[i+j] >> limbBits
			out[i+j] &= limbMask
		}
		k := i + len(b)
		for carry != 0 {
			out[k] += carry
			carry = out[k] >> limbBits
			out[k] &= limbMask
			k++
		}
	}
	res := make([]uint32, len(out))
	for i, v := range out {
		res[i] = uint32(v)
	}
	return trim(res)
}

// mulAbsKaratsuba splits both operands at half the smaller operand's
// length and recurses, falling back to schoolbook below karatsubaCutoff,
// in the shape shown by other_examples/agbruneau-Fibonacci__karatsuba.go
// (cutoff constant guarding a recursive split-in-half multiply).
func mulAbsKaratsuba(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) < karatsubaCutoff || len(b) == 0 {
		return mulAbsSchoolbook(a, b)
	}
	half := len(b) / 2
	a0, a1 := a[:half], a[half:]
	var b0, b1 []uint32
	if half < len(b) {
		b0, b1 = b[:half], b[half:]
	} else {
		b0, b1 = b, nil
	}

	z0 := mulAbsKaratsuba(a0, b0)
	z2 := mulAbsKaratsuba(a1, b1)

	sa := addAbs(a0, a1)
	sb := addAbs(b0, b1)
	z1mid := mulAbsKaratsuba(sa, sb)
	z1 := subAbs(trim(z1mid), trim(addAbs(z0, z2)))

	result := make([]uint32, len(a)+len(b)+1)
	addAt(result, z0, 0)
	addAt(result, z1, half)
	addAt(result, z2, 2*half)
	return trim(result)
}

func addAt(dst []uint32, src []uint32, offset int) {
	var carry uint64
	for i, v := range src {
		sum := uint64(dst[offset+i]) + uint64(v) + carry
		dst[offset+i] = uint32(sum & limbMask)
		carry = sum >> limbBits
	}
	k := offset + len(src)
	for carry != 0 {
		sum := uint64(dst[k]) + carry
		dst[k] = uint32(sum & limbMask)
		carry = sum >> limbBits
		k++
	}
}

func (b *BigInt) Mul(o *BigInt) *BigInt {
	if b.IsZero() || o.IsZero() {
		return bigIntZero()
	}
	var limbs []uint32
	if len(b.limbs) >= karatsubaCutoff && len(o.limbs) >= karatsubaCutoff {
		limbs = mulAbsKaratsuba(b.limbs, o.limbs)
	} else {
		limbs = mulAbsSchoolbook(b.limbs, o.limbs)
	}
	return &BigInt{neg: b.neg != o.neg, limbs: limbs}
}

// divModAbsSmall divides by a single-limb divisor.
func divModAbsSmall(a []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(a[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trim(q), uint32(rem)
}

// divModAbs implements Knuth's Algorithm D long division on magnitude
// limb vectors, normalizing so the divisor's top limb has its high bit
// set, per the source's divrem.
func divModAbs(a, b []uint32) ([]uint32, []uint32) {
	if cmpAbs(a, b) < 0 {
		return nil, a
	}
	if len(b) == 1 {
		q, r := divModAbsSmall(a, b[0])
		var rl []uint32
		if r != 0 {
			rl = []uint32{r}
		}
		return q, rl
	}

	shift := 0
	top := b[len(b)-1]
	for top&(1<<(limbBits-1)) == 0 {
		top <<= 1
		shift++
	}
	un := shiftLeft(a, shift)
	vn := shiftLeft(b, shift)
	if len(un) == len(a) {
		un = append(un, 0)
	}
	n := len(vn)
	m := len(un) - n - 1

	q := make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		var num uint64
		if j+n < len(un) {
			num = uint64(un[j+n])<<limbBits | uint64(un[j+n-1])
		} else {
			num = uint64(un[j+n-1])
		}
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])
		if qhat >= limbBase {
			qhat = limbBase - 1
			rhat = num - qhat*uint64(vn[n-1])
		}
		for rhat < limbBase && n >= 2 && qhat*uint64(vn[n-2]) > rhat<<limbBits+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
		}

		borrow := int64(0)
		carry := uint64(0)
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			p += carry
			carry = p >> limbBits
			sub := int64(un[j+i]) - int64(p&limbMask) - borrow
			if sub < 0 {
				sub += limbBase
				borrow = 1
			} else {
				borrow = 0
			}
			un[j+i] = uint32(sub)
		}
		sub := int64(un[j+n]) - int64(carry) - borrow
		if sub < 0 {
			// qhat was one too large; add back.
			sub += limbBase
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(un[j+i]) + uint64(vn[i]) + c
				un[j+i] = uint32(s & limbMask)
				c = s >> limbBits
			}
			sub = (sub + int64(c)) % limbBase
		}
		un[j+n] = uint32(sub)
		q[j] = uint32(qhat)
	}
	rem := shiftRight(trim(un[:n]), shift)
	return trim(q), trim(rem)
}

func shiftLeft(limbs []uint32, bits int) []uint32 {
	if bits == 0 {
		return append([]uint32(nil), limbs...)
	}
	out := make([]uint32, len(limbs)+1)
	var carry uint32
	for i, v := range limbs {
		out[i] = (v<<bits | carry) & limbMask
		carry = v >> (limbBits - bits)
	}
	out[len(limbs)] = carry
	return trim(out)
}

func shiftRight(limbs []uint32, bits int) []uint32 {
	if bits == 0 {
		return append([]uint32(nil), limbs...)
	}
	out := make([]uint32, len(limbs))
	var carry uint32
	for i := len(limbs) - 1; i >= 0; i-- {
		out[i] = (limbs[i] >> bits) | carry
		carry = (limbs[i] << (limbBits - bits)) & limbMask
	}
	return trim(out)
}

// DivMod returns (q, r) such that b == q*o + r and 0 <= r < |o|
// (Euclidean division), regardless of the sign of either operand. This
// resolves the source's flagged sign-convention ambiguity (§9 of
// SPEC_FULL.md) in favor of the standard, always-terminating
// convention.
func (b *BigInt) DivMod(o *BigInt) (*BigInt, *BigInt, error) {
	if o.IsZero() {
		return nil, nil, NewArithmeticError("division by zero")
	}
	qAbs, rAbs := divModAbs(b.limbs, o.limbs)
	q := &BigInt{limbs: qAbs}
	r := &BigInt{limbs: rAbs}
	switch {
	case !b.neg && !o.neg:
		return q, r, nil
	case !b.neg && o.neg:
		q.neg = !q.IsZero()
		return q, r, nil
	case b.neg && !o.neg:
		if r.IsZero() {
			q.neg = !q.IsZero()
			return q, r, nil
		}
		q = q.Add(intOneBig).Neg()
		r = o.Abs().Sub(r)
		return q, r, nil
	default: // b.neg && o.neg
		if r.IsZero() {
			return q, r, nil
		}
		q = q.Add(intOneBig)
		r = o.Abs().Sub(r)
		return q, r, nil
	}
}

var intOneBig = BigIntFromInt64(1)

// Gcd returns the non-negative greatest common divisor of |b| and |o|,
// via the Euclidean algorithm applied to absolute values so the
// remainder sequence is strictly decreasing and non-negative and the
// recursion always terminates (§9 open-question resolution).
func (b *BigInt) Gcd(o *BigInt) *BigInt {
	x, y := b.Abs(), o.Abs()
	for !y.IsZero() {
		_, r, _ := x.DivMod(y)
		x, y = y, r
	}
	return x
}

func (b *BigInt) Lcm(o *BigInt) *BigInt {
	if b.IsZero() || o.IsZero() {
		return bigIntZero()
	}
	g := b.Gcd(o)
	q, _, _ := b.Abs().DivMod(g)
	return q.Mul(o.Abs())
}

// Pow raises b to the non-negative integer power e via repeated
// squaring, completing the source's pow which was left unfinished for
// exponents >= 2.
func (b *BigInt) Pow(e uint64) *BigInt {
	result := BigIntFromInt64(1)
	base := b
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// MulMod computes (b*a) mod m, result in [0, |m|).
func (b *BigInt) MulMod(a, m *BigInt) *BigInt {
	_, r, _ := b.Mul(a).DivMod(m)
	return r
}

// ModPow computes b^exp mod mod via square-and-multiply, exp >= 0.
func (b *BigInt) ModPow(exp, mod *BigInt) *BigInt {
	result := BigIntFromInt64(1)
	_, base, _ := b.DivMod(mod)
	e := exp
	zero := BigIntFromInt64(0)
	two := BigIntFromInt64(2)
	for e.Cmp(zero) > 0 {
		_, rem, _ := e.DivMod(two)
		if !rem.IsZero() {
			result = result.MulMod(base, mod)
		}
		base = base.MulMod(base, mod)
		e, _, _ = e.DivMod(two)
	}
	return result
}

func (b *BigInt) BitLen() int {
	if b.IsZero() {
		return 0
	}
	n := len(b.limbs)
	top := b.limbs[n-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (n-1)*limbBits + bits
}

// Sqrt returns floor(sqrt(|b|)) via Newton's method.
func (b *BigInt) Sqrt() *BigInt {
	a := b.Abs()
	if a.IsZero() {
		return bigIntZero()
	}
	x := BigIntFromInt64(1).shiftLeftBits((a.BitLen() + 1) / 2)
	two := BigIntFromInt64(2)
	for {
		q, _, _ := a.DivMod(x)
		next, _, _ := x.Add(q).DivMod(two)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	return x
}

func (b *BigInt) shiftLeftBits(n int) *BigInt {
	limbShift := n / limbBits
	bitShift := n % limbBits
	limbs := make([]uint32, limbShift)
	limbs = append(limbs, b.limbs...)
	if bitShift != 0 {
		limbs = shiftLeft(limbs, bitShift)
	}
	return &BigInt{neg: b.neg, limbs: trim(limbs)}
}

func (b *BigInt) Int64() (int64, bool) {
	if len(b.limbs) > 3 {
		return 0, false
	}
	var v uint64
	for i := len(b.limbs) - 1; i >= 0; i-- {
		v = v<<limbBits | uint64(b.limbs[i])
	}
	if v > 1<<63 {
		return 0, false
	}
	if b.neg {
		return -int64(v), true
	}
	return int64(v), true
}

// String prints chunks of 9 decimal digits, most significant chunk
// unpadded, following the source's chunked decimal printer.
func (b *BigInt) String() string {
	if b.IsZero() {
		return "0"
	}
	var chunks []uint32
	n := &BigInt{limbs: append([]uint32(nil), b.limbs...)}
	div := BigIntFromInt64(decimalChunkPow)
	for !n.IsZero() {
		q, r, _ := n.DivMod(div)
		var rv uint32
		if len(r.limbs) > 0 {
			rv32, _ := r.Int64()
			rv = uint32(rv32)
		}
		chunks = append(chunks, rv)
		n = q
	}
	var sb strings.Builder
	if b.neg {
		sb.WriteByte('-')
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			sb.WriteString(itoa(chunks[i]))
		} else {
			s := itoa(chunks[i])
			for len(s) < decimalChunk {
				s = "0" + s
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func (b *BigInt) Clone() *BigInt {
	return &BigInt{neg: b.neg, limbs: append([]uint32(nil), b.limbs...)}
}
