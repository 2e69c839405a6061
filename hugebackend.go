//go:build symxx_huge

package symxx

// Int is the integer backend selected by the symxx_huge build tag: the
// arbitrary-precision BigInt itself, for callers that need to compute
// with integers exceeding 128 bits (large radicands, large factorial
// coefficients in the multinomial expansion).
type Int = *BigInt

// backendName identifies the compiled-in Int backend for the Shell's
// "version" command.
const backendName = "huge"

func IntFromInt64(v int64) Int { return BigIntFromInt64(v) }

func IntFromString(s string) (Int, error) { return BigIntFromString(s) }
