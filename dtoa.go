package symxx

import "strconv"

// Dtoa returns the shortest round-trip decimal representation of a
// finite float64, per §4.K: Go's strconv.FormatFloat is already
// Ryu-derived and correctly-rounded since Go 1.13, so no third-party
// Grisu2/Ryu port is warranted here.
func Dtoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
