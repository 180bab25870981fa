package layout

import "golang.org/x/exp/constraints"

// clamp restricts v to the range [lo, hi].
// If lo > hi, lo wins.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Clamp restricts v to the range [lo, hi]; lo wins when the range is inverted.
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}
