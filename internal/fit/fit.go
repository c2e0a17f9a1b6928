// Package fit sizes text and spacing so content fits a fixed width.
//
// Both routines work against a Measurer, which applies a candidate size and
// reports how much width the content then needs and how much is available.
// A page binds a Measurer to DOM elements; the PNG renderer binds one to a
// font face.
package fit

import "math"

// Measurer applies a size and measures the result
type Measurer interface {
	Apply(size float64)
	Needed() float64
	Available() float64
}

// Title and meta line limits for the identity sign
const (
	TitleMin        = 22
	TitleMax        = 110
	TitleIterations = 12

	MetaMin        = 12
	MetaMax        = 26
	MetaIterations = 11
)

// Binary finds the largest whole size in [lo, hi] whose content fits,
// applies it and returns it. The search runs a fixed number of iterations.
// When nothing fits, lo is applied. When the available width is not
// positive (hidden content) nothing is applied and ok is false.
func Binary(m Measurer, lo, hi, iterations int) (size int, ok bool) {
	if m.Available() <= 0 {
		return 0, false
	}

	low, high, best := lo, hi, lo
	for i := 0; i < iterations; i++ {
		mid := int(math.Round(float64(low+high) / 2))
		m.Apply(float64(mid))

		if m.Needed() > m.Available() {
			high = mid - 1
			continue
		}

		best = mid
		low = mid + 1
	}

	best = max(lo, min(hi, best))
	m.Apply(float64(best))
	return best, true
}
