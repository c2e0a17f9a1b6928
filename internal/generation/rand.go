package generation

import "math/rand/v2"

// Source supplies the randomness the grower and layout engine consume.
// Tests substitute a seeded RNG or a scripted sequence.
type Source interface {
	// Float64 returns a number in [0, 1)
	Float64() float64
	// IntN returns a number in [0, n); n must be positive
	IntN(n int) int
}

// IntRange returns a random int in [lo, hi] drawn from src.
// When lo >= hi it returns lo.
func IntRange(src Source, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// globalSource draws from the math/rand/v2 package generator, which is
// seeded randomly at startup and safe for concurrent use
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// NewSource returns a non-reproducible Source
func NewSource() Source {
	return globalSource{}
}

// ---- Seeded RNG ----

// RNG is a simple seeded random number generator (LCG).
// It is not safe for concurrent use.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// IntN returns a pseudo-random int in [0, n)
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	// high bits of an LCG are far better distributed than the low ones
	return int((r.Uint64() >> 33) % uint64(n))
}

var _ Source = (*RNG)(nil)
