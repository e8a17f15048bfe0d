// Package selection provides the seeded pseudo-random primitives shared by
// scenario composition and plan generation. These are the only sources of
// variability in the engine: identical seeds always reproduce identical
// output.
package selection

// Hash32 folds any number of string parts into a 32-bit seed using an
// FNV-1a-style accumulator. A separator byte is mixed in between parts so
// that ("ab","c") and ("a","bc") hash differently.
func Hash32(parts ...string) uint32 {
	h := uint32(2166136261)
	for i, p := range parts {
		if i > 0 {
			h ^= 0x1f
			h *= 16777619
		}
		for j := 0; j < len(p); j++ {
			h ^= uint32(p[j])
			h *= 16777619
		}
	}
	return h
}

// RNG is a mulberry32-style counter-based generator. Same seed, same stream.
type RNG struct {
	state uint32
}

func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Intn returns the next value in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
