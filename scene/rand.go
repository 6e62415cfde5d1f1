// Package scene paints the splash layers: starfield, celestial bodies, border, status and footer
package scene

// Rand is a xorshift64 generator; deterministic for a given seed, not for cryptographic use
type Rand struct {
	state uint64
}

// NewRand seeds a generator; a zero seed is replaced since xorshift would stay at zero
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 for n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
