// Package picker draws reproducible samples from a pool using the mulberry32
// generator. The same seed always yields the same ordered output so that a
// draw can be reproduced from its seed alone.
package picker

// Rand is a mulberry32 pseudo-random generator.
type Rand struct {
	state uint32
}

// New returns a generator initialised with seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 advances the generator and returns the next raw value.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5

	t := (r.state ^ r.state>>15) * (1 | r.state)
	t ^= t + (t^t>>7)*(61|t)

	return t ^ t>>14
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("picker: invalid argument to Intn")
	}

	return int(r.Float64() * float64(n))
}

// SeedFrom reduces an arbitrary integer (such as a millisecond timestamp) to
// a seed by keeping its low 32 bits.
func SeedFrom(v int64) uint32 {
	return uint32(uint64(v))
}

// Pick selects n elements of pool without replacement. If n exceeds the pool
// size, every element is returned in drawn order. pool is not modified.
func Pick[T any](pool []T, n int, seed uint32) []T {
	if n <= 0 || len(pool) == 0 {
		return []T{}
	}

	remaining := make([]T, len(pool))
	copy(remaining, pool)

	out := make([]T, 0, min(n, len(pool)))
	r := New(seed)

	for len(out) < n && len(remaining) > 0 {
		i := r.Intn(len(remaining))

		out = append(out, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	return out
}
