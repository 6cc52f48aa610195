package testutil

import "github.com/hupe1980/bytesimd/internal/bitplane"

// RNG is a deterministic xorshift32 generator for reproducible test data.
// It is intentionally tiny and allocation-free; it is NOT thread-safe.
type RNG struct {
	state uint32
	seed  uint32
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = 1 // xorshift32 is stuck at zero
	}
	return &RNG{state: seed, seed: seed}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.state = r.seed
}

// Uint32 returns the next pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Byte returns the next pseudo-random byte.
func (r *RNG) Byte() byte {
	return byte(r.Uint32() & 0xFF)
}

// FillBytes fills dst with pseudo-random bytes.
func (r *RNG) FillBytes(dst []byte) {
	for i := range dst {
		dst[i] = r.Byte()
	}
}

// ByteArray returns a lane-sized array filled with pseudo-random bytes.
func (r *RNG) ByteArray() [bitplane.Lanes]byte {
	var a [bitplane.Lanes]byte
	r.FillBytes(a[:])
	return a
}

// ByteArrays returns n lane-sized arrays filled with pseudo-random bytes.
func (r *RNG) ByteArrays(n int) [][bitplane.Lanes]byte {
	out := make([][bitplane.Lanes]byte, n)
	for i := range out {
		r.FillBytes(out[i][:])
	}
	return out
}
