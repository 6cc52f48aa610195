package bitplane

// addGeneric computes the lane-wise mod-256 sum of a and b into dst.
//
// Classic ripple-carry long addition over bit planes, least significant
// plane first. Each step is the full-adder update
//
//	sum   = a ^ b ^ carry
//	carry = a&b | a&carry | b&carry
//
// applied to all 512 lanes at once by the word-wide bitwise ops. The plane
// order is load-bearing: plane p's carry feeds plane p+1. The carry out of
// plane 7 is dropped, which is exactly the per-lane mod-256 wraparound.
//
// dst may alias a or b; every dst word is written after the corresponding
// operand words are read.
func addGeneric(a, b, dst *Matrix) {
	var carry Plane
	for p := 0; p < Planes; p++ {
		var next Plane
		for w := 0; w < WordsPerPlane; w++ {
			x, y, c := a[p][w], b[p][w], carry[w]
			dst[p][w] = x ^ y ^ c
			next[w] = x&y | x&c | y&c
		}
		carry = next
	}
}
