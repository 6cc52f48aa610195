package bitplane

const (
	// Lanes is the number of 8-bit lanes in a Matrix.
	Lanes = 512

	// Planes is the number of bit planes, one per bit of a lane.
	Planes = 8

	// WordsPerPlane is the number of uint64 words holding one plane.
	// 512 lanes / 64 bits per word = 8 words.
	WordsPerPlane = Lanes / 64
)

// Plane packs one bit position across all 512 lanes: bit i of the plane is
// that bit of lane i.
type Plane [WordsPerPlane]uint64

// Matrix is the vertical (bit-plane) form of 512 bytes: plane b holds bit b
// of every lane. The fixed array arities make a malformed plane or lane
// count unrepresentable.
type Matrix [Planes]Plane

// transposeGeneric converts src from horizontal (one byte per lane) to
// vertical (one plane per bit) form.
//
// Branchless: every byte contributes one masked bit to each of the eight
// plane accumulators, regardless of its value.
func transposeGeneric(src *[Lanes]byte, dst *Matrix) {
	for w := 0; w < WordsPerPlane; w++ {
		base := w * 64
		var p0, p1, p2, p3, p4, p5, p6, p7 uint64
		for i := 0; i < 64; i++ {
			c := uint64(src[base+i])
			p0 |= (c & 1) << i
			p1 |= (c >> 1 & 1) << i
			p2 |= (c >> 2 & 1) << i
			p3 |= (c >> 3 & 1) << i
			p4 |= (c >> 4 & 1) << i
			p5 |= (c >> 5 & 1) << i
			p6 |= (c >> 6 & 1) << i
			p7 |= (c >> 7 & 1) << i
		}
		dst[0][w] = p0
		dst[1][w] = p1
		dst[2][w] = p2
		dst[3][w] = p3
		dst[4][w] = p4
		dst[5][w] = p5
		dst[6][w] = p6
		dst[7][w] = p7
	}
}

// untransposeGeneric converts src from vertical back to horizontal form.
// Total over arbitrary bit patterns; src does not need to have come from a
// transpose (it usually comes from the adder).
func untransposeGeneric(src *Matrix, dst *[Lanes]byte) {
	for w := 0; w < WordsPerPlane; w++ {
		base := w * 64
		p0 := src[0][w]
		p1 := src[1][w]
		p2 := src[2][w]
		p3 := src[3][w]
		p4 := src[4][w]
		p5 := src[5][w]
		p6 := src[6][w]
		p7 := src[7][w]
		for i := 0; i < 64; i++ {
			dst[base+i] = byte(p0>>i&1) |
				byte(p1>>i&1)<<1 |
				byte(p2>>i&1)<<2 |
				byte(p3>>i&1)<<3 |
				byte(p4>>i&1)<<4 |
				byte(p5>>i&1)<<5 |
				byte(p6>>i&1)<<6 |
				byte(p7>>i&1)<<7
		}
	}
}

// occupancyGeneric ORs all planes together: bit i of the result is set iff
// lane i holds a nonzero value.
func occupancyGeneric(m *Matrix) Plane {
	var occ Plane
	for p := 0; p < Planes; p++ {
		for w := 0; w < WordsPerPlane; w++ {
			occ[w] |= m[p][w]
		}
	}
	return occ
}
