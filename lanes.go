package bytesimd

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bytesimd/internal/bitplane"
)

// NonzeroLanes returns the indices of lanes holding a nonzero value as a
// roaring bitmap. The occupancy is computed in bit-plane form (one OR pass
// over the eight planes) without reconstructing the byte array.
func (v Vector) NonzeroLanes() *roaring.Bitmap {
	occ := bitplane.Occupancy(&v.m)

	bm := roaring.New()
	for w, word := range occ {
		base := uint32(w) * 64
		for word != 0 {
			bm.Add(base + uint32(bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return bm
}

// CountNonzero returns the number of lanes holding a nonzero value.
func (v Vector) CountNonzero() int {
	occ := bitplane.Occupancy(&v.m)

	n := 0
	for _, word := range occ {
		n += bits.OnesCount64(word)
	}
	return n
}
