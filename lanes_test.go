package bytesimd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bytesimd"
)

func TestNonzeroLanes(t *testing.T) {
	var raw [bytesimd.Size]byte
	raw[0] = 1
	raw[5] = 0x80
	raw[100] = 42
	raw[511] = 255

	bm := bytesimd.FromBytes(&raw).NonzeroLanes()

	assert.Equal(t, uint64(4), bm.GetCardinality())
	for _, lane := range []uint32{0, 5, 100, 511} {
		assert.True(t, bm.Contains(lane), "lane %d", lane)
	}
	assert.False(t, bm.Contains(1))
}

func TestNonzeroLanesEmpty(t *testing.T) {
	var v bytesimd.Vector
	assert.True(t, v.NonzeroLanes().IsEmpty())
	assert.Zero(t, v.CountNonzero())
}

func TestCountNonzero(t *testing.T) {
	var raw [bytesimd.Size]byte
	for i := 0; i < bytesimd.Size; i += 2 {
		raw[i] = byte(i%255) + 1
	}

	assert.Equal(t, bytesimd.Size/2, bytesimd.FromBytes(&raw).CountNonzero())
}

// Wraparound can zero a lane; the occupancy must reflect the stored values,
// not the inputs.
func TestNonzeroLanesAfterWrap(t *testing.T) {
	a := bytesimd.FromArray([bytesimd.Size]byte{0: 255, 1: 3})
	b := bytesimd.FromArray([bytesimd.Size]byte{0: 1})

	sum := a.Add(b)
	bm := sum.NonzeroLanes()

	assert.False(t, bm.Contains(0))
	assert.True(t, bm.Contains(1))
	assert.Equal(t, 1, sum.CountNonzero())
}
