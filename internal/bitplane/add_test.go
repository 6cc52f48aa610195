package bitplane

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addViaMatrix(t *testing.T, a, b [Lanes]byte) [Lanes]byte {
	t.Helper()
	var ma, mb, ms Matrix
	Transpose(&a, &ma)
	Transpose(&b, &mb)
	Add(&ma, &mb, &ms)
	var out [Lanes]byte
	Untranspose(&ms, &out)
	return out
}

func TestAddMatchesScalar(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 123} {
		r := rand.New(rand.NewSource(seed))
		a := randArray(r)
		b := randArray(r)

		got := addViaMatrix(t, a, b)
		for i := range got {
			require.Equal(t, a[i]+b[i], got[i], "seed %d lane %d", seed, i)
		}
	}
}

func TestAddWraparound(t *testing.T) {
	var all255, all1 [Lanes]byte
	for i := range all255 {
		all255[i] = 255
		all1[i] = 1
	}

	t.Run("255+1 wraps to 0", func(t *testing.T) {
		got := addViaMatrix(t, all255, all1)
		assert.Equal(t, [Lanes]byte{}, got)
	})

	t.Run("255+255 wraps to 254", func(t *testing.T) {
		got := addViaMatrix(t, all255, all255)
		for i := range got {
			assert.Equal(t, byte(254), got[i])
		}
	})

	t.Run("v+v doubles mod 256", func(t *testing.T) {
		r := rand.New(rand.NewSource(5))
		v := randArray(r)
		got := addViaMatrix(t, v, v)
		for i := range got {
			assert.Equal(t, byte(2*uint16(v[i])), got[i])
		}
	})
}

// 0x7F+1 ripples a carry through all seven lower planes into plane 7.
func TestAddCarryRipple(t *testing.T) {
	var a, b [Lanes]byte
	a[0] = 0x7F
	b[0] = 1

	got := addViaMatrix(t, a, b)
	assert.Equal(t, byte(0x80), got[0])
	for i := 1; i < Lanes; i++ {
		assert.Zero(t, got[i])
	}
}

func TestAddMixedBoundaries(t *testing.T) {
	var a, b [Lanes]byte
	copy(a[:4], []byte{0, 255, 128, 1})
	copy(b[:4], []byte{1, 1, 128, 255})

	got := addViaMatrix(t, a, b)
	assert.Equal(t, []byte{1, 0, 0, 0}, got[:4])
	for i := 4; i < Lanes; i++ {
		assert.Zero(t, got[i])
	}
}

func TestAddAliasing(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	a := randArray(r)
	b := randArray(r)

	var ma, mb Matrix
	Transpose(&a, &ma)
	Transpose(&b, &mb)

	t.Run("dst aliases lhs", func(t *testing.T) {
		acc := ma
		Add(&acc, &mb, &acc)
		var out [Lanes]byte
		Untranspose(&acc, &out)
		for i := range out {
			require.Equal(t, a[i]+b[i], out[i])
		}
	})

	t.Run("dst aliases rhs", func(t *testing.T) {
		acc := mb
		Add(&ma, &acc, &acc)
		var out [Lanes]byte
		Untranspose(&acc, &out)
		for i := range out {
			require.Equal(t, a[i]+b[i], out[i])
		}
	})
}

func TestAddCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := randArray(r)
	b := randArray(r)

	assert.Equal(t, addViaMatrix(t, a, b), addViaMatrix(t, b, a))
}
