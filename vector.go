package bytesimd

import (
	"fmt"

	"github.com/hupe1980/bytesimd/internal/bitplane"
)

// Size is the number of 8-bit lanes in a Vector.
const Size = bitplane.Lanes

// Vector is a fixed-length vector of 512 bytes held in bit-plane form.
//
// It is a plain-data value with no heap resources: assignment copies, and a
// copy is fully independent of the original. The zero value is the all-zero
// vector. Keeping values in Vector form across many additions amortizes the
// transposition cost of a single AddBytes call.
type Vector struct {
	m bitplane.Matrix
}

// FromBytes builds a Vector from the bytes behind b. The array is only read
// to populate the new value; it is not retained.
func FromBytes(b *[Size]byte) Vector {
	var v Vector
	bitplane.Transpose(b, &v.m)
	return v
}

// FromArray is the by-value form of FromBytes.
func FromArray(b [Size]byte) Vector {
	return FromBytes(&b)
}

// Bytes returns the vector as an owned byte array.
func (v Vector) Bytes() [Size]byte {
	var out [Size]byte
	bitplane.Untranspose(&v.m, &out)
	return out
}

// Add returns the lane-wise sum of v and rhs, each lane wrapping modulo 256.
// Neither operand is modified.
func (v Vector) Add(rhs Vector) Vector {
	var out Vector
	bitplane.Add(&v.m, &rhs.m, &out.m)
	return out
}

// AddAssign adds rhs into v in place, yielding the same value as
// *v = v.Add(*rhs) without the extra copy. The caller must ensure exclusive
// access to *v for the duration of the call.
func (v *Vector) AddAssign(rhs *Vector) {
	bitplane.Add(&v.m, &rhs.m, &v.m)
}

// Equal reports whether v and rhs hold the same 512 lane values.
func (v Vector) Equal(rhs Vector) bool {
	return v.m == rhs.m
}

// String formats the vector as its reconstructed byte array. The exact
// format is for debugging only and not a compatibility contract.
func (v Vector) String() string {
	b := v.Bytes()
	return fmt.Sprint(b[:])
}

// AddBytes adds two byte arrays lane-wise modulo 256 in one shot: both
// inputs are transposed, summed in bit-plane form, and the result converted
// back. For repeated additions prefer Vector or Accumulator.
func AddBytes(a, b *[Size]byte) [Size]byte {
	var ma, mb bitplane.Matrix
	bitplane.Transpose(a, &ma)
	bitplane.Transpose(b, &mb)
	bitplane.Add(&ma, &mb, &ma)

	var out [Size]byte
	bitplane.Untranspose(&ma, &out)
	return out
}

// DetectedISA reports the widest vector instruction set detected on this
// CPU. The kernels are pure Go either way; the report is informational, for
// benchmark output and bug reports.
func DetectedISA() string {
	return bitplane.DetectedISA().String()
}
