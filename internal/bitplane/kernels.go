package bitplane

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions can override with SIMD versions when available.
var (
	kernelTranspose   = transposeGeneric
	kernelUntranspose = untransposeGeneric
	kernelAdd         = addGeneric
	kernelOccupancy   = occupancyGeneric
)

// Transpose converts 512 bytes from horizontal to vertical form.
func Transpose(src *[Lanes]byte, dst *Matrix) {
	kernelTranspose(src, dst)
}

// Untranspose converts a matrix back to 512 bytes.
func Untranspose(src *Matrix, dst *[Lanes]byte) {
	kernelUntranspose(src, dst)
}

// Add computes the lane-wise mod-256 sum of a and b into dst.
// dst may alias a or b.
func Add(a, b, dst *Matrix) {
	kernelAdd(a, b, dst)
}

// Occupancy returns the plane whose bit i is set iff lane i of m is nonzero.
func Occupancy(m *Matrix) Plane {
	return kernelOccupancy(m)
}
