// Package bitplane implements the bit-sliced kernels behind bytesimd.
//
// A Matrix holds 512 bytes transposed into eight bit planes: plane b packs
// bit b of every lane into one 512-bit word (eight uint64s). Ordinary
// bitwise AND/OR/XOR on a plane then act on all 512 lanes at once, so a
// lane-wise addition is a ripple-carry walk over the eight planes instead
// of 512 scalar adds.
//
// Kernels are dispatched through function pointers (see kernels.go).
// Generic implementations are the default; they are written branchless so
// the compiler can auto-vectorize them. Architecture-specific assembly can
// override the kernel variables in arch-tagged files later.
package bitplane
