// Package bytesimd provides wraparound addition of fixed-length byte vectors
// using bit-sliced arithmetic.
//
// A Vector holds 512 bytes transposed into eight 512-bit planes, one per bit
// position. Ordinary word-wide AND/OR/XOR on a plane act on all 512 lanes at
// once, so adding two vectors is a ripple-carry walk over eight planes (a few
// dozen word operations) instead of 512 scalar adds. Each lane wraps modulo
// 256, matching native uint8 addition.
//
// # Quick start
//
//	var a, b [bytesimd.Size]byte
//	// ... fill a and b ...
//	sum := bytesimd.AddBytes(&a, &b)
//
// # Batching
//
// The transposition in and out of bit-plane form dominates a one-shot
// addition. Callers adding many vectors should stay in Vector form, or use
// an Accumulator, and convert once at the end:
//
//	acc := bytesimd.NewAccumulator()
//	for _, chunk := range chunks {
//		acc.AddBytes(&chunk)
//	}
//	total := acc.Bytes()
//
// Vector is a plain-data value: assignment and by-value passing make full
// independent copies. All operations except AddAssign and the Accumulator
// are pure and safe for concurrent use on shared inputs.
package bytesimd
