package bitplane

import "runtime"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// detectedISA is the widest vector ISA the CPU offers. The kernels in
	// this package are currently all generic Go; assembly overrides would
	// key their init() on these flags.
	detectedISA ISA

	// CPU feature flags (set by platform-specific init)
	hasASIMD    bool // ARM64 NEON
	hasAVX2     bool // x86-64 AVX2
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from platform-specific init functions after
// CPU features are detected.
func initCapabilities() {
	detectedISA = selectBestISA()
}

// selectBestISA chooses the widest ISA available on the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasASIMD {
			return NEON
		}
	case "amd64":
		// AVX-512 needs both Foundation and BW for byte-plane kernels.
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// DetectedISA returns the widest vector ISA detected on this CPU.
func DetectedISA() ISA {
	return detectedISA
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
