//go:build arm64

package bitplane

import "golang.org/x/sys/cpu"

func init() {
	hasASIMD = cpu.ARM64.HasASIMD
	initCapabilities()
}
