//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func probe() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
