//go:build (!amd64 && !arm64) || purego

package wide

import "github.com/cwbudde/binary-playground/internal/cpu"

const simdLevel = cpu.SIMDNone
