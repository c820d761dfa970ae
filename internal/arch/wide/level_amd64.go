//go:build amd64 && !purego

package wide

import "github.com/cwbudde/binary-playground/internal/cpu"

// algo-vecmath's slowest amd64 block kernels are SSE2.
const simdLevel = cpu.SIMDSSE2
