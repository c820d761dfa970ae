// Package wide implements the summation operations with float64 accumulation.
//
// Operands are widened to float64, summed, and rounded back to float32 once.
// This avoids the intermediate float32 rounding of v1[i]+v2[i], so results can
// differ from the built-in kernels in the last ulp. Vector sums run through the
// algo-vecmath block kernels.
package wide

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/binary-playground/internal/registry"
)

// Name identifies the wide entry.
const Name = "wide"

// SumScalars returns float32(float64(a) + float64(b) + float64(c)).
func SumScalars(a, b, c float32) float32 {
	return float32(float64(a) + float64(b) + float64(c))
}

// SumVectors computes v1[i] += v2[i] + v3[i] in float64. Panics if lengths differ.
func SumVectors(v1, v2, v3 []float32) {
	if len(v2) != len(v1) || len(v3) != len(v1) {
		panic("wide: slice length mismatch")
	}

	acc := widen(make([]float64, len(v1)), v1)
	tmp := widen(make([]float64, len(v1)), v2)
	vecmath.AddBlockInPlace(acc, tmp)
	vecmath.AddBlockInPlace(acc, widen(tmp, v3))

	for i, v := range acc {
		v1[i] = float32(v)
	}
}

func widen(dst []float64, src []float32) []float64 {
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

// Entry returns the wide registry entry. It does not implement SumStructs,
// whose Z field is already float64.
//
// The entry requires the vector unit algo-vecmath targets on this
// architecture, so forcing generic kernels leaves both operations to the
// built-in entry.
//
// Priority: 10 (above generic, below a loaded library)
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:       Name,
		SIMDLevel:  simdLevel,
		Priority:   10,
		SumScalars: SumScalars,
		SumVectors: SumVectors,
	}
}
