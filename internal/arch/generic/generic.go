// Package generic provides the built-in float32 implementations of the
// summation operations. Its entry implements every operation and is the
// fallback for anything a higher-priority variant leaves out.
package generic

import (
	"github.com/cwbudde/binary-playground/arith"
	"github.com/cwbudde/binary-playground/internal/cpu"
	"github.com/cwbudde/binary-playground/internal/registry"
)

// Name identifies the built-in entry.
const Name = "builtin"

// SumVectors computes v1[i] += v2[i] + v3[i]. Panics if lengths differ.
func SumVectors(v1, v2, v3 []float32) {
	if err := arith.SumVectors(v1, v2, v3); err != nil {
		panic(err)
	}
}

// Entry returns the built-in registry entry.
//
// Priority: 0 (lowest; used for any operation no other entry provides)
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:       Name,
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		SumScalars: arith.SumScalars,
		SumVectors: SumVectors,
		SumStructs: arith.SumStructs,
	}
}
