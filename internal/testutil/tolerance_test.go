package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual32(t *testing.T) {
	RequireSliceNearlyEqual32(t, []float32{1, 2, 3}, []float32{1, 2, 3.0000005}, 1e-6)
	nan := float32(math.NaN())
	RequireSliceNearlyEqual32(t, []float32{nan}, []float32{nan}, 0)
	inf := float32(math.Inf(1))
	RequireSliceNearlyEqual32(t, []float32{inf}, []float32{inf}, 0)
}
