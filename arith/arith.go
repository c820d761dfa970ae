package arith

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when vector operands differ in length.
var ErrLengthMismatch = errors.New("arith: vector length mismatch")

// Record is a composite scalar with one integer and two floating-point fields.
// Field order and widths match the C struct used by external libraries.
type Record struct {
	X int32
	Y float32
	Z float64
}

// SumScalars returns a + b + c.
func SumScalars(a, b, c float32) float32 {
	return a + b + c
}

// CheckLengths returns an error wrapping ErrLengthMismatch unless all three
// slices have the same length.
func CheckLengths(v1, v2, v3 []float32) error {
	if len(v2) != len(v1) || len(v3) != len(v1) {
		return fmt.Errorf("%w: len(v1)=%d, len(v2)=%d, len(v3)=%d",
			ErrLengthMismatch, len(v1), len(v2), len(v3))
	}
	return nil
}

// SumVectors adds v2 and v3 into v1 element by element: v1[i] = v1[i] + v2[i] + v3[i].
// v2 and v3 are not modified. On a length mismatch v1 is left untouched.
func SumVectors(v1, v2, v3 []float32) error {
	if err := CheckLengths(v1, v2, v3); err != nil {
		return err
	}
	for i := range v1 {
		v1[i] = v1[i] + v2[i] + v3[i]
	}
	return nil
}

// SumStructs returns the field-wise sum of s1 and s2. X wraps on overflow.
func SumStructs(s1, s2 Record) Record {
	return Record{
		X: s1.X + s2.X,
		Y: s1.Y + s2.Y,
		Z: s1.Z + s2.Z,
	}
}
