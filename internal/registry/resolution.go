package registry

import "github.com/cwbudde/binary-playground/arith"

// Resolution binds each operation to the entry selected for it.
// Obtain one from OpRegistry.Resolve; the zero value is not usable.
type Resolution struct {
	scalars OpEntry
	vectors OpEntry
	structs OpEntry
}

// SumScalars returns a + b + c using the selected implementation.
func (r Resolution) SumScalars(a, b, c float32) float32 {
	return r.scalars.SumScalars(a, b, c)
}

// SumVectors adds v2 and v3 into v1 using the selected implementation.
// Mismatched lengths are rejected before the implementation is called.
func (r Resolution) SumVectors(v1, v2, v3 []float32) error {
	if err := arith.CheckLengths(v1, v2, v3); err != nil {
		return err
	}
	if len(v1) == 0 {
		return nil
	}
	r.vectors.SumVectors(v1, v2, v3)
	return nil
}

// SumStructs returns the field-wise sum of s1 and s2 using the selected implementation.
func (r Resolution) SumStructs(s1, s2 arith.Record) arith.Record {
	return r.structs.SumStructs(s1, s2)
}

// Source returns the name of the entry serving op.
func (r Resolution) Source(op Op) string {
	switch op {
	case OpSumScalars:
		return r.scalars.Name
	case OpSumVectors:
		return r.vectors.Name
	case OpSumStructs:
		return r.structs.Name
	default:
		return ""
	}
}
