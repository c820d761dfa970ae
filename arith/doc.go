// Package arith provides the three summation primitives used by the playground.
//
// The operations are pure and stateless:
//
//   - SumScalars: a + b + c, evaluated left to right in float32
//   - SumVectors: v1[i] = v1[i] + v2[i] + v3[i], in place, bounds checked
//   - SumStructs: field-wise sum of two Records
//
// Record mirrors the C layout {int x; float y; double z;} so that values can be
// handed to a dynamically loaded implementation by pointer.
package arith
