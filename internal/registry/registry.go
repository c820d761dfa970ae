// Package registry holds the implementation entries for the summation
// operations and resolves, per operation, which entry serves it.
//
// An entry may implement any subset of the operations. The built-in generic
// entry implements all of them at priority 0, so resolution always succeeds
// once it is registered. Higher-priority entries (wide accumulation, a loaded
// library) override it operation by operation.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/binary-playground/arith"
	"github.com/cwbudde/binary-playground/internal/cpu"
)

// ErrNoImplementation is returned when no compatible entry implements an operation.
var ErrNoImplementation = errors.New("registry: no implementation")

// Op identifies one of the summation operations.
type Op int

const (
	OpSumScalars Op = iota
	OpSumVectors
	OpSumStructs
)

// Ops lists every operation in resolution order.
var Ops = []Op{OpSumScalars, OpSumVectors, OpSumStructs}

// String returns the exported symbol name of the operation.
func (op Op) String() string {
	switch op {
	case OpSumScalars:
		return "sum_scalars"
	case OpSumVectors:
		return "sum_vectors"
	case OpSumStructs:
		return "sum_structs"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// OpEntry is one registered implementation variant.
//
// Fields left nil are operations the variant does not provide.
type OpEntry struct {
	// Name identifies the variant in logs (e.g. "generic", "./libfoo.so").
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants. Higher wins.
	//   - generic: 0
	//   - wide:    10
	//   - library: 100
	Priority int

	// SumScalars returns a + b + c.
	SumScalars func(a, b, c float32) float32

	// SumVectors computes v1[i] += v2[i] + v3[i]. Lengths are validated by the caller.
	SumVectors func(v1, v2, v3 []float32)

	// SumStructs returns the field-wise sum of s1 and s2.
	SumStructs func(s1, s2 arith.Record) arith.Record
}

// Has reports whether the entry implements op.
func (e *OpEntry) Has(op Op) bool {
	switch op {
	case OpSumScalars:
		return e.SumScalars != nil
	case OpSumVectors:
		return e.SumVectors != nil
	case OpSumStructs:
		return e.SumStructs != nil
	default:
		return false
	}
}

// OpRegistry manages registered entries. The zero value is ready to use.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Register adds an entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// LookupOp returns the highest-priority compatible entry that implements op.
func (r *OpRegistry) LookupOp(features cpu.Features, op Op) (OpEntry, error) {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && entry.Has(op) {
			return *entry, nil
		}
	}
	return OpEntry{}, fmt.Errorf("%w for %s", ErrNoImplementation, op)
}

// Resolve selects an entry for every operation.
func (r *OpRegistry) Resolve(features cpu.Features) (Resolution, error) {
	var res Resolution
	for _, op := range Ops {
		entry, err := r.LookupOp(features, op)
		if err != nil {
			return Resolution{}, err
		}
		switch op {
		case OpSumScalars:
			res.scalars = entry
		case OpSumVectors:
			res.vectors = entry
		case OpSumStructs:
			res.structs = entry
		}
	}
	return res, nil
}

func (r *OpRegistry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Insertion sort, stable for equal priorities so registration order breaks ties.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// ListEntries returns a copy of all entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
