//go:build darwin || freebsd || linux

package dynlib

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/cwbudde/binary-playground/arith"
	"github.com/cwbudde/binary-playground/internal/registry"
)

// openFlags binds symbols on first use and keeps them out of the global namespace.
const openFlags = purego.RTLD_LAZY | purego.RTLD_LOCAL

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, openFlags)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// bind turns the C function at sym into a Go func of type T.
// purego panics on argument or return kinds it cannot marshal on this
// platform; that is reported as ErrSignature.
func bind[T any](sym uintptr) (fn T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			fn, err = zero, fmt.Errorf("%w: %v", ErrSignature, r)
		}
	}()
	purego.RegisterFunc(&fn, sym)
	return fn, nil
}

func bindOp(entry *registry.OpEntry, op registry.Op, sym uintptr) error {
	switch op {
	case registry.OpSumScalars:
		fn, err := bind[func(a, b, c float32) float32](sym)
		if err != nil {
			return err
		}
		entry.SumScalars = fn

	case registry.OpSumVectors:
		fn, err := bind[func(v1, v2, v3 *float32, n uintptr)](sym)
		if err != nil {
			return err
		}
		entry.SumVectors = func(v1, v2, v3 []float32) {
			if len(v2) != len(v1) || len(v3) != len(v1) {
				panic("dynlib: slice length mismatch")
			}
			if len(v1) == 0 {
				return
			}
			fn(&v1[0], &v2[0], &v3[0], uintptr(len(v1)))
			runtime.KeepAlive(v1)
			runtime.KeepAlive(v2)
			runtime.KeepAlive(v3)
		}

	case registry.OpSumStructs:
		fn, err := bind[func(s1, s2 *arith.Record) arith.Record](sym)
		if err != nil {
			return err
		}
		entry.SumStructs = func(s1, s2 arith.Record) arith.Record {
			return fn(&s1, &s2)
		}

	default:
		return fmt.Errorf("dynlib: unknown operation %s", op)
	}
	return nil
}
