//go:build !darwin && !freebsd && !linux

package dynlib

import "github.com/cwbudde/binary-playground/internal/registry"

func dlopen(string) (uintptr, error) {
	return 0, ErrUnsupported
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupported
}

func dlclose(uintptr) error {
	return nil
}

func bindOp(*registry.OpEntry, registry.Op, uintptr) error {
	return ErrUnsupported
}
