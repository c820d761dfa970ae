// Package dynlib loads the summation operations from a shared object at
// runtime and exposes them as a registry entry.
//
// The library is expected to export C functions with these signatures:
//
//	float    sum_scalars(float a, float b, float c);
//	void     sum_vectors(float *v1, const float *v2, const float *v3, size_t len);
//	MyStruct sum_structs(const MyStruct *s1, const MyStruct *s2);
//
// where MyStruct is {int x; float y; double z;}. Symbols that are missing, or
// whose signature cannot be bound on the current platform, are left out of
// the entry so the registry falls back to the built-in implementation.
package dynlib

import (
	"errors"
	"fmt"

	"github.com/cwbudde/binary-playground/internal/registry"
)

// BaseName is the file name stem of the playground library.
const BaseName = "libbinary_playground"

// Priority is the registry priority of library entries.
const Priority = 100

var (
	// ErrOpen is returned when no candidate library could be opened.
	ErrOpen = errors.New("dynlib: failed to open dynamic library")

	// ErrSymbol is reported for a symbol the library does not export.
	ErrSymbol = errors.New("dynlib: symbol not found")

	// ErrSignature is reported for a symbol whose signature cannot be bound here.
	ErrSignature = errors.New("dynlib: signature not supported on this platform")

	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = errors.New("dynlib: dynamic loading not supported on this platform")
)

// DefaultPaths returns the candidate paths in the order they are tried:
// the macOS name first, then the ELF name, both in the working directory.
func DefaultPaths() []string {
	return []string{
		"./" + BaseName + ".dylib",
		"./" + BaseName + ".so",
	}
}

// Library is an open shared object.
type Library struct {
	path   string
	handle uintptr
}

// Missing describes an operation the library could not provide.
type Missing struct {
	Op  registry.Op
	Err error
}

// Open tries each path in order and returns the first library that opens.
// If none opens, the error wraps ErrOpen and every loader diagnostic.
func Open(paths ...string) (*Library, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no candidate paths", ErrOpen)
	}

	errs := make([]error, 0, len(paths))
	for _, path := range paths {
		handle, err := dlopen(path)
		if err == nil {
			return &Library{path: path, handle: handle}, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}
	return nil, fmt.Errorf("%w: %w", ErrOpen, errors.Join(errs...))
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Entry binds the library's symbols into a registry entry.
// Operations that could not be bound are nil in the entry and listed in missing.
func (l *Library) Entry() (entry registry.OpEntry, missing []Missing) {
	entry = registry.OpEntry{
		Name:     l.path,
		Priority: Priority,
	}
	if l.handle == 0 {
		for _, op := range registry.Ops {
			missing = append(missing, Missing{Op: op, Err: ErrSymbol})
		}
		return entry, missing
	}

	for _, op := range registry.Ops {
		sym, err := dlsym(l.handle, op.String())
		if err != nil {
			missing = append(missing, Missing{Op: op, Err: fmt.Errorf("%w: %w", ErrSymbol, err)})
			continue
		}
		if err := bindOp(&entry, op, sym); err != nil {
			missing = append(missing, Missing{Op: op, Err: err})
		}
	}
	return entry, missing
}

// Close releases the library handle. It is safe to call more than once.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	handle := l.handle
	l.handle = 0
	if err := dlclose(handle); err != nil {
		return fmt.Errorf("dynlib: close %s: %w", l.path, err)
	}
	return nil
}
