package dispatch

import (
	"slices"
	"strings"
)

// Mode selects what the dispatcher computes.
type Mode string

const (
	ModeScalar Mode = "scalar"
	ModeVector Mode = "vector"
	ModeStruct Mode = "struct"
)

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ModeScalar, ModeVector, ModeStruct}
}

// ModeList returns the supported modes joined for usage text.
func ModeList() string {
	names := make([]string, 0, 3)
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, "|")
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeScalar, ModeVector, ModeStruct:
		return true
	default:
		return false
	}
}

// Config is the settings of one invocation. Build it once with ApplyOptions
// and pass it by value.
type Config struct {
	Mode Mode

	// UseLib loads providers from a dynamic library.
	UseLib bool

	// LibPaths overrides the library candidates. Empty means dynlib.DefaultPaths.
	LibPaths []string

	// A, B, C are the scalar-mode inputs.
	A, B, C float32

	// Wide enables float64 accumulation for scalar and vector sums.
	Wide bool

	// Generic restricts selection to kernels that need no SIMD extension.
	Generic bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns scalar mode with inputs 1, 2, 3 and no library.
func DefaultConfig() Config {
	return Config{
		Mode: ModeScalar,
		A:    1,
		B:    2,
		C:    3,
	}
}

// WithMode sets the mode. An empty mode is ignored; unsupported modes are
// kept and rejected at dispatch time.
func WithMode(mode Mode) Option {
	return func(cfg *Config) {
		if mode != "" {
			cfg.Mode = mode
		}
	}
}

// WithLibrary enables or disables loading from a dynamic library.
func WithLibrary(enabled bool) Option {
	return func(cfg *Config) {
		cfg.UseLib = enabled
	}
}

// WithLibraryPaths replaces the library candidates. Empty paths are dropped;
// if none remain the option is ignored.
func WithLibraryPaths(paths ...string) Option {
	return func(cfg *Config) {
		kept := make([]string, 0, len(paths))
		for _, p := range paths {
			if p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			cfg.LibPaths = kept
		}
	}
}

// WithScalars sets the scalar-mode inputs.
func WithScalars(a, b, c float32) Option {
	return func(cfg *Config) {
		cfg.A, cfg.B, cfg.C = a, b, c
	}
}

// WithWideAccumulation enables float64 accumulation.
func WithWideAccumulation(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Wide = enabled
	}
}

// WithGenericKernels disables SIMD-gated kernels.
func WithGenericKernels(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Generic = enabled
	}
}

// ApplyOptions applies zero or more options to the default config. The
// returned LibPaths never shares storage with a caller's slice.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.LibPaths = slices.Clone(cfg.LibPaths)
	return cfg
}
