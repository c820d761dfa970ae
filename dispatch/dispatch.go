// Package dispatch runs one playground invocation: it assembles the
// providers, optionally loading a dynamic library, and prints the result of
// the selected mode.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cwbudde/binary-playground/arith"
	"github.com/cwbudde/binary-playground/internal/arch/generic"
	"github.com/cwbudde/binary-playground/internal/arch/wide"
	"github.com/cwbudde/binary-playground/internal/cpu"
	"github.com/cwbudde/binary-playground/internal/dynlib"
	"github.com/cwbudde/binary-playground/internal/logging"
	"github.com/cwbudde/binary-playground/internal/registry"
)

// ErrUnknownMode is returned for a mode other than scalar, vector or struct.
var ErrUnknownMode = errors.New("dispatch: unknown mode")

// Provider implements the three summation operations.
type Provider interface {
	SumScalars(a, b, c float32) float32
	SumVectors(v1, v2, v3 []float32) error
	SumStructs(s1, s2 arith.Record) arith.Record
}

// ExampleVectors returns fresh copies of the vector-mode inputs.
func ExampleVectors() (v1, v2, v3 []float32) {
	return []float32{1, 2, 3}, []float32{0.5, 0.5, 0.5}, []float32{0.1, 0.2, 0.3}
}

// ExampleRecords returns the struct-mode inputs.
func ExampleRecords() (s1, s2 arith.Record) {
	return arith.Record{X: 1, Y: 2.5, Z: 3.25}, arith.Record{X: 4, Y: 1.5, Z: 0.75}
}

// Run executes cfg and writes the result to out. A library opened for the
// run is closed before Run returns, on every path. An unsupported mode is
// reported after the library is opened, so a missing library takes precedence.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *logging.Logger) (err error) {
	if logger == nil {
		logger = logging.Noop()
	}

	reg := &registry.OpRegistry{}
	reg.Register(generic.Entry())
	if cfg.Wide {
		reg.Register(wide.Entry())
	}

	if cfg.UseLib {
		var lib *dynlib.Library
		lib, err = openLibrary(ctx, cfg, reg, logger)
		if err != nil {
			return err
		}
		defer func() {
			path := lib.Path()
			cerr := lib.Close()
			logger.LogLibraryClose(ctx, path, cerr)
			if cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	if !cfg.Mode.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownMode, string(cfg.Mode))
	}

	features := cpu.DetectFeatures()
	if cfg.Generic {
		features.ForceGeneric = true
	}
	logger.LogFeatures(ctx, features.Architecture, cpu.BestLevel(features).String(), features.ForceGeneric)
	for _, e := range reg.ListEntries() {
		logger.LogProvider(ctx, e.Name, e.Priority, e.SIMDLevel.String())
	}

	res, err := reg.Resolve(features)
	if err != nil {
		return err
	}
	for _, op := range registry.Ops {
		logger.LogResolution(ctx, op.String(), res.Source(op))
	}

	return Execute(cfg, res, out)
}

func openLibrary(ctx context.Context, cfg Config, reg *registry.OpRegistry, logger *logging.Logger) (*dynlib.Library, error) {
	paths := slices.Clone(cfg.LibPaths)
	if len(paths) == 0 {
		paths = dynlib.DefaultPaths()
	}

	lib, err := dynlib.Open(paths...)
	if err != nil {
		logger.LogLibraryOpen(ctx, "", err)
		return nil, err
	}
	logger.LogLibraryOpen(ctx, lib.Path(), nil)

	entry, missing := lib.Entry()
	for _, m := range missing {
		logger.LogSymbolFallback(ctx, lib.Path(), m.Op.String(), m.Err)
	}
	reg.Register(entry)
	return lib, nil
}

// Execute runs the mode in cfg against p and writes the result to out.
func Execute(cfg Config, p Provider, out io.Writer) error {
	switch cfg.Mode {
	case ModeScalar:
		res := p.SumScalars(cfg.A, cfg.B, cfg.C)
		return writef(out, "sum_scalars(%f, %f, %f) = %f\n",
			float64(cfg.A), float64(cfg.B), float64(cfg.C), float64(res))

	case ModeVector:
		v1, v2, v3 := ExampleVectors()
		if err := p.SumVectors(v1, v2, v3); err != nil {
			return fmt.Errorf("dispatch: sum_vectors: %w", err)
		}
		return writef(out, "sum_vectors result: [%s]\n", formatVector(v1))

	case ModeStruct:
		s1, s2 := ExampleRecords()
		res := p.SumStructs(s1, s2)
		return writef(out, "sum_structs: x=%d, y=%f, z=%f\n", res.X, float64(res.Y), res.Z)

	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, string(cfg.Mode))
	}
}

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%f", float64(x))
	}
	return strings.Join(parts, ", ")
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("dispatch: write result: %w", err)
	}
	return nil
}
