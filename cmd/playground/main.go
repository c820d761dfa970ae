// Command playground sums scalars, vectors or records and can take the
// implementations from a shared library loaded at runtime.
//
// Usage:
//
//	playground [flags]
//
// Examples:
//
//	playground --mode scalar --a 1.2 --b 3.4 --c 5.6
//	playground --mode vector
//	playground --mode struct
//	playground --use-lib --mode scalar --a 1 --b 2 --c 3
//
// With --use-lib the command opens ./libbinary_playground.dylib or, failing
// that, ./libbinary_playground.so, and uses its sum_scalars, sum_vectors and
// sum_structs symbols. Symbols the library lacks fall back to the built-in
// implementations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cwbudde/binary-playground/dispatch"
	"github.com/cwbudde/binary-playground/internal/logging"
)

const progName = "playground"

var errInvalidNumber = errors.New("invalid number")

// float32Value is a flag.Value that rejects malformed numbers. Out-of-range
// input saturates to ±Inf.
type float32Value float32

func (f *float32Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return errInvalidNumber
	}
	*f = float32Value(v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := dispatch.DefaultConfig()

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", string(def.Mode), "`mode`: "+dispatch.ModeList())
	useLib := fs.Bool("use-lib", false, "load sum_* from ./libbinary_playground.{dylib,so}")
	libPath := fs.String("lib", "", "library `path` to load instead of the default candidates (implies -use-lib)")
	wide := fs.Bool("wide", false, "accumulate scalar and vector sums in float64")
	generic := fs.Bool("generic", false, "use only kernels that need no SIMD extension")
	verbose := fs.Bool("verbose", false, "log provider resolution")
	a, b, c := float32Value(def.A), float32Value(def.B), float32Value(def.C)
	fs.Var(&a, "a", "first `float` for scalar mode")
	fs.Var(&b, "b", "second `float` for scalar mode")
	fs.Var(&c, "c", "third `float` for scalar mode")

	// Usage is printed below so that -help goes to stdout and errors to stderr.
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
			return 0
		}
		printUsage(stderr, fs)
		return 1
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "error: unexpected argument %q\n", fs.Arg(0))
		printUsage(stderr, fs)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewTextLogger(stderr, level)

	cfg := dispatch.ApplyOptions(
		dispatch.WithMode(dispatch.Mode(*mode)),
		dispatch.WithLibrary(*useLib || *libPath != ""),
		dispatch.WithLibraryPaths(*libPath),
		dispatch.WithScalars(float32(a), float32(b), float32(c)),
		dispatch.WithWideAccumulation(*wide),
		dispatch.WithGenericKernels(*generic),
	)

	if err := dispatch.Run(context.Background(), cfg, stdout, logger); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, dispatch.ErrUnknownMode) {
			printUsage(stderr, fs)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, "Usage: %s [--mode %s] [--use-lib] [--a <float> --b <float> --c <float>]\n\n", progName, dispatch.ModeList())
	_, _ = fmt.Fprintf(w, "Flags:\n")
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
}
