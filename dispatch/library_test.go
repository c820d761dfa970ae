//go:build (linux || darwin) && (amd64 || arm64)

package dispatch

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/binary-playground/internal/logging"
)

// buildLibrary compiles testdata/<src> into a shared object, or skips the
// test when no C compiler is installed.
func buildLibrary(t *testing.T, src string) string {
	t.Helper()
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler available")
	}

	ext := ".so"
	if runtime.GOOS == "darwin" {
		ext = ".dylib"
	}
	out := filepath.Join(t.TempDir(), "libbinary_playground"+ext)
	cmd := exec.Command(cc, "-shared", "-fPIC", "-o", out, filepath.Join("testdata", src))
	if msg, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("building %s failed: %v\n%s", src, err, msg)
	}
	return out
}

func runWithLibrary(t *testing.T, path string, mode Mode, opts ...Option) (out, logs string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	logger := logging.NewTextLogger(&stderr, slog.LevelDebug)
	cfg := ApplyOptions(append([]Option{WithMode(mode), WithLibrary(true), WithLibraryPaths(path)}, opts...)...)

	require.NoError(t, Run(context.Background(), cfg, &stdout, logger))
	return stdout.String(), stderr.String()
}

func TestRunLibraryProvider(t *testing.T) {
	lib := buildLibrary(t, "binary_playground.c")

	out, logs := runWithLibrary(t, lib, ModeScalar, WithScalars(1.2, 3.4, 5.6))
	assert.Equal(t, "sum_scalars(1.200000, 3.400000, 5.600000) = 10.200001\n", out)
	assert.Contains(t, logs, "op=sum_scalars source="+lib)

	out, logs = runWithLibrary(t, lib, ModeVector)
	assert.Equal(t, "sum_vectors result: [1.600000, 2.700000, 3.800000]\n", out)
	assert.Contains(t, logs, "op=sum_vectors source="+lib)

	// Struct returns may not be bindable on every platform; either way the
	// result must match.
	out, logs = runWithLibrary(t, lib, ModeStruct)
	assert.Equal(t, "sum_structs: x=5, y=4.000000, z=4.000000\n", out)
	assert.Contains(t, logs, `msg="dynamic library closed" path=`+lib)
}

func TestRunLibraryPartialExports(t *testing.T) {
	lib := buildLibrary(t, "partial.c")

	out, logs := runWithLibrary(t, lib, ModeScalar)
	assert.Equal(t, "sum_scalars(1.000000, 2.000000, 3.000000) = 1006.000000\n", out)
	assert.Equal(t, 2, strings.Count(logs, "symbol unavailable"))
	assert.Contains(t, logs, "symbol=sum_vectors")
	assert.Contains(t, logs, "symbol=sum_structs")

	out, _ = runWithLibrary(t, lib, ModeVector)
	assert.Equal(t, "sum_vectors result: [1.600000, 2.700000, 3.800000]\n", out)
}

func TestRunLibraryOverridesWide(t *testing.T) {
	lib := buildLibrary(t, "partial.c")

	_, logs := runWithLibrary(t, lib, ModeVector, WithWideAccumulation(true))
	assert.Contains(t, logs, "op=sum_scalars source="+lib)
	assert.Contains(t, logs, "op=sum_vectors source=wide")
	assert.Contains(t, logs, "op=sum_structs source=builtin")
}
