package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogSymbolFallback(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.NewJSONHandler(&buf, nil))

	l.LogSymbolFallback(context.Background(), "./libx.so", "sum_structs", errors.New("not found"))

	out := buf.String()
	require.Contains(t, out, `"level":"WARN"`)
	require.Contains(t, out, `"symbol":"sum_structs"`)
	require.Contains(t, out, `"library":"./libx.so"`)
	require.Contains(t, out, `"reason":"not found"`)
}

func TestDebugHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogResolution(context.Background(), "sum_scalars", "builtin")
	l.LogLibraryOpen(context.Background(), "./libx.so", nil)
	require.Empty(t, buf.String())

	l = NewTextLogger(&buf, slog.LevelDebug)
	l.LogResolution(context.Background(), "sum_scalars", "builtin")
	require.Contains(t, buf.String(), "op=sum_scalars")
	require.Contains(t, buf.String(), "source=builtin")
}

func TestNoop(t *testing.T) {
	l := Noop()
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLogLibraryClose(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelDebug)

	l.LogLibraryClose(context.Background(), "./libx.so", nil)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), `msg="dynamic library closed" path=./libx.so`)

	buf.Reset()
	l.LogLibraryClose(context.Background(), "./libx.so", errors.New("busy"))
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "error=busy")
}

func TestLogProvider(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogProvider(context.Background(), "wide", 10, "SSE2")
	require.Contains(t, buf.String(), `"name":"wide"`)
	require.Contains(t, buf.String(), `"priority":10`)
	require.Contains(t, buf.String(), `"simd":"SSE2"`)
}
