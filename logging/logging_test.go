package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger() (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewLogger(&out, &errOut), &out, &errOut
}

func TestDefaultLoggerRoutesByLevel(t *testing.T) {
	l, out, errOut := newCaptureLogger()
	l.SetLevel(DebugLevel)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error(errors.New("boom"), "error message")

	assert.Contains(t, out.String(), "[DEBUG] debug message")
	assert.Contains(t, out.String(), "[INFO] info message")
	assert.NotContains(t, out.String(), "warn message")

	assert.Contains(t, errOut.String(), "[WARN] warn message")
	assert.Contains(t, errOut.String(), "[ERROR] error message: boom")
}

func TestDefaultLoggerLevelFilter(t *testing.T) {
	l, out, errOut := newCaptureLogger()
	l.SetLevel(WarnLevel)

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestDefaultLoggerFields(t *testing.T) {
	l, out, _ := newCaptureLogger()

	child := l.WithFields(Fields{"component": "reconstructor"})
	child.Info("selected seed", Fields{"seed": 2})

	assert.Contains(t, out.String(), "[INFO] selected seed map[component:reconstructor seed:2]")

	out.Reset()
	l.Info("parent")
	assert.NotContains(t, out.String(), "component", "child fields must not leak into the parent")
}

func TestDefaultLoggerWithContext(t *testing.T) {
	l, out, _ := newCaptureLogger()

	ctx := ContextWithFields(context.Background(), Fields{"pair": "HV"})
	ctx = ContextWithFields(ctx, Fields{"bins": 1024})
	l.WithContext(ctx).Info("reconstructing")

	assert.Contains(t, out.String(), "map[bins:1024 pair:HV]")

	out.Reset()
	assert.Same(t, l, l.WithContext(context.Background()))
}

func TestDefaultLoggerFatalExits(t *testing.T) {
	l, _, errOut := newCaptureLogger()
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(errors.New("bad"), "giving up")

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "[FATAL] giving up: bad")
}

func TestDefaultLoggerColors(t *testing.T) {
	l, _, errOut := newCaptureLogger()
	l.useColors = true

	l.Warn("careful")
	assert.Contains(t, errOut.String(), ColorYellow+"[WARN] careful"+ColorReset)
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)

	// must not panic
	Info("ignored")
	WithFields(Fields{"a": 1}).Warn("ignored")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}
