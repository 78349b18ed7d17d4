package log

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core)

	l.With(String("vehicle", "alpha")).Info("stepped",
		Uint64("tick", 7),
		Duration("dt", 10*time.Millisecond),
		Float64("speed", 1.5),
		Int("count", 2),
		Bool("overspeed", false),
		Vec3("velocity", mgl64.Vec3{1, 2, 3}),
		Quat("orientation", mgl64.QuatIdent()),
		Error(errors.New("boom")),
		Any("extra", map[string]int{"a": 1}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	ctx := entry.ContextMap()
	assert.Equal(t, "stepped", entry.Message)
	assert.Equal(t, "alpha", ctx["vehicle"])
	assert.Equal(t, uint64(7), ctx["tick"])
	assert.Equal(t, 10*time.Millisecond, ctx["dt"])
	assert.Equal(t, []any{1.0, 2.0, 3.0}, ctx["velocity"])
	assert.Equal(t, []any{1.0, 0.0, 0.0, 0.0}, ctx["orientation"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestSetLevel(t *testing.T) {
	l := NewNop()
	assert.Equal(t, LevelInfo, l.GetLevel())
	l.SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, l.GetLevel())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("loud"))
}

func TestProvideReturnsSingleton(t *testing.T) {
	a := Provide()
	b := Provide()
	require.NotNil(t, a)
	assert.Same(t, a, b)

	// Later loggers do not replace the process-wide one.
	c := New(LevelError)
	assert.NotSame(t, c, Provide())
}
