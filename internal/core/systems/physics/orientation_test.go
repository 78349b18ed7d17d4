package physics

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quatNear(t *testing.T, want, got mgl64.Quat, msgAndArgs ...any) {
	t.Helper()
	// q and -q are the same rotation.
	if want.Dot(got) < 0 {
		got = got.Scale(-1)
	}
	assert.True(t, want.ApproxEqualThreshold(got, 1e-9), append([]any{"want %v got %v", want, got}, msgAndArgs...)...)
}

func TestUpdateOrientationChannelAxes(t *testing.T) {
	rates := DefaultConfig().AngularVelocity
	tests := []struct {
		name  string
		input Input
		want  mgl64.Quat
	}{
		{"yaw turns about body Y", Input{Yaw: 1}, mgl64.QuatRotate(rates.Yaw*0.1, AxisY)},
		{"pitch turns about body Z", Input{Pitch: 1}, mgl64.QuatRotate(rates.Pitch*0.1, AxisZ)},
		{"roll turns about body X", Input{Roll: 1}, mgl64.QuatRotate(rates.Roll*0.1, AxisX)},
		{"negative yaw", Input{Yaw: -0.5}, mgl64.QuatRotate(-rates.Yaw*0.05, AxisY)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewDefault()
			v.SetInput(tt.input)
			v.UpdateOrientation(100 * time.Millisecond)
			quatNear(t, tt.want, v.Orientation())
		})
	}
}

func TestUpdateOrientationCompositionOrderWithinTick(t *testing.T) {
	v := NewDefault()
	v.UpdateInput(0, 1, 1, 1)
	v.UpdateOrientation(200 * time.Millisecond)

	rates := v.Config().AngularVelocity
	yaw := mgl64.QuatRotate(rates.Yaw*0.2, AxisY)
	pitch := mgl64.QuatRotate(rates.Pitch*0.2, AxisZ)
	roll := mgl64.QuatRotate(rates.Roll*0.2, AxisX)

	quatNear(t, roll.Mul(pitch.Mul(yaw)), v.Orientation())

	other := yaw.Mul(pitch.Mul(roll))
	assert.False(t, other.ApproxEqualThreshold(v.Orientation(), 1e-6))
}

func TestUpdateOrientationUsesCurrentBodyAxes(t *testing.T) {
	v := NewDefault()
	start := mgl64.QuatRotate(math.Pi/2, AxisZ)
	v.orientation = start

	v.UpdateInput(0, 0, 0, 1)
	v.UpdateOrientation(100 * time.Millisecond)

	// Body X now points along world Y, so roll turns about world Y.
	angle := v.Config().AngularVelocity.Roll * 0.1
	want := mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Mul(start)
	quatNear(t, want, v.Orientation())
}

func TestYawThenRollDiffersFromRollThenYaw(t *testing.T) {
	dt := 250 * time.Millisecond

	a := NewDefault()
	a.UpdateInput(0, 1, 0, 0)
	require.NoError(t, a.UpdatePhysics(dt))
	a.UpdateInput(0, 0, 0, 1)
	require.NoError(t, a.UpdatePhysics(dt))

	b := NewDefault()
	b.UpdateInput(0, 0, 0, 1)
	require.NoError(t, b.UpdatePhysics(dt))
	b.UpdateInput(0, 1, 0, 0)
	require.NoError(t, b.UpdatePhysics(dt))

	qa, qb := a.Orientation(), b.Orientation()
	assert.False(t, qa.ApproxEqualThreshold(qb, 1e-6), "a=%v b=%v", qa, qb)
	assert.False(t, qa.ApproxEqualThreshold(qb.Scale(-1), 1e-6))
}

func TestOrientationStaysUnit(t *testing.T) {
	v := NewDefault()
	inputs := []Input{
		{Throttle: 0.6, Yaw: 1, Pitch: 0.3, Roll: -0.7},
		{Throttle: 0.2, Yaw: -0.4, Pitch: -1, Roll: 1},
		{Throttle: 1, Yaw: 0.05, Pitch: 0.9, Roll: 0.2},
	}
	for i := 0; i < 5000; i++ {
		v.SetInput(inputs[i%len(inputs)])
		require.NoError(t, v.UpdatePhysics(7*time.Millisecond))
		require.InDelta(t, 1.0, v.Orientation().Len(), NormTolerance, "tick %d", i)
	}
}

func TestRenormalize(t *testing.T) {
	q := mgl64.Quat{W: 2, V: mgl64.Vec3{0, 0, 0}}
	assert.Equal(t, mgl64.QuatIdent(), renormalize(q))

	drifted := mgl64.QuatRotate(0.3, AxisY).Scale(1 + 1e-3)
	assert.InDelta(t, 1.0, renormalize(drifted).Len(), 1e-12)

	within := mgl64.QuatRotate(0.3, AxisY).Scale(1 + 1e-8)
	assert.Equal(t, within, renormalize(within))

	assert.Equal(t, mgl64.QuatIdent(), renormalize(mgl64.Quat{}))
}
