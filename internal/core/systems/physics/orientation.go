package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// NormTolerance is how far the orientation norm may drift from 1 before it
// is renormalized.
const NormTolerance = 1e-6

// UpdateOrientation rotates the vehicle by the stick rates over dt.
//
// Yaw turns about the body Y axis, pitch about body Z and roll about body X.
// The axes are taken from the orientation at the start of the step and the
// increments are applied yaw first, then pitch, then roll, each one
// left-multiplied onto the result so far.
func (v *Vehicle) UpdateOrientation(dt time.Duration) {
	secs := dt.Seconds()
	if secs == 0 {
		return
	}
	rates := v.cfg.AngularVelocity
	yawRate := rates.Yaw * v.lastInput.Yaw
	pitchRate := rates.Pitch * v.lastInput.Pitch
	rollRate := rates.Roll * v.lastInput.Roll

	x, y, z := v.BodyAxes()

	yaw := mgl64.QuatRotate(yawRate*secs, y)
	pitch := mgl64.QuatRotate(pitchRate*secs, z)
	roll := mgl64.QuatRotate(rollRate*secs, x)

	o := yaw.Mul(v.orientation)
	o = pitch.Mul(o)
	o = roll.Mul(o)

	v.orientation = renormalize(o)
}

func renormalize(q mgl64.Quat) mgl64.Quat {
	n := q.Len()
	if n == 0 {
		return mgl64.QuatIdent()
	}
	if math.Abs(n-1) > NormTolerance {
		return mgl64.Quat{W: q.W / n, V: q.V.Mul(1 / n)}
	}
	return q
}
