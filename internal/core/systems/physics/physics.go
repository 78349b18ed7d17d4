package physics

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// TotalForceExceptGravity is drag plus thrust, in newtons.
func (v *Vehicle) TotalForceExceptGravity() mgl64.Vec3 {
	return v.AirResistance().Add(v.EngineForce())
}

// Acceleration in m/s^2, gravity included.
func (v *Vehicle) Acceleration() mgl64.Vec3 {
	return v.TotalForceExceptGravity().Mul(1 / v.cfg.Mass).Add(v.cfg.Gravity)
}

// UpdateVelocity advances the velocity by one explicit Euler step.
func (v *Vehicle) UpdateVelocity(dt time.Duration) {
	secs := dt.Seconds()
	if secs == 0 {
		return
	}
	v.velocity = v.velocity.Add(v.Acceleration().Mul(secs))
}

// UpdatePhysics runs one tick: velocity first, then orientation, both over
// the same dt. The forces are evaluated on the state at the start of the tick.
func (v *Vehicle) UpdatePhysics(dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeTimestep, dt)
	}
	v.UpdateVelocity(dt)
	v.UpdateOrientation(dt)
	return nil
}
