package physics

import "github.com/go-gl/mathgl/mgl64"

// EngineForce returns the combined motor thrust along the body up axis.
// Throttle is clamped into [0,1] here as well as at the input boundary.
func (v *Vehicle) EngineForce() mgl64.Vec3 {
	up := v.orientation.Rotate(AxisY)
	throttle := clamp(v.lastInput.Throttle, 0, 1)
	return up.Mul(throttle * v.cfg.MotorMaxForce)
}
