package physics

import "github.com/go-gl/mathgl/mgl64"

// AirResistance returns the drag force in newtons, F = 1/2 C ρ S v^2, acting
// against the direction of travel. S comes from EffectiveFrontalArea.
func (v *Vehicle) AirResistance() mgl64.Vec3 {
	speed := v.velocity.Len()
	if speed == 0 {
		return mgl64.Vec3{}
	}
	dir := v.velocity.Mul(1 / speed)
	s := v.frontalArea(dir)
	c := v.cfg.AirResistanceCoefficient
	rho := v.cfg.AirDensity
	return dir.Mul(-0.5 * c * rho * s * speed * speed)
}

// EffectiveFrontalArea is the area presented to the airflow at the current
// attitude and velocity, or 0 when the vehicle is at rest.
//
// It is the sum of each body face's area weighted by the signed projection of
// the travel direction on that face's normal. This is a linear approximation
// and goes negative when the vehicle moves backwards along an axis.
func (v *Vehicle) EffectiveFrontalArea() float64 {
	speed := v.velocity.Len()
	if speed == 0 {
		return 0
	}
	return v.frontalArea(v.velocity.Mul(1 / speed))
}

func (v *Vehicle) frontalArea(dir mgl64.Vec3) float64 {
	x, y, z := v.BodyAxes()
	a := v.cfg.FrontalArea
	return a[0]*dir.Dot(x) + a[1]*dir.Dot(y) + a[2]*dir.Dot(z)
}
