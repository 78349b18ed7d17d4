package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rates holds the yaw/pitch/roll rates in rad/s reached at full stick deflection.
type Rates struct {
	Yaw   float64 `json:"yaw" yaml:"yaw"`
	Pitch float64 `json:"pitch" yaml:"pitch"`
	Roll  float64 `json:"roll" yaml:"roll"`
}

// Config holds the airframe constants of a quadrotor. It is fixed once a
// Vehicle has been constructed from it.
type Config struct {
	Mass                     float64    // kg
	MotorMaxSpeed            float64    // m/s
	MotorMaxForce            float64    // N
	AirResistanceCoefficient float64    // dimensionless
	AirDensity               float64    // kg/m^3
	FrontalArea              mgl64.Vec3 // m^2 along body X, Y, Z
	AngularVelocity          Rates
	Gravity                  mgl64.Vec3 // m/s^2, world frame
}

// DefaultConfig returns a small 0.5 kg quadrotor at sea level.
func DefaultConfig() Config {
	return Config{
		Mass:                     0.5,
		MotorMaxSpeed:            20,
		MotorMaxForce:            10,
		AirResistanceCoefficient: 1.0,
		AirDensity:               1.29,
		FrontalArea:              mgl64.Vec3{0.02, 0.04, 0.02},
		AngularVelocity:          Rates{Yaw: math.Pi, Pitch: math.Pi, Roll: math.Pi},
		Gravity:                  mgl64.Vec3{0, -9.8, 0},
	}
}

// Validate checks the construction-time invariants.
func (c Config) Validate() error {
	if !finite(c.Mass) || c.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidConfig, c.Mass)
	}
	if !finite(c.MotorMaxSpeed) || c.MotorMaxSpeed <= 0 {
		return fmt.Errorf("%w: motor max speed must be positive, got %v", ErrInvalidConfig, c.MotorMaxSpeed)
	}
	if !finite(c.MotorMaxForce) || c.MotorMaxForce <= 0 {
		return fmt.Errorf("%w: motor max force must be positive, got %v", ErrInvalidConfig, c.MotorMaxForce)
	}
	if !finite(c.AirResistanceCoefficient) || c.AirResistanceCoefficient < 0 {
		return fmt.Errorf("%w: air resistance coefficient must be non-negative, got %v", ErrInvalidConfig, c.AirResistanceCoefficient)
	}
	if !finite(c.AirDensity) || c.AirDensity < 0 {
		return fmt.Errorf("%w: air density must be non-negative, got %v", ErrInvalidConfig, c.AirDensity)
	}
	for i, a := range c.FrontalArea {
		if !finite(a) || a <= 0 {
			return fmt.Errorf("%w: frontal area %c must be positive, got %v", ErrInvalidConfig, "XYZ"[i], a)
		}
	}
	rates := [...]float64{c.AngularVelocity.Yaw, c.AngularVelocity.Pitch, c.AngularVelocity.Roll}
	for _, r := range rates {
		if !finite(r) {
			return fmt.Errorf("%w: angular velocity must be finite, got %+v", ErrInvalidConfig, c.AngularVelocity)
		}
	}
	for _, g := range c.Gravity {
		if !finite(g) {
			return fmt.Errorf("%w: gravity must be finite, got %v", ErrInvalidConfig, c.Gravity)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
