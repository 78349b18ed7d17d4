package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body unit axes. Y is up, X is the vehicle front.
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Vehicle is the state of a single simulated quadrotor.
//
// A Vehicle is not safe for concurrent use. Hosts that simulate several
// vehicles in parallel must give each vehicle to exactly one goroutine at a
// time.
type Vehicle struct {
	velocity    mgl64.Vec3 // m/s, world frame
	orientation mgl64.Quat // body to world
	cfg         Config
	lastInput   Input
}

// State is a value snapshot of the mutable part of a Vehicle.
type State struct {
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat
	Input       Input
}

// New validates cfg and returns a vehicle at rest with identity orientation.
func New(cfg Config) (*Vehicle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Vehicle{
		velocity:    mgl64.Vec3{},
		orientation: mgl64.QuatIdent(),
		cfg:         cfg,
	}, nil
}

// NewDefault returns a vehicle built from DefaultConfig.
func NewDefault() *Vehicle {
	v, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return v
}

// UpdateInput overwrites the last received command and returns it. Values
// are stored as given.
func (v *Vehicle) UpdateInput(throttle, yaw, pitch, roll float64) Input {
	v.lastInput = Input{Throttle: throttle, Yaw: yaw, Pitch: pitch, Roll: roll}
	return v.lastInput
}

// SetInput is UpdateInput for an already assembled command.
func (v *Vehicle) SetInput(in Input) Input {
	return v.UpdateInput(in.Throttle, in.Yaw, in.Pitch, in.Roll)
}

// Velocity is the world frame velocity in m/s.
func (v *Vehicle) Velocity() mgl64.Vec3 { return v.velocity }

// Orientation is the unit body-to-world rotation.
func (v *Vehicle) Orientation() mgl64.Quat { return v.orientation }

// LastInput is the command most recently given to UpdateInput.
func (v *Vehicle) LastInput() Input { return v.lastInput }

func (v *Vehicle) Config() Config { return v.cfg }

// Speed is the magnitude of the velocity in m/s.
func (v *Vehicle) Speed() float64 { return v.velocity.Len() }

// BodyAxes returns the body X, Y and Z unit axes expressed in world space.
func (v *Vehicle) BodyAxes() (x, y, z mgl64.Vec3) {
	q := v.orientation
	return q.Rotate(AxisX), q.Rotate(AxisY), q.Rotate(AxisZ)
}

// Snapshot copies the velocity, orientation and last input. Later steps do
// not affect the returned value.
func (v *Vehicle) Snapshot() State {
	return State{Velocity: v.velocity, Orientation: v.orientation, Input: v.lastInput}
}
