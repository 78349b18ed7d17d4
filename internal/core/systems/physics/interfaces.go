package physics

import "time"

// Dynamics is the per-tick surface a simulation driver needs from a body.
// Drivers call SetInput then UpdatePhysics, in that order, each tick.
type Dynamics interface {
	SetInput(in Input) Input
	UpdatePhysics(dt time.Duration) error
	Snapshot() State
	Config() Config
}

var _ Dynamics = (*Vehicle)(nil)
