package physics

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid vehicle configuration")
	ErrInputOutOfRange  = errors.New("control input out of range")
	ErrNegativeTimestep = errors.New("negative timestep")
)
