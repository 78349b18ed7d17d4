package sim

import "errors"

var (
	ErrDuplicateVehicle = errors.New("vehicle already registered")
	ErrUnknownVehicle   = errors.New("unknown vehicle")
	ErrInvalidTimestep  = errors.New("timestep must be positive")
	ErrNoSystems        = errors.New("runner has no systems")
	ErrDuplicateSystem  = errors.New("system already registered")
)
