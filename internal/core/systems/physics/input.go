package physics

import "fmt"

// Input is one normalized pilot command: throttle in [0,1], yaw/pitch/roll in [-1,1].
type Input struct {
	Throttle float64 `json:"throttle" yaml:"throttle"`
	Yaw      float64 `json:"yaw" yaml:"yaw"`
	Pitch    float64 `json:"pitch" yaml:"pitch"`
	Roll     float64 `json:"roll" yaml:"roll"`
}

// Validate reports whether every axis lies inside its documented range.
// Callers are expected to validate at the input boundary, the physics step
// itself does not.
func (in Input) Validate() error {
	if !finite(in.Throttle) || in.Throttle < 0 || in.Throttle > 1 {
		return fmt.Errorf("%w: throttle %v not in [0,1]", ErrInputOutOfRange, in.Throttle)
	}
	axes := [...]struct {
		name  string
		value float64
	}{{"yaw", in.Yaw}, {"pitch", in.Pitch}, {"roll", in.Roll}}
	for _, a := range axes {
		if !finite(a.value) || a.value < -1 || a.value > 1 {
			return fmt.Errorf("%w: %s %v not in [-1,1]", ErrInputOutOfRange, a.name, a.value)
		}
	}
	return nil
}

// Clamp returns a copy with every axis forced into range.
func (in Input) Clamp() Input {
	return Input{
		Throttle: clamp(in.Throttle, 0, 1),
		Yaw:      clamp(in.Yaw, -1, 1),
		Pitch:    clamp(in.Pitch, -1, 1),
		Roll:     clamp(in.Roll, -1, 1),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
