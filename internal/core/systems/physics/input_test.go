package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		valid bool
	}{
		{"zero", Input{}, true},
		{"full deflection", Input{Throttle: 1, Yaw: -1, Pitch: 1, Roll: -1}, true},
		{"throttle below zero", Input{Throttle: -0.01}, false},
		{"throttle above one", Input{Throttle: 1.01}, false},
		{"yaw out of range", Input{Yaw: 1.5}, false},
		{"pitch out of range", Input{Pitch: -1.5}, false},
		{"roll out of range", Input{Roll: 2}, false},
		{"NaN throttle", Input{Throttle: math.NaN()}, false},
		{"infinite roll", Input{Roll: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInputOutOfRange), "got %v", err)
		})
	}
}

func TestInputClamp(t *testing.T) {
	got := Input{Throttle: 1.5, Yaw: -3, Pitch: 0.5, Roll: 9}.Clamp()
	assert.Equal(t, Input{Throttle: 1, Yaw: -1, Pitch: 0.5, Roll: 1}, got)
	assert.NoError(t, got.Validate())

	got = Input{Throttle: -2}.Clamp()
	assert.Equal(t, 0.0, got.Throttle)
}
