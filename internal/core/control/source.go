// Package control is the boundary between whatever produces pilot commands
// (a calibrated radio, a script, a test) and the flight physics. Everything
// crossing it is an already normalized physics.Input.
package control

import (
	"context"
	"fmt"

	"github.com/zeusync/rotorsim/internal/core/systems/physics"
)

// Source produces the command to apply on a given tick.
type Source interface {
	Next(ctx context.Context, tick uint64) (physics.Input, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, tick uint64) (physics.Input, error)

func (f SourceFunc) Next(ctx context.Context, tick uint64) (physics.Input, error) {
	return f(ctx, tick)
}

// Hold repeats the same command forever.
type Hold physics.Input

func (h Hold) Next(ctx context.Context, _ uint64) (physics.Input, error) {
	if err := ctx.Err(); err != nil {
		return physics.Input{}, err
	}
	return physics.Input(h), nil
}

// Validating rejects commands from the wrapped source that fall outside the
// normalized ranges.
func Validating(src Source) Source {
	return SourceFunc(func(ctx context.Context, tick uint64) (physics.Input, error) {
		in, err := src.Next(ctx, tick)
		if err != nil {
			return physics.Input{}, err
		}
		if err = in.Validate(); err != nil {
			return physics.Input{}, fmt.Errorf("tick %d: %w", tick, err)
		}
		return in, nil
	})
}
