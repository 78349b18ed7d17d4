package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/rotorsim/internal/core/control"
	"github.com/zeusync/rotorsim/internal/core/systems"
	"github.com/zeusync/rotorsim/internal/core/systems/physics"
	"github.com/zeusync/rotorsim/pkg/concurrent"
)

var _ systems.System = (*Fleet)(nil)

// Member is a vehicle registered in a Fleet.
type Member struct {
	ID     string
	Name   string
	Body   physics.Dynamics
	source control.Source
}

// Fleet steps a set of independent vehicles. During FixedUpdate every vehicle
// is owned by exactly one goroutine; vehicles never share state.
type Fleet struct {
	members []*Member
	byName  map[string]*Member
	workers int
}

// NewFleet returns an empty fleet stepping at most workers vehicles at once
// (workers <= 0 means no limit).
func NewFleet(workers int) *Fleet {
	return &Fleet{byName: make(map[string]*Member), workers: workers}
}

// Add registers body under name. Commands from src are range-checked before
// they reach the body.
func (f *Fleet) Add(name string, body physics.Dynamics, src control.Source) (*Member, error) {
	if _, ok := f.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateVehicle, name)
	}
	if src == nil {
		src = control.Hold{}
	}
	m := &Member{ID: uuid.NewString(), Name: name, Body: body, source: control.Validating(src)}
	f.members = append(f.members, m)
	f.byName[name] = m
	return m, nil
}

// Member looks a vehicle up by name.
func (f *Fleet) Member(name string) (*Member, error) {
	m, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVehicle, name)
	}
	return m, nil
}

// Members returns the registered vehicles in registration order.
func (f *Fleet) Members() []*Member {
	out := make([]*Member, len(f.members))
	copy(out, f.members)
	return out
}

func (f *Fleet) Len() int { return len(f.members) }

func (f *Fleet) Name() string                  { return "flight" }
func (f *Fleet) Phase() systems.ExecutionPhase { return systems.PhaseFixedUpdate }

// SetSource replaces the command source of a registered vehicle. Commands
// from src are range-checked like those given to Add.
func (f *Fleet) SetSource(name string, src control.Source) error {
	m, err := f.Member(name)
	if err != nil {
		return err
	}
	if src == nil {
		src = control.Hold{}
	}
	m.source = control.Validating(src)
	return nil
}

// FixedUpdate feeds each vehicle its command for tick and advances it by dt.
//
// A tick is all or nothing: every command is fetched and validated first,
// and no vehicle moves unless all of them succeeded.
func (f *Fleet) FixedUpdate(ctx context.Context, tick uint64, dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("%w: %s", physics.ErrNegativeTimestep, dt)
	}

	inputs := make([]physics.Input, len(f.members))
	err := concurrent.Each(ctx, f.members, f.workers, func(ctx context.Context, i int, m *Member) error {
		in, err := m.source.Next(ctx, tick)
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", m.Name, err)
		}
		inputs[i] = in
		return nil
	})
	if err != nil {
		return err
	}

	// Once committed, the step runs to completion even if ctx is cancelled.
	return concurrent.Each(context.WithoutCancel(ctx), f.members, f.workers, func(_ context.Context, i int, m *Member) error {
		m.Body.SetInput(inputs[i])
		if err := m.Body.UpdatePhysics(dt); err != nil {
			return fmt.Errorf("vehicle %s: %w", m.Name, err)
		}
		return nil
	})
}
