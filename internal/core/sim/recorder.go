package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/rotorsim/internal/core/events/bus"
	"github.com/zeusync/rotorsim/internal/core/observability/log"
	"github.com/zeusync/rotorsim/internal/core/systems"
	"github.com/zeusync/rotorsim/internal/core/systems/physics"
)

// Event types published by the Recorder.
const (
	EventVehicleStepped   = "vehicle.stepped"
	EventVehicleOverspeed = "vehicle.overspeed"
)

// Epoch is simulated time zero. Event timestamps are Epoch plus elapsed
// simulated time, never wall clock.
var Epoch = time.Unix(0, 0).UTC()

var _ systems.System = (*Recorder)(nil)

// Sample is the state of one vehicle after a tick.
type Sample struct {
	Tick    uint64
	Elapsed time.Duration
	State   physics.State
}

// Recorder keeps the trajectory of every fleet vehicle and publishes a
// stepped event per vehicle per tick. It also flags vehicles flying faster
// than their configured motor max speed.
type Recorder struct {
	fleet     *Fleet
	events    bus.EventBus
	logger    log.Log
	keep      bool
	elapsed   time.Duration
	tracks    map[string][]Sample
	overspeed map[string]bool
}

// NewRecorder observes fleet. events may be nil. When keep is false only
// events are produced and no trajectory is stored.
func NewRecorder(fleet *Fleet, events bus.EventBus, logger log.Log, keep bool) *Recorder {
	return &Recorder{
		fleet:     fleet,
		events:    events,
		logger:    logger,
		keep:      keep,
		tracks:    make(map[string][]Sample),
		overspeed: make(map[string]bool),
	}
}

func (r *Recorder) Name() string                  { return "recorder" }
func (r *Recorder) Phase() systems.ExecutionPhase { return systems.PhaseLateUpdate }

func (r *Recorder) FixedUpdate(_ context.Context, tick uint64, dt time.Duration) error {
	r.elapsed += dt
	ts := Epoch.Add(r.elapsed)
	for _, m := range r.fleet.members {
		s := Sample{Tick: tick, Elapsed: r.elapsed, State: m.Body.Snapshot()}
		if r.keep {
			r.tracks[m.Name] = append(r.tracks[m.Name], s)
		}
		if err := r.publish(EventVehicleStepped, m.Name, ts, s); err != nil {
			return err
		}

		speed := s.State.Velocity.Len()
		limit := m.Body.Config().MotorMaxSpeed
		over := speed > limit
		if over && !r.overspeed[m.Name] {
			r.logger.Warn("vehicle above motor max speed",
				log.String("vehicle", m.Name),
				log.Uint64("tick", tick),
				log.Float64("speed", speed),
				log.Float64("limit", limit),
			)
			if err := r.publish(EventVehicleOverspeed, m.Name, ts, s); err != nil {
				return err
			}
		}
		r.overspeed[m.Name] = over
	}
	return nil
}

// Trajectory returns the recorded samples of a vehicle.
func (r *Recorder) Trajectory(name string) ([]Sample, error) {
	if _, err := r.fleet.Member(name); err != nil {
		return nil, err
	}
	return r.tracks[name], nil
}

// Fingerprint hashes the recorded trajectory of a vehicle.
func (r *Recorder) Fingerprint(name string) (uint64, error) {
	samples, err := r.Trajectory(name)
	if err != nil {
		return 0, err
	}
	return Fingerprint(samples), nil
}

func (r *Recorder) publish(typ, source string, ts time.Time, s Sample) error {
	if r.events == nil {
		return nil
	}
	if err := r.events.Publish(bus.NewEvent(typ, source, ts, s)); err != nil {
		return fmt.Errorf("publish %s for %s: %w", typ, source, err)
	}
	return nil
}
