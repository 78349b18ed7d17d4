package sim

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zeusync/rotorsim/internal/core/observability/log"
	"github.com/zeusync/rotorsim/internal/core/systems"
)

// Report summarizes a Run.
type Report struct {
	Ticks   uint64
	Elapsed time.Duration // simulated
	Metrics map[string]systems.Metrics
}

// Runner drives systems with a fixed timestep. It does not pace itself
// against the wall clock.
type Runner struct {
	dt      time.Duration
	systems []systems.System
	metrics map[string]*systems.Metrics
	logger  log.Log
	tick    uint64
}

// NewRunner orders systems by phase, keeping registration order within a phase.
// System names must be unique.
func NewRunner(logger log.Log, dt time.Duration, ss ...systems.System) (*Runner, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimestep, dt)
	}
	if len(ss) == 0 {
		return nil, ErrNoSystems
	}
	ordered := make([]systems.System, len(ss))
	copy(ordered, ss)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Phase() < ordered[j].Phase() })

	metrics := make(map[string]*systems.Metrics, len(ordered))
	for _, s := range ordered {
		if _, ok := metrics[s.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSystem, s.Name())
		}
		metrics[s.Name()] = &systems.Metrics{}
	}
	return &Runner{dt: dt, systems: ordered, metrics: metrics, logger: logger}, nil
}

func (r *Runner) Timestep() time.Duration { return r.dt }

// Tick is the number of ticks completed so far.
func (r *Runner) Tick() uint64 { return r.tick }

// Step runs a single tick through every system.
func (r *Runner) Step(ctx context.Context) error {
	for _, s := range r.systems {
		start := time.Now()
		err := s.FixedUpdate(ctx, r.tick, r.dt)
		r.metrics[s.Name()].Observe(time.Since(start), err)
		if err != nil {
			return fmt.Errorf("tick %d: system %s: %w", r.tick, s.Name(), err)
		}
	}
	r.tick++
	return nil
}

// Run executes ticks steps, stopping early on error or cancellation.
func (r *Runner) Run(ctx context.Context, ticks uint64) (Report, error) {
	r.logger.Info("simulation started",
		log.Uint64("ticks", ticks),
		log.Duration("dt", r.dt),
		log.Int("systems", len(r.systems)),
	)
	first := r.tick
	for i := uint64(0); i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("simulation cancelled", log.Uint64("tick", r.tick))
			return r.report(first), err
		}
		if err := r.Step(ctx); err != nil {
			r.logger.Error("simulation failed", log.Uint64("tick", r.tick), log.Error(err))
			return r.report(first), err
		}
	}
	rep := r.report(first)
	r.logger.Info("simulation finished",
		log.Uint64("ticks", rep.Ticks),
		log.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

func (r *Runner) report(first uint64) Report {
	n := r.tick - first
	m := make(map[string]systems.Metrics, len(r.metrics))
	for name, v := range r.metrics {
		m[name] = *v
	}
	return Report{Ticks: n, Elapsed: time.Duration(n) * r.dt, Metrics: m}
}
