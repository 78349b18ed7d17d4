package systems

import (
	"context"
	"time"
)

// System is one stage of a fixed-step simulation tick.
type System interface {
	Name() string
	Phase() ExecutionPhase
	// FixedUpdate advances the system by dt. tick counts from zero.
	FixedUpdate(ctx context.Context, tick uint64, dt time.Duration) error
}

// ExecutionPhase defines when a system runs within a tick.
type ExecutionPhase uint8

const (
	// PhasePreUpdate gathers inputs.
	PhasePreUpdate ExecutionPhase = iota
	// PhaseFixedUpdate integrates physics.
	PhaseFixedUpdate
	// PhaseLateUpdate observes the integrated state.
	PhaseLateUpdate
)

func (p ExecutionPhase) String() string {
	switch p {
	case PhasePreUpdate:
		return "pre_update"
	case PhaseFixedUpdate:
		return "fixed_update"
	case PhaseLateUpdate:
		return "late_update"
	default:
		return "unknown"
	}
}

// Metrics are the runtime counters a runner keeps per system.
type Metrics struct {
	ExecutionCount     uint64
	TotalExecutionTime time.Duration
	MaxExecutionTime   time.Duration
	ErrorCount         uint64
	LastError          error
}

// Observe records one execution.
func (m *Metrics) Observe(elapsed time.Duration, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	if elapsed > m.MaxExecutionTime {
		m.MaxExecutionTime = elapsed
	}
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}

// AverageExecutionTime is zero until the first execution.
func (m Metrics) AverageExecutionTime() time.Duration {
	if m.ExecutionCount == 0 {
		return 0
	}
	return m.TotalExecutionTime / time.Duration(m.ExecutionCount)
}
