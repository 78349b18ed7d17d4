package injector

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rotorsim/internal/config"
	"github.com/zeusync/rotorsim/internal/core/events/bus"
	"github.com/zeusync/rotorsim/internal/core/sim"
)

const run = `
run: {dt: 100ms, ticks: 1, record: true}
log_level: error
vehicles:
  - name: alpha
    script: [{ticks: 1, throttle: 1}]
  - name: bravo
`

func TestInitializeSimulation(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(run))
	require.NoError(t, err)

	s, err := InitializeSimulation(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Fleet.Len())
	assert.Equal(t, 100*time.Millisecond, s.Runner.Timestep())

	var stepped int
	_, err = s.Events.Subscribe(sim.EventVehicleStepped, func(bus.Event) error {
		stepped++
		return nil
	})
	require.NoError(t, err)

	rep, err := s.Runner.Run(context.Background(), cfg.Run.Ticks)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rep.Ticks)
	assert.Equal(t, 2, stepped)

	alpha, err := s.Recorder.Trajectory("alpha")
	require.NoError(t, err)
	require.Len(t, alpha, 1)
	assert.InDelta(t, 1.02, alpha[0].State.Velocity.Y(), 1e-9)

	bravo, err := s.Recorder.Trajectory("bravo")
	require.NoError(t, err)
	require.Len(t, bravo, 1)
	assert.InDelta(t, -0.98, bravo[0].State.Velocity.Y(), 1e-9)
}

func TestInitializeSimulationRejectsBadAirframe(t *testing.T) {
	cfg := config.Default()
	mass := -1.0
	cfg.Vehicles[0].Airframe.Mass = &mass

	_, err := InitializeSimulation(cfg)
	assert.Error(t, err)
}
