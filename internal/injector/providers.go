package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rotorsim/internal/config"
	"github.com/zeusync/rotorsim/internal/core/control"
	"github.com/zeusync/rotorsim/internal/core/events/bus"
	"github.com/zeusync/rotorsim/internal/core/observability/log"
	"github.com/zeusync/rotorsim/internal/core/sim"
	"github.com/zeusync/rotorsim/internal/core/systems/physics"
)

// Simulation is a fully wired headless run.
type Simulation struct {
	Config   *config.Config
	Logger   *log.Logger
	Events   bus.EventBus
	Fleet    *sim.Fleet
	Recorder *sim.Recorder
	Runner   *sim.Runner
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	ProvideFleet,
	ProvideRecorder,
	ProvideRunner,
	wire.Struct(new(Simulation), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(log.ParseLevel(cfg.LogLevel))
}

// ProvideFleet builds one vehicle per configured entry, each driven by its script.
func ProvideFleet(cfg *config.Config) (*sim.Fleet, error) {
	fleet := sim.NewFleet(cfg.Run.Workers)
	for i, v := range cfg.Vehicles {
		af, err := cfg.Airframe(i)
		if err != nil {
			return nil, err
		}
		body, err := physics.New(af)
		if err != nil {
			return nil, err
		}
		script, err := control.NewScript(v.Script)
		if err != nil {
			return nil, err
		}
		if _, err = fleet.Add(v.Name, body, script); err != nil {
			return nil, err
		}
	}
	return fleet, nil
}

func ProvideRecorder(cfg *config.Config, fleet *sim.Fleet, events bus.EventBus, logger log.Log) *sim.Recorder {
	return sim.NewRecorder(fleet, events, logger, cfg.Run.Record)
}

func ProvideRunner(cfg *config.Config, logger log.Log, fleet *sim.Fleet, rec *sim.Recorder) (*sim.Runner, error) {
	return sim.NewRunner(logger, cfg.Run.DT, fleet, rec)
}
