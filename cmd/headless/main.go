package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/rotorsim/internal/config"
	"github.com/zeusync/rotorsim/internal/core/control"
	"github.com/zeusync/rotorsim/internal/core/observability/log"
	"github.com/zeusync/rotorsim/internal/core/sim"
	"github.com/zeusync/rotorsim/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML run configuration")
		ticks      = flag.Uint64("ticks", 0, "override run.ticks")
		level      = flag.String("log-level", "", "override log_level")
		scriptPath = flag.String("script", "", "YAML script flown by every vehicle instead of its configured one")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *scriptPath, *ticks, *level); err != nil {
		fmt.Fprintln(os.Stderr, "headless:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, scriptPath string, ticks uint64, level string) error {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return err
		}
	}
	if ticks > 0 {
		cfg.Run.Ticks = ticks
	}
	if level != "" {
		cfg.LogLevel = level
	}

	s, err := injector.InitializeSimulation(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Logger.Sync() }()

	if scriptPath != "" {
		if err = overrideScripts(s.Fleet, scriptPath); err != nil {
			return err
		}
	}

	rep, err := s.Runner.Run(ctx, cfg.Run.Ticks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	for name, m := range rep.Metrics {
		s.Logger.Info("system metrics",
			log.String("system", name),
			log.Uint64("executions", m.ExecutionCount),
			log.Duration("avg", m.AverageExecutionTime()),
			log.Duration("max", m.MaxExecutionTime),
		)
	}
	for _, m := range s.Fleet.Members() {
		st := m.Body.Snapshot()
		fields := []log.Field{
			log.String("vehicle", m.Name),
			log.String("id", m.ID),
			log.Vec3("velocity", st.Velocity),
			log.Quat("orientation", st.Orientation),
			log.Float64("speed", st.Velocity.Len()),
		}
		if cfg.Run.Record {
			fp, err := s.Recorder.Fingerprint(m.Name)
			if err != nil {
				return err
			}
			fields = append(fields, log.String("fingerprint", fmt.Sprintf("%016x", fp)))
		}
		s.Logger.Info("vehicle final state", fields...)
	}
	return nil
}

// overrideScripts makes every vehicle fly the script at path. Each vehicle
// gets its own copy so playback positions are independent.
func overrideScripts(fleet *sim.Fleet, path string) error {
	for _, m := range fleet.Members() {
		script, err := control.LoadScriptFile(path)
		if err != nil {
			return fmt.Errorf("load script: %w", err)
		}
		if err = fleet.SetSource(m.Name, script); err != nil {
			return err
		}
	}
	return nil
}
