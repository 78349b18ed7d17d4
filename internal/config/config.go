// Package config loads simulation runs from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/rotorsim/internal/core/control"
	"github.com/zeusync/rotorsim/internal/core/systems/physics"
)

var ErrNoVehicles = errors.New("config: no vehicles")

// Config describes one headless run.
type Config struct {
	Run      Run       `yaml:"run"`
	LogLevel string    `yaml:"log_level"`
	Vehicles []Vehicle `yaml:"vehicles"`
}

type Run struct {
	DT      time.Duration `yaml:"dt"`
	Ticks   uint64        `yaml:"ticks"`
	Workers int           `yaml:"workers"`
	// Record keeps full trajectories in memory for fingerprinting.
	Record bool `yaml:"record"`
}

type Vehicle struct {
	Name     string            `yaml:"name"`
	Airframe Airframe          `yaml:"airframe"`
	Script   []control.Segment `yaml:"script"`
}

// Airframe overrides physics.DefaultConfig. Nil fields keep the default.
type Airframe struct {
	Mass                     *float64       `yaml:"mass"`
	MotorMaxSpeed            *float64       `yaml:"motor_max_speed"`
	MotorMaxForce            *float64       `yaml:"motor_max_force"`
	AirResistanceCoefficient *float64       `yaml:"air_resistance_coefficient"`
	AirDensity               *float64       `yaml:"air_density"`
	FrontalArea              []float64      `yaml:"frontal_area"`
	AngularVelocity          *physics.Rates `yaml:"angular_velocity"`
	Gravity                  []float64      `yaml:"gravity"`
}

// Default is a single vehicle hovering at zero input for five seconds.
func Default() *Config {
	return &Config{
		Run:      Run{DT: 10 * time.Millisecond, Ticks: 500, Workers: 0},
		LogLevel: "info",
		Vehicles: []Vehicle{{Name: "default"}},
	}
}

// Load decodes YAML from r on top of Default.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	c.Vehicles = nil
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the run parameters and every vehicle definition.
func (c *Config) Validate() error {
	if c.Run.DT <= 0 {
		return fmt.Errorf("run: dt must be positive, got %s", c.Run.DT)
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("run: workers must not be negative, got %d", c.Run.Workers)
	}
	if len(c.Vehicles) == 0 {
		return ErrNoVehicles
	}

	seen := make(map[string]struct{}, len(c.Vehicles))
	for i, v := range c.Vehicles {
		if v.Name == "" {
			return fmt.Errorf("vehicle %d: name is required", i)
		}
		if _, ok := seen[v.Name]; ok {
			return fmt.Errorf("vehicle %d: duplicate name %q", i, v.Name)
		}
		seen[v.Name] = struct{}{}

		af, err := v.Airframe.Config()
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", v.Name, err)
		}
		if err = af.Validate(); err != nil {
			return fmt.Errorf("vehicle %s: %w", v.Name, err)
		}
		if _, err = control.NewScript(v.Script); err != nil {
			return fmt.Errorf("vehicle %s: %w", v.Name, err)
		}
	}
	return nil
}

// Airframe returns the physics configuration of vehicle i.
func (c *Config) Airframe(i int) (physics.Config, error) {
	if i < 0 || i >= len(c.Vehicles) {
		return physics.Config{}, fmt.Errorf("vehicle index %d out of range", i)
	}
	return c.Vehicles[i].Airframe.Config()
}

// Config layers the overrides on physics.DefaultConfig.
func (a Airframe) Config() (physics.Config, error) {
	cfg := physics.DefaultConfig()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Mass, a.Mass)
	set(&cfg.MotorMaxSpeed, a.MotorMaxSpeed)
	set(&cfg.MotorMaxForce, a.MotorMaxForce)
	set(&cfg.AirResistanceCoefficient, a.AirResistanceCoefficient)
	set(&cfg.AirDensity, a.AirDensity)
	if a.AngularVelocity != nil {
		cfg.AngularVelocity = *a.AngularVelocity
	}

	var err error
	if cfg.FrontalArea, err = vec3("frontal_area", a.FrontalArea, cfg.FrontalArea); err != nil {
		return physics.Config{}, err
	}
	if cfg.Gravity, err = vec3("gravity", a.Gravity, cfg.Gravity); err != nil {
		return physics.Config{}, err
	}
	return cfg, nil
}

func vec3(field string, v []float64, def mgl64.Vec3) (mgl64.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}
