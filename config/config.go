package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds simulation tuning knobs
// Loaded once at startup; systems receive values through constructors
type Engine struct {
	// TickRate is fixed simulation ticks per second
	TickRate float64 `yaml:"tick_rate"`

	// MaxTicksPerFrame caps catch-up after a frame stall; excess
	// accumulated time is discarded, not replayed
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`

	// Gravity in units/sec², applied to dynamic bodies on Y
	GravityY float64 `yaml:"gravity_y"`

	// RebuildEpsilonSq is the squared pose-delta threshold that triggers
	// a static collision index rebuild
	RebuildEpsilonSq float64 `yaml:"rebuild_epsilon_sq"`

	// LogLevel for the engine logger (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// Default returns the shipping configuration
func Default() Engine {
	return Engine{
		TickRate:         60,
		MaxTicksPerFrame: 5,
		GravityY:         -9.81,
		RebuildEpsilonSq: 1e-6,
		LogLevel:         "info",
	}
}

// Step returns the fixed tick duration in seconds
func (e Engine) Step() float64 {
	return 1.0 / e.TickRate
}

// Validate rejects configurations the runner cannot honor
func (e Engine) Validate() error {
	if e.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %v", e.TickRate)
	}
	if e.MaxTicksPerFrame <= 0 {
		return fmt.Errorf("config: max_ticks_per_frame must be positive, got %d", e.MaxTicksPerFrame)
	}
	if e.RebuildEpsilonSq < 0 {
		return fmt.Errorf("config: rebuild_epsilon_sq must not be negative, got %v", e.RebuildEpsilonSq)
	}
	return nil
}

// LoadYAML reads engine config from a YAML stream, starting from defaults
// so omitted keys keep their shipping values
func LoadYAML(r io.Reader) (Engine, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Engine{}, fmt.Errorf("config: decode failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Engine{}, err
	}
	return cfg, nil
}

// LoadFile reads engine config from a YAML file
func LoadFile(path string) (Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return Engine{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}
