// Package config provides YAML-based simulation configuration with embedded
// defaults and validation.
package config

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"

	"github.com/vovakirdan/randwalk/internal/playground"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// Config contains every option of a simulation run.
type Config struct {
	Seed       int64            `yaml:"seed"` // 0 = random based on time
	Walk       WalkConfig       `yaml:"walk"`
	Playground PlaygroundConfig `yaml:"playground"`
	Grid       GridConfig       `yaml:"grid"`
}

// WalkConfig defines the continuous-model walkers.
type WalkConfig struct {
	Steps     int      `yaml:"steps"`
	Walkers   int      `yaml:"walkers"`
	Variants  []string `yaml:"variants"`   // empty = plain walker
	Pattern   string   `yaml:"pattern"`    // "neumann" or "moore"
	StepSize  float64  `yaml:"step_size"`  // plain walker only
	StartMode string   `yaml:"start_mode"` // "shared" or "random"
	StartX    float64  `yaml:"start_x"`
	StartY    float64  `yaml:"start_y"`
}

// PlaygroundConfig defines the catalog playground.
type PlaygroundConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Scale      float64 `yaml:"scale"`
	Seed       int     `yaml:"seed"` // 0 = no lake, 1 = moon lake, 2 = ring lake
}

// GridConfig defines the raster model.
type GridConfig struct {
	Steps      int     `yaml:"steps"`
	Cells      int     `yaml:"cells"` // 0 = one cell per step
	Fill       float64 `yaml:"fill"`
	MaxRetries int     `yaml:"max_retries"`
	StartRow   int     `yaml:"start_row"`
	StartCol   int     `yaml:"start_col"`
}

// Validate rejects every invalid option. Errors match walk.ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.WalkOptions().Validate(); err != nil {
		return err
	}
	for _, name := range c.Walk.Variants {
		if name != walk.AllVariants && !walk.Default().Exists(name) {
			return fmt.Errorf("config: unknown variant %q: %w", name, walk.ErrInvalidConfig)
		}
	}

	p := c.Playground
	if p.HalfWidth <= 0 || p.HalfHeight <= 0 || p.Scale <= 0 {
		return fmt.Errorf("config: playground extents and scale must be positive: %w", walk.ErrInvalidConfig)
	}
	if seeds := playground.Seeds(); !slices.Contains(seeds, p.Seed) {
		return fmt.Errorf("config: playground seed must be one of %v, got %d: %w", seeds, p.Seed, walk.ErrInvalidConfig)
	}

	g := c.Grid
	if g.Steps < 1 {
		return fmt.Errorf("config: grid steps must be at least 1, got %d: %w", g.Steps, walk.ErrInvalidConfig)
	}
	if g.Cells < 0 {
		return fmt.Errorf("config: grid cells must not be negative, got %d: %w", g.Cells, walk.ErrInvalidConfig)
	}
	if !(g.Fill > 0 && g.Fill < 1) {
		return fmt.Errorf("config: grid fill must be in (0, 1), got %g: %w", g.Fill, walk.ErrInvalidConfig)
	}
	if g.MaxRetries < 0 {
		return fmt.Errorf("config: grid max_retries must not be negative, got %d: %w", g.MaxRetries, walk.ErrInvalidConfig)
	}
	return nil
}

// WalkOptions converts the config to continuous-model options.
func (c Config) WalkOptions() sim.WalkOptions {
	return sim.WalkOptions{
		Variants:  c.Walk.Variants,
		Pattern:   walk.Pattern(c.Walk.Pattern),
		StepSize:  c.Walk.StepSize,
		Steps:     c.Walk.Steps,
		Walkers:   c.Walk.Walkers,
		StartMode: sim.StartMode(c.Walk.StartMode),
		Start:     orb.Point{c.Walk.StartX, c.Walk.StartY},
		Boundary: sim.BoundaryConfig{
			HalfWidth:  c.Playground.HalfWidth,
			HalfHeight: c.Playground.HalfHeight,
			Scale:      c.Playground.Scale,
			Seed:       c.Playground.Seed,
		},
		Seed: c.Seed,
	}
}

// GridOptions converts the config to raster-model options.
func (c Config) GridOptions() sim.GridOptions {
	return sim.GridOptions{
		Steps:      c.Grid.Steps,
		Cells:      c.Grid.Cells,
		Fill:       c.Grid.Fill,
		MaxRetries: c.Grid.MaxRetries,
		Start:      raster.Coord{Row: c.Grid.StartRow, Col: c.Grid.StartCol},
		Seed:       c.Seed,
	}
}
