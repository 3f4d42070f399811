package sim

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/vovakirdan/randwalk/internal/playground"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// StartMode selects where walkers start.
type StartMode string

const (
	// StartShared starts every walker at the same point.
	StartShared StartMode = "shared"
	// StartRandom draws an integer start around the origin per walker.
	StartRandom StartMode = "random"
)

// ParseStartMode accepts "shared"/"same" and "random"/"different".
func ParseStartMode(s string) (StartMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "same", "origin":
		return StartShared, nil
	case "random", "different":
		return StartRandom, nil
	}
	return "", fmt.Errorf("sim: unknown start mode %q: %w", s, walk.ErrInvalidConfig)
}

// BoundaryConfig selects a catalog playground.
type BoundaryConfig struct {
	HalfWidth  float64
	HalfHeight float64
	Scale      float64
	Seed       int
}

// DefaultBoundary returns the 500x500 playground without lakes.
func DefaultBoundary() BoundaryConfig {
	return BoundaryConfig{HalfWidth: 250, HalfHeight: 250, Scale: 1, Seed: 0}
}

// Build constructs the playground.
func (c BoundaryConfig) Build() (*playground.Boundary, error) {
	return playground.New(c.HalfWidth, c.HalfHeight, c.Scale, c.Seed)
}

// WalkOptions configures a continuous-model run.
type WalkOptions struct {
	// Variants lists allowed registered variants; "all" expands to every
	// one. When empty, every walker is a plain walker using Pattern and
	// StepSize.
	Variants []string
	Pattern  walk.Pattern
	StepSize float64

	Steps     int
	Walkers   int
	StartMode StartMode
	Start     orb.Point // used by StartShared
	Boundary  BoundaryConfig

	// Seed seeds the random source; 0 picks one from the clock.
	Seed int64
	// Rand overrides the seeded source when set.
	Rand walk.Rand
}

// DefaultWalkOptions mirrors the defaults of the command line.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Pattern:   walk.PatternNeumann,
		StepSize:  1,
		Steps:     10000,
		Walkers:   1,
		StartMode: StartShared,
		Boundary:  DefaultBoundary(),
	}
}

// Validate rejects options that cannot produce a run.
func (o WalkOptions) Validate() error {
	if o.Steps < 1 {
		return fmt.Errorf("sim: steps must be at least 1, got %d: %w", o.Steps, walk.ErrInvalidConfig)
	}
	if o.Walkers < 0 {
		return fmt.Errorf("sim: walker count must not be negative, got %d: %w", o.Walkers, walk.ErrInvalidConfig)
	}
	if _, err := ParseStartMode(string(o.StartMode)); err != nil {
		return err
	}
	if len(o.Variants) == 0 {
		if _, err := walk.ParsePattern(string(o.Pattern)); err != nil {
			return err
		}
		if o.StepSize <= 0 {
			return fmt.Errorf("sim: step size must be positive, got %g: %w", o.StepSize, walk.ErrInvalidConfig)
		}
	}
	return nil
}

// GridOptions configures a raster-model run.
type GridOptions struct {
	Steps int
	// Cells is the total cell hint of the grid; 0 uses Steps.
	Cells      int
	Fill       float64
	MaxRetries int
	Start      raster.Coord

	Seed int64
	Rand walk.Rand
}

// DefaultGridOptions mirrors the defaults of the command line.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Steps:      10000,
		Fill:       0.1,
		MaxRetries: raster.DefaultMaxRetries,
	}
}
