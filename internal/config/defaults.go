package config

import (
	_ "embed"

	"github.com/vovakirdan/randwalk/internal/raster"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Walk: WalkConfig{
			Steps:     10000,
			Walkers:   1,
			Pattern:   "neumann",
			StepSize:  1,
			StartMode: "shared",
		},
		Playground: PlaygroundConfig{
			HalfWidth:  250,
			HalfHeight: 250,
			Scale:      1,
		},
		Grid: GridConfig{
			Steps:      10000,
			Fill:       0.1,
			MaxRetries: raster.DefaultMaxRetries,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWalkYAML
}
