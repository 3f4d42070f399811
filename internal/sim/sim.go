// Package sim runs walks end to end: it builds the playground or grid,
// creates walkers through the factory, walks them and collects the paths
// for renderers.
package sim

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"

	"github.com/vovakirdan/randwalk/internal/playground"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// WalkerPath is the completed path of one walker.
type WalkerPath struct {
	Index    int
	Variant  string
	Path     orb.LineString
	Rejected int
}

// WalkResult is the output of a continuous-model run.
type WalkResult struct {
	Boundary *playground.Boundary
	Walkers  []WalkerPath
	// Skipped holds the errors of walkers that could not walk.
	Skipped []error
	Seed    int64
}

// GridResult is the output of a raster-model run.
type GridResult struct {
	Grid     *raster.Grid
	Path     []raster.Coord
	Attempts int
	Seed     int64
}

// Runner runs simulations against a variant registry.
type Runner struct {
	logger   *log.Logger
	registry *walk.Registry
}

// NewRunner creates a runner. A nil logger discards output and a nil
// registry selects the built-in variants.
func NewRunner(logger *log.Logger, reg *walk.Registry) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if reg == nil {
		reg = walk.Default()
	}
	return &Runner{logger: logger, registry: reg}
}

// Variants returns the runner's known variants.
func (r *Runner) Variants() []walk.VariantInfo {
	return r.registry.List()
}

// RunWalk runs the continuous model. Configuration errors abort the run;
// a walker that cannot walk is logged, recorded in Skipped and left out.
func (r *Runner) RunWalk(opts WalkOptions) (*WalkResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	boundary, err := opts.Boundary.Build()
	if err != nil {
		return nil, err
	}

	rng, seed := source(opts.Seed, opts.Rand)
	walkers, err := r.walkers(rng, opts)
	if err != nil {
		return nil, err
	}

	result := &WalkResult{
		Boundary: boundary,
		Walkers:  make([]WalkerPath, 0, len(walkers)),
		Seed:     seed,
	}

	for i, w := range walkers {
		start := opts.Start
		if opts.StartMode == StartRandom {
			start, err = walk.RandomStart(rng, boundary, opts.Steps)
		}
		if err == nil {
			err = w.Walk(boundary, start)
		}
		if err != nil {
			r.logger.Warn("walker skipped", "walker", i+1, "variant", w.Variant(), "error", err)
			result.Skipped = append(result.Skipped, err)
			err = nil
			continue
		}

		r.logger.Debug("walker done",
			"walker", i+1,
			"variant", w.Variant(),
			"start", start,
			"end", w.Path()[w.Steps()-1],
			"rejected", w.Rejected(),
		)
		result.Walkers = append(result.Walkers, WalkerPath{
			Index:    i + 1,
			Variant:  w.Variant(),
			Path:     w.Path(),
			Rejected: w.Rejected(),
		})
	}

	r.logger.Info("walk finished",
		"walkers", len(result.Walkers),
		"skipped", len(result.Skipped),
		"steps", opts.Steps,
		"playground", opts.Boundary.Seed,
		"seed", seed,
	)
	return result, nil
}

func (r *Runner) walkers(rng walk.Rand, opts WalkOptions) ([]*walk.Walker, error) {
	if len(opts.Variants) == 0 {
		plain := walk.PlainVariant(opts.Pattern, opts.StepSize)
		return walk.FromVariants(rng, []walk.Variant{plain}, opts.Walkers, opts.Steps)
	}
	return walk.NewWalkers(rng, r.registry, opts.Walkers, opts.Steps, opts.Variants)
}

// RunGridWalk runs the raster model. A trapped walker returns the partially
// walked grid together with an error matching walk.ErrWalkerTrapped.
func (r *Runner) RunGridWalk(opts GridOptions) (*GridResult, error) {
	cells := opts.Cells
	if cells == 0 {
		cells = opts.Steps
	}
	grid, err := raster.New(cells, opts.Fill)
	if err != nil {
		return nil, err
	}

	rng, seed := source(opts.Seed, opts.Rand)
	w, err := raster.NewWalker(rng, opts.Steps, opts.MaxRetries)
	if err != nil {
		return nil, err
	}

	err = w.Walk(grid, opts.Start)
	result := &GridResult{
		Grid:     grid,
		Path:     w.Path(),
		Attempts: w.Attempts(),
		Seed:     seed,
	}

	var trapped *raster.TrappedError
	switch {
	case errors.As(err, &trapped):
		r.logger.Warn("grid walker trapped", "step", trapped.Step, "at", trapped.At.String(), "attempts", trapped.Attempts)
		return result, err
	case err != nil:
		return nil, err
	}

	r.logger.Info("grid walk finished",
		"side", grid.Side(),
		"steps", len(result.Path),
		"attempts", result.Attempts,
		"seed", seed,
	)
	return result, nil
}

// source returns the random source for a run and the seed it was built from.
func source(seed int64, override walk.Rand) (walk.Rand, int64) {
	if override != nil {
		return override, seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return walk.NewRand(seed), seed
}

var defaultRunner = NewRunner(nil, nil)

// RunWalk runs the continuous model with the built-in variants.
func RunWalk(opts WalkOptions) (*WalkResult, error) {
	return defaultRunner.RunWalk(opts)
}

// RunGridWalk runs the raster model.
func RunGridWalk(opts GridOptions) (*GridResult, error) {
	return defaultRunner.RunGridWalk(opts)
}

// ListVariants returns the built-in variants.
func ListVariants() []walk.VariantInfo {
	return defaultRunner.Variants()
}
