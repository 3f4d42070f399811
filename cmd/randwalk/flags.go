package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/config"
)

// walkFlags are the continuous-model flags shared by run, view and serve.
// Unset flags keep the loaded config value.
type walkFlags struct {
	steps      int
	walkers    int
	variants   []string
	pattern    string
	stepSize   float64
	start      string
	playground int
	scale      float64
}

func (f *walkFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.steps, "steps", "n", 10000, "Points per walker")
	fs.IntVarP(&f.walkers, "walkers", "w", 1, "Number of walkers")
	fs.StringSliceVar(&f.variants, "variant", nil, "Allowed variants (repeatable, \"all\" for every variant; none = plain walker)")
	fs.StringVar(&f.pattern, "pattern", "neumann", "Plain walker pattern: neumann or moore")
	fs.Float64Var(&f.stepSize, "step-size", 1, "Plain walker step length")
	fs.StringVar(&f.start, "start", "shared", "Start mode: shared or random")
	fs.IntVar(&f.playground, "playground", 0, "Playground: 0 open field, 1 moon lake, 2 ring lake")
	fs.Float64Var(&f.scale, "scale", 1, "Playground scale")
}

func (f *walkFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("steps") {
		cfg.Walk.Steps = f.steps
	}
	if fs.Changed("walkers") {
		cfg.Walk.Walkers = f.walkers
	}
	if fs.Changed("variant") {
		cfg.Walk.Variants = f.variants
	}
	if fs.Changed("pattern") {
		cfg.Walk.Pattern = f.pattern
	}
	if fs.Changed("step-size") {
		cfg.Walk.StepSize = f.stepSize
	}
	if fs.Changed("start") {
		cfg.Walk.StartMode = f.start
	}
	if fs.Changed("playground") {
		cfg.Playground.Seed = f.playground
	}
	if fs.Changed("scale") {
		cfg.Playground.Scale = f.scale
	}
}

// gridFlags are the raster-model flags shared by grid and view grid.
type gridFlags struct {
	steps      int
	cells      int
	fill       float64
	maxRetries int
	startRow   int
	startCol   int
}

func (f *gridFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.steps, "steps", "n", 10000, "Grid walker steps")
	fs.IntVar(&f.cells, "cells", 0, "Total grid cells (0 = one per step)")
	fs.Float64Var(&f.fill, "fill", 0.1, "Obstacle share of the grid, in (0, 1)")
	fs.IntVar(&f.maxRetries, "max-retries", 1000, "Blocked moves tolerated per step")
	fs.IntVar(&f.startRow, "start-row", 0, "Start row")
	fs.IntVar(&f.startCol, "start-col", 0, "Start column")
}

func (f *gridFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("steps") {
		cfg.Grid.Steps = f.steps
	}
	if fs.Changed("cells") {
		cfg.Grid.Cells = f.cells
	}
	if fs.Changed("fill") {
		cfg.Grid.Fill = f.fill
	}
	if fs.Changed("max-retries") {
		cfg.Grid.MaxRetries = f.maxRetries
	}
	if fs.Changed("start-row") {
		cfg.Grid.StartRow = f.startRow
	}
	if fs.Changed("start-col") {
		cfg.Grid.StartCol = f.startCol
	}
}
