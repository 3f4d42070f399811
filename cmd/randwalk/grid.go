package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/plot"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/storage"
)

var (
	gridRunFlags   gridFlags
	flagGridPlot   bool
	flagGridRecord bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Walk a toroidal obstacle grid",
	Long: `Walk a single walker on a square grid that wraps around at its edges.

A square obstacle covering --fill of the grid sits in the centre. The walker
moves one cell north, south, east or west per step and never enters the
obstacle or its start cell. A walker that cannot find a free neighbour within
--max-retries tries is reported as trapped.

Examples:
  randwalk grid
  randwalk grid --steps 2500 --fill 0.3
  randwalk grid --cells 400 --steps 1000 --start-row 5 --start-col 5`,
	Args: cobra.NoArgs,
	Run:  runGrid,
}

func init() {
	gridRunFlags.bind(gridCmd)
	gridCmd.Flags().BoolVar(&flagGridPlot, "plot", true, "Plot the grid")
	gridCmd.Flags().BoolVar(&flagGridRecord, "record", true, "Record the run in the history")
}

func runGrid(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	gridRunFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger := newLogger()
	opts := cfg.GridOptions()
	res, runErr := sim.NewRunner(logger, nil).RunGridWalk(opts)
	var trapped *raster.TrappedError
	if runErr != nil && !errors.As(runErr, &trapped) {
		fail("%v", runErr)
	}

	if flagGridPlot {
		width, height := terminalSize()
		fmt.Println(plot.Grid(res.Grid, width, max(height-4, 10)).Render())
	}

	g := res.Grid
	corner, block := g.Block()
	fmt.Printf("seed %d, grid %dx%d, obstacle %dx%d at (%d, %d)\n",
		res.Seed, g.Side(), g.Side(), block, block, corner, corner)
	fmt.Printf("  %d cells walked, %d distinct visited, %d tries\n",
		len(res.Path), g.Count(raster.Visited), res.Attempts)

	if flagGridRecord {
		if store := openStore(logger); store != nil {
			if _, err := store.SaveRun(storage.GridRun(opts, res, runErr)); err != nil {
				logger.Warn("could not record run", "error", err)
			}
			store.Close()
		}
	}

	if trapped != nil {
		fail("%v", runErr)
	}
}
