package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/plot"
	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/storage"
)

var (
	runFlags     walkFlags
	flagGeoJSON  string
	flagPlot     bool
	flagRecord   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk inside a playground and plot the paths",
	Long: `Run random walkers inside a playground and plot their paths.

Moves that would leave the playground or enter a lake are rejected and the
walker stays in place for that step.

Variants:
  rook    - N/S/E/W, random length 0-20
  bishop  - diagonals, random length 0-20
  king    - all 8 directions, length 1
  queen   - all 8 directions, length 20
  pawn    - forward only (north or south, chosen per walker), length 1
Without --variant every walker is a plain walker using --pattern and
--step-size.

Examples:
  randwalk run
  randwalk run --walkers 4 --variant all --start random
  randwalk run --playground 1 --scale 0.5 --steps 5000
  randwalk run --geojson walk.geojson --plot=false`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runFlags.bind(runCmd)
	runCmd.Flags().StringVar(&flagGeoJSON, "geojson", "", "Write the playground and paths as GeoJSON to this file (- for stdout)")
	runCmd.Flags().BoolVar(&flagPlot, "plot", true, "Plot the paths")
	runCmd.Flags().BoolVar(&flagRecord, "record", true, "Record the run in the history")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	runFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger := newLogger()
	opts := cfg.WalkOptions()
	res, err := sim.NewRunner(logger, nil).RunWalk(opts)
	if err != nil {
		fail("%v", err)
	}

	if flagPlot {
		width, height := terminalSize()
		fmt.Println(plot.Walk(res, width, max(height-len(res.Walkers)-4, 10)).Render())
	}

	fmt.Printf("seed %d, %d walker(s), %d steps\n", res.Seed, len(res.Walkers), opts.Steps)
	for _, w := range res.Walkers {
		end := w.Path[len(w.Path)-1]
		fmt.Printf("  %s #%d %-7s end (%.2f, %.2f)  rejected %d\n",
			plot.WalkerColor(w.Index).Style().Render("•"), w.Index, w.Variant, end[0], end[1], w.Rejected)
	}
	for _, err := range res.Skipped {
		fmt.Printf("  skipped: %v\n", err)
	}

	if flagGeoJSON != "" {
		writeGeoJSON(res, flagGeoJSON)
	}

	if flagRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			if _, err := store.SaveRun(storage.WalkRun(opts, res)); err != nil {
				logger.Warn("could not record run", "error", err)
			}
		}
	}
}

func writeGeoJSON(res *sim.WalkResult, path string) {
	data, err := res.GeoJSON()
	if err != nil {
		fail("cannot encode GeoJSON: %v", err)
	}
	if path == "-" {
		os.Stdout.Write(data)
		fmt.Println()
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fail("cannot write %s: %v", path, err)
	}
	fmt.Printf("GeoJSON written to %s\n", path)
}
