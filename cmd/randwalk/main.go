// randwalk simulates 2D random walks in the terminal.
//
// Usage:
//
//	randwalk run               - Walk inside a playground and plot the paths
//	randwalk grid              - Walk a toroidal obstacle grid
//	randwalk variants          - List the walker variants
//	randwalk view walk|grid    - Animate a walk step by step
//	randwalk serve             - Start SSH server exposing the viewer
//	randwalk history           - Show recorded runs
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible walks
//	--config <path>  - Use a custom walk.yaml
//	--db <path>      - Set database path (default: ~/.randwalk/runs.db)
//	--verbose        - Log every walker
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randwalk/internal/config"
	"github.com/vovakirdan/randwalk/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randwalk",
	Short: "randwalk - 2D random walks in your terminal",
	Long: `randwalk simulates random walkers moving inside a playground with
lakes, or on a wrapping grid around a square obstacle.

Available commands:
  run       - Walk inside a playground and plot the paths
  grid      - Walk a toroidal obstacle grid
  variants  - List the walker variants
  view      - Animate a walk step by step
  serve     - Start SSH server exposing the viewer
  history   - Show recorded runs

Examples:
  randwalk run --walkers 3 --variant rook --variant queen
  randwalk run --playground 2 --geojson walk.geojson
  randwalk grid --steps 2500 --fill 0.2
  randwalk view walk --variant all --walkers 5
  randwalk serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom walk config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.randwalk/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every walker")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger returns the CLI logger; --verbose enables debug output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "randwalk",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the walk config and applies the global seed flag.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	return cfg
}

// openStore opens the run history. Failures are logged and the command
// continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
