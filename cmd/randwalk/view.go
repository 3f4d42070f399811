package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/platform/tui"
	"github.com/vovakirdan/randwalk/internal/sim"
)

var (
	viewWalkFlags walkFlags
	viewGridFlags gridFlags
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate a walk step by step",
	Long: `Animate a walk in the terminal. The walk is computed first and then
revealed step by step; finished runs are recorded in the history.

Controls:
  Space/P  - Pause
  +/-      - Faster/slower
  E        - Skip to the end
  R        - Replay
  N        - New walk with a fresh seed
  Q/Ctrl+C - Quit`,
}

var viewWalkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Animate walkers inside a playground",
	Long: `Animate walkers inside a playground.

Examples:
  randwalk view walk
  randwalk view walk --variant all --walkers 5 --playground 2`,
	Args: cobra.NoArgs,
	Run:  runViewWalk,
}

var viewGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Animate a grid walker",
	Long: `Animate a grid walker around the obstacle.

Examples:
  randwalk view grid --steps 900 --fill 0.2`,
	Args: cobra.NoArgs,
	Run:  runViewGrid,
}

func init() {
	viewWalkFlags.bind(viewWalkCmd)
	viewGridFlags.bind(viewGridCmd)
	viewCmd.AddCommand(viewWalkCmd)
	viewCmd.AddCommand(viewGridCmd)
}

func runViewWalk(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	viewWalkFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger := newLogger()
	store := openStore(logger)

	width, height := terminalSize()
	// The viewer owns the screen; only errors reach the log.
	logger.SetLevel(max(logger.GetLevel(), log.ErrorLevel))
	err := tui.RunWalkViewer(sim.NewRunner(logger, nil), store, cfg.WalkOptions(), width, height)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fail("%v", err)
	}
}

func runViewGrid(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	viewGridFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger := newLogger()
	store := openStore(logger)

	width, height := terminalSize()
	logger.SetLevel(max(logger.GetLevel(), log.ErrorLevel))
	err := tui.RunGridViewer(sim.NewRunner(logger, nil), store, cfg.GridOptions(), width, height)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fail("%v", err)
	}
}
