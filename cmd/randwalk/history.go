package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randwalk/internal/platform/tui"
	"github.com/vovakirdan/randwalk/internal/storage"
)

var (
	flagHistoryKind  string
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Show the runs recorded by run, grid and view.

In a terminal the history opens as an interactive table; use --plain for a
plain listing.

Examples:
  randwalk history
  randwalk history --plain --kind grid --limit 20
  randwalk history --stats
  randwalk history --clear --kind walk`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryKind, "kind", "", "Only runs of this kind: walk or grid")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to list")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain listing instead of the table")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Print totals per kind")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs (of --kind, if given)")
}

func runHistory(_ *cobra.Command, _ []string) {
	switch flagHistoryKind {
	case "", storage.KindWalk, storage.KindGrid:
	default:
		fail("unknown run kind %q (want %s or %s)", flagHistoryKind, storage.KindWalk, storage.KindGrid)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}

	switch {
	case flagHistoryClear:
		err = store.ClearRuns(flagHistoryKind)
		if err == nil {
			fmt.Println("Run history cleared.")
		}
	case flagHistoryStats:
		err = printStats(store)
	case flagHistoryPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printRuns(store)
	default:
		width, height := terminalSize()
		err = tui.RunHistory(store, width, height)
	}

	store.Close()
	if err != nil {
		fail("%v", err)
	}
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagHistoryKind, flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'randwalk run' to record the first one!")
		return nil
	}

	fmt.Printf("  %-8s  %-4s  %-20s  %7s  %7s  %-10s  %s\n", "ID", "Kind", "Variants", "Steps", "Walkers", "Result", "Date")
	fmt.Printf("  %-8s  %-4s  %-20s  %7s  %7s  %-10s  %s\n", "--", "----", "--------", "-----", "-------", "------", "----")
	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-4s  %-20s  %7d  %7d  %-10s  %s\n",
			id, r.Kind, r.Variants, r.Steps, r.Walkers, tui.RunResult(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, kind := range []string{storage.KindWalk, storage.KindGrid} {
		s, ok := stats[kind]
		if !ok {
			continue
		}
		fmt.Printf("%s: %d run(s), %d steps in total", kind, s.Runs, s.TotalSteps)
		if kind == storage.KindGrid {
			fmt.Printf(", %d trapped", s.Trapped)
		}
		fmt.Printf(", last %s\n", s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}
