package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/walk"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the walker variants",
	Long:  `Shows every registered walker variant with its step-length policy.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := sim.ListVariants()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, v := range variants {
		maxNameLen = max(maxNameLen, len(v.Name))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "Name", "Title", "Step")
	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "----", "-----", "----")
	for _, v := range variants {
		fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, v.Name, v.Title, v.Step)
	}

	fmt.Println()
	fmt.Printf("Plain walkers: %s and %s, with a fixed --step-size.\n", walk.PatternNeumann, walk.PatternMoore)
	fmt.Println("Run 'randwalk run --variant <name>' to walk them.")
}
