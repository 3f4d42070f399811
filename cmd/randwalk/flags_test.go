package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/config"
)

func TestWalkFlagsOverrideOnlyChanged(t *testing.T) {
	var f walkFlags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd)
	if err := cmd.Flags().Parse([]string{"--steps", "42", "--variant", "rook", "--variant", "pawn", "--playground", "2"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Walk.Walkers = 7
	f.apply(cmd, &cfg)

	if cfg.Walk.Steps != 42 {
		t.Errorf("Steps = %d, want 42", cfg.Walk.Steps)
	}
	if len(cfg.Walk.Variants) != 2 || cfg.Walk.Variants[0] != "rook" || cfg.Walk.Variants[1] != "pawn" {
		t.Errorf("Variants = %v, want [rook pawn]", cfg.Walk.Variants)
	}
	if cfg.Playground.Seed != 2 {
		t.Errorf("Playground.Seed = %d, want 2", cfg.Playground.Seed)
	}
	// Unset flags keep the config value.
	if cfg.Walk.Walkers != 7 {
		t.Errorf("Walkers = %d, want 7", cfg.Walk.Walkers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestGridFlagsOverride(t *testing.T) {
	var f gridFlags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd)
	if err := cmd.Flags().Parse([]string{"--fill", "0.3", "--start-row", "4"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	f.apply(cmd, &cfg)

	if cfg.Grid.Fill != 0.3 || cfg.Grid.StartRow != 4 {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.Grid.Steps != 10000 || cfg.Grid.MaxRetries != 1000 {
		t.Errorf("unset grid flags changed the config: %+v", cfg.Grid)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"run", "grid", "variants", "view", "serve", "history"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	if cmd, _, err := rootCmd.Find([]string{"view", "grid"}); err != nil || cmd != viewGridCmd {
		t.Error("view grid not registered")
	}
}
