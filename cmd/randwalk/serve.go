package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/platform/tui"
)

var (
	serveWalkFlags  walkFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the randwalk SSH server",
	Long: `Start an SSH server that shows every connecting user an animated walk.

Each SSH connection gets its own session and its own seed. Press tab to
switch to the run history, which is shared by all users of the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.randwalk/host_key

Examples:
  randwalk serve                            # Listen on :23235
  randwalk serve --ssh :2222                # Listen on port 2222
  randwalk serve --variant all --walkers 4  # Walk every variant
  randwalk serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveWalkFlags.bind(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	walkCfg := loadConfig(cmd)
	serveWalkFlags.apply(cmd, &walkCfg)
	if err := walkCfg.Validate(); err != nil {
		fail("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Walk = walkCfg.WalkOptions()

	server, err := tui.NewSSHServer(cfg, newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting randwalk SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
