package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.randwalk/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Walk configures the walk every session watches. Each session
	// draws its own seed.
	Walk sim.WalkOptions
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.randwalk/runs.db",
		IdleTimeout: 30 * time.Minute,
		Walk:        sim.DefaultWalkOptions(),
	}
}

// SSHServer wraps a Wish SSH server for the walk viewer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "randwalk-ssh",
		})
	}
	if err := cfg.Walk.Validate(); err != nil {
		return nil, err
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".randwalk", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	opts := s.config.Walk
	opts.Seed = 0
	opts.Rand = nil
	runner := sim.NewRunner(s.logger.With("user", sshSession.User()), nil)

	model := NewSessionModel(runner, s.store, opts, pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// historyKey switches from the viewer to the run history.
var historyKey = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "history"),
)

// SessionModel manages one session: viewer -> history -> viewer.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store       *storage.Store
	viewer      ViewerModel
	history     HistoryModel
	showHistory bool
	width       int
	height      int
	quitting    bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(runner *sim.Runner, store *storage.Store, opts sim.WalkOptions, width, height int) SessionModel {
	return SessionModel{
		store:  store,
		viewer: NewWalkViewer(runner, store, opts, width, height),
		width:  width,
		height: height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.viewer.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		if m.showHistory {
			// The viewer keeps its own size for when we return.
			v, _ := m.viewer.Update(msg)
			m.viewer = v.(ViewerModel)
		}
	}

	if _, ok := msg.(BackMsg); ok {
		m.showHistory = false
		return m, nil
	}

	if m.showHistory {
		return m.updateHistory(msg)
	}
	return m.updateViewer(msg)
}

// updateViewer handles updates when the viewer is shown.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, historyKey) {
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.history.embedded = true
		m.showHistory = true
		return m, nil
	}

	v, cmd := m.viewer.Update(msg)
	m.viewer = v.(ViewerModel)
	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateHistory handles updates when the history is shown.
// Ticks keep flowing to the viewer so the animation loop stays alive.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		v, cmd := m.viewer.Update(msg)
		m.viewer = v.(ViewerModel)
		return m, cmd
	}

	h, cmd := m.history.Update(msg)
	m.history = h.(HistoryModel)
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// ShowingHistory reports whether the history table is shown.
func (m SessionModel) ShowingHistory() bool { return m.showHistory }

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}
	return m.viewer.View() + "  " + helpStyle.Render(historyKey.Help().Key+" "+historyKey.Help().Desc)
}
