package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/randwalk/internal/plot"
	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/storage"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// Viewer defaults
const (
	DefaultTickRate  = 30 // frames per second
	animationSeconds = 10 // target length of a full replay
	chromeLines      = 4  // title, status, help and a gap
	maxSpeed         = 1 << 16
)

// ViewerKeyMap defines the key bindings of the walk viewer.
type ViewerKeyMap struct {
	Pause   key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Skip    key.Binding
	New     key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Restart, k.New, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Faster, k.Slower},
		{k.Restart, k.Skip, k.New, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left", "h"),
			key.WithHelp("-", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Skip: key.NewBinding(
			key.WithKeys("e", "end"),
			key.WithHelp("e", "skip to end"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new walk"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ViewerModel animates a finished simulation one step at a time.
// The simulation runs up front; the animation only reveals its paths.
type ViewerModel struct {
	runner   *sim.Runner
	store    *storage.Store
	walkOpts *sim.WalkOptions
	gridOpts *sim.GridOptions

	walk *sim.WalkResult
	grid *sim.GridResult
	err  error

	frame    int
	total    int
	speed    int
	tickRate int
	paused   bool
	saved    bool
	quitting bool

	width  int
	height int
	keys   ViewerKeyMap
	help   help.Model
}

// NewWalkViewer creates a viewer for the continuous model.
// A nil runner uses the built-in variants; a nil store disables the history.
func NewWalkViewer(runner *sim.Runner, store *storage.Store, opts sim.WalkOptions, width, height int) ViewerModel {
	m := newViewer(runner, store, width, height)
	m.walkOpts = &opts
	m.run()
	return m
}

// NewGridViewer creates a viewer for the raster model.
func NewGridViewer(runner *sim.Runner, store *storage.Store, opts sim.GridOptions, width, height int) ViewerModel {
	m := newViewer(runner, store, width, height)
	m.gridOpts = &opts
	m.run()
	return m
}

func newViewer(runner *sim.Runner, store *storage.Store, width, height int) ViewerModel {
	if runner == nil {
		runner = sim.NewRunner(nil, nil)
	}
	h := help.New()
	h.ShowAll = false
	return ViewerModel{
		runner:   runner,
		store:    store,
		tickRate: DefaultTickRate,
		width:    width,
		height:   height,
		keys:     DefaultViewerKeyMap(),
		help:     h,
	}
}

// run executes the simulation and rewinds the animation.
func (m *ViewerModel) run() {
	m.walk, m.grid, m.err = nil, nil, nil
	m.total = 0

	if m.walkOpts != nil {
		m.walk, m.err = m.runner.RunWalk(*m.walkOpts)
		if m.walk != nil {
			for _, w := range m.walk.Walkers {
				m.total = max(m.total, len(w.Path))
			}
		}
	} else if m.gridOpts != nil {
		m.grid, m.err = m.runner.RunGridWalk(*m.gridOpts)
		if m.grid != nil {
			m.total = len(m.grid.Path)
		}
	}

	m.frame = 0
	m.saved = false
	m.speed = max(1, m.total/(animationSeconds*m.tickRate))
}

// rerun simulates again with a fresh seed.
func (m *ViewerModel) rerun() {
	if m.walkOpts != nil {
		m.walkOpts.Seed = 0
		m.walkOpts.Rand = nil
	}
	if m.gridOpts != nil {
		m.gridOpts.Seed = 0
		m.gridOpts.Rand = nil
	}
	m.run()
}

// Init starts the animation.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Faster):
		m.speed = min(m.speed*2, maxSpeed)
	case key.Matches(msg, m.keys.Slower):
		m.speed = max(m.speed/2, 1)
	case key.Matches(msg, m.keys.Restart):
		m.frame = 0
		m.paused = false
	case key.Matches(msg, m.keys.Skip):
		m.advance(m.total)
	case key.Matches(msg, m.keys.New):
		m.rerun()
		m.paused = false
	}
	return m, nil
}

// handleTick advances the animation.
func (m ViewerModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.advance(m.speed)
	}
	return m, tickCmd(m.tickRate)
}

// advance reveals n more steps and records the run once it is fully shown.
func (m *ViewerModel) advance(n int) {
	m.frame = min(m.frame+n, m.total)
	if m.frame < m.total || m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	var run storage.Run
	if m.walkOpts != nil && m.walk != nil {
		run = storage.WalkRun(*m.walkOpts, m.walk)
	} else if m.gridOpts != nil && m.grid != nil {
		run = storage.GridRun(*m.gridOpts, m.grid, m.err)
	} else {
		return
	}
	//nolint:errcheck // Best-effort save, the viewer continues regardless
	m.store.SaveRun(run)
}

// Frame returns the number of revealed steps and the total.
func (m ViewerModel) Frame() (frame, total int) {
	return m.frame, m.total
}

// Speed returns the steps revealed per tick.
func (m ViewerModel) Speed() int { return m.speed }

// Paused reports whether the animation is paused.
func (m ViewerModel) Paused() bool { return m.paused }

// Err returns the simulation error, if any.
func (m ViewerModel) Err() error { return m.err }

// IsQuitting returns true if the user asked to quit.
func (m ViewerModel) IsQuitting() bool { return m.quitting }

// View renders the current frame.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n")

	canvasW := max(m.width, 10)
	canvasH := max(m.height-chromeLines, 5)
	switch {
	case m.walk != nil:
		b.WriteString(plot.WalkPrefix(m.walk, canvasW, canvasH, m.frame).Render())
	case m.grid != nil:
		b.WriteString(plot.GridPrefix(m.grid.Grid, m.grid.Path, canvasW, canvasH, m.frame).Render())
	}
	b.WriteString("\n")

	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ViewerModel) title() string {
	switch {
	case m.walk != nil:
		names := make([]string, 0, len(m.walk.Walkers))
		for _, w := range m.walk.Walkers {
			names = append(names, plot.WalkerColor(w.Index).Style().Render(w.Variant))
		}
		return fmt.Sprintf("random walk · seed %d · %s", m.walk.Seed, strings.Join(names, " "))
	case m.grid != nil:
		return fmt.Sprintf("grid walk · seed %d · %dx%d", m.grid.Seed, m.grid.Grid.Side(), m.grid.Grid.Side())
	}
	return "random walk"
}

func (m ViewerModel) status() string {
	if m.walk == nil && m.grid == nil && m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}

	line := fmt.Sprintf("step %d/%d  speed %d/tick", m.frame, m.total, m.speed)
	if m.paused {
		line += "  [paused]"
	}
	if m.walk != nil && len(m.walk.Skipped) > 0 {
		line += fmt.Sprintf("  %d walker(s) skipped", len(m.walk.Skipped))
	}
	out := statusStyle.Render(line)
	if m.grid != nil && errors.Is(m.err, walk.ErrWalkerTrapped) && m.frame == m.total {
		out += "  " + errorStyle.Render(m.err.Error())
	}
	return out
}

// RunWalkViewer runs the continuous-model viewer full screen.
func RunWalkViewer(runner *sim.Runner, store *storage.Store, opts sim.WalkOptions, width, height int) error {
	return runProgram(NewWalkViewer(runner, store, opts, width, height))
}

// RunGridViewer runs the raster-model viewer full screen.
func RunGridViewer(runner *sim.Runner, store *storage.Store, opts sim.GridOptions, width, height int) error {
	return runProgram(NewGridViewer(runner, store, opts, width, height))
}

func runProgram(model ViewerModel) error {
	if model.walk == nil && model.grid == nil && model.err != nil {
		return model.err
	}
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
