package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// runInfo tracks the run currently on screen so it is recorded once.
type runInfo struct {
	id      uuid.UUID
	started time.Time
	saved   bool
}

func newRun(now time.Time) runInfo {
	return runInfo{id: uuid.New(), started: now}
}

// Model is the Bubble Tea model for one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	controls *Controls
	keys     KeyMap
	help     help.Model
	state    core.GameState
	run      runInfo

	allowBack  bool
	quitting   bool
	backToMenu bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for run and config events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets the back key leave a paused or finished game.
func WithBackToMenu() ModelOption {
	return func(m *Model) {
		m.allowBack = true
	}
}

// NewModel creates a new Bubble Tea model for the given game. The last
// terminal row is kept for the key help.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		store:    store,
		logger:   log.New(io.Discard),
		config:   cfg,
		controls: NewControls(keys),
		keys:     keys,
		help:     h,
		run:      runInfo{id: uuid.New()},
	}
	for _, opt := range opts {
		opt(&m)
	}

	game.AttachInput(m.controls)
	return m
}

func playfieldRows(termH int) int {
	return max(termH-1, 1)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "run", m.run.id)

	if ce, ok := m.game.(interface{ ConfigError() error }); ok {
		if err := ce.ConfigError(); err != nil {
			m.logger.Warn("config rejected, using defaults", "game", m.game.ID(), "error", err)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.controls.Mouse(msg, m.raster())
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.allowBack && key.Matches(msg, m.keys.Back) && (m.state.GameOver || m.state.Paused) {
		m.leave(time.Now())
		m.backToMenu = true
		return m, nil
	}

	if m.controls.Key(msg) == core.ActionQuit {
		m.leave(time.Now())
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.run.started.IsZero() {
		m.run.started = now
	}

	prev := m.state
	result := m.game.Frame(now)
	m.state = result.State

	if prev.Phase != m.state.Phase {
		m.logger.Debug("phase changed", "from", prev.Phase, "to", m.state.Phase, "score", m.state.Score)
	}
	// The game restarted itself after a finished run.
	if prev.GameOver && !m.state.GameOver {
		m.run = newRun(now)
	}
	if m.state.GameOver {
		m.recordRun(now)
	}

	return m, tickCmd(m.config.TickRate)
}

// leave records an unfinished run and releases the game's input.
func (m *Model) leave(now time.Time) {
	m.recordRun(now)
	m.game.Dispose()
}

// recordRun saves the current run once. Runs without points are skipped.
func (m *Model) recordRun(now time.Time) {
	if m.run.saved {
		return
	}
	m.run.saved = true

	if m.state.Score <= 0 || m.store == nil {
		return
	}

	run := storage.Run{
		RunID:   m.run.id,
		GameID:  m.game.ID(),
		Score:   m.state.Score,
		Cleared: m.state.Cleared,
	}
	if !m.run.started.IsZero() {
		run.Duration = now.Sub(m.run.started)
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "run", run.RunID, "error", err)
		return
	}
	m.logger.Info("run recorded",
		"game", run.GameID,
		"run", run.RunID,
		"score", run.Score,
		"cleared", run.Cleared,
		"duration", run.Duration.Round(time.Millisecond),
	)
}

func (m Model) raster() *core.Raster {
	return core.NewRaster(m.screen, m.game.Bounds())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.raster())

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
