package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var t0 = time.Unix(1_700_000_000, 0)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 64, ScreenH: 21, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestModel creates and initializes a model around a registered variant.
// HOME points at an empty directory so no user config is picked up.
func newTestModel(t *testing.T, gameID string, store *storage.Store, opts ...ModelOption) (Model, *blockbreaker.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(gameID)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", gameID, err)
	}
	game, ok := g.(*blockbreaker.Game)
	if !ok {
		t.Fatalf("registry.Create(%q) returned %T", gameID, g)
	}

	m := NewModel(game, store, testConfig(), opts...)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tickAt(t *testing.T, m Model, ms int) Model {
	t.Helper()
	return step(t, m, TickMsg(t0.Add(time.Duration(ms)*time.Millisecond)))
}

// scoreOneBrick launches the ball and steers it into the bottom-left brick.
// Frames run at 0, 16 and 32 ms.
func scoreOneBrick(t *testing.T, m Model, game *blockbreaker.Game) Model {
	t.Helper()
	m = tickAt(t, m, 0)
	m = step(t, m, spaceKey)
	m = tickAt(t, m, 16)
	if m.State().Phase != "playing" {
		t.Fatalf("after launch phase = %q, expected playing", m.State().Phase)
	}

	ball := game.Session().Ball()
	ball.X, ball.Y, ball.VX, ball.VY = 32, 210, 0, -300
	m = tickAt(t, m, 32)
	if m.State().Score != 50 {
		t.Fatalf("score after hit = %d, expected 50", m.State().Score)
	}
	return m
}

func TestModelStartsReady(t *testing.T) {
	m, _ := newTestModel(t, "blockbreaker", nil)
	m = tickAt(t, m, 0)

	if m.State().Phase != "ready" {
		t.Errorf("Phase = %q, expected ready", m.State().Phase)
	}
	if m.screen.Height() != 20 {
		t.Errorf("playfield rows = %d, expected terminal height minus the help row", m.screen.Height())
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, "blockbreaker_sudden", store)
	m = scoreOneBrick(t, m, game)
	firstRun := m.run.id

	ball := game.Session().Ball()
	ball.X, ball.Y, ball.VX, ball.VY = 320, 470, 0, 300
	m = tickAt(t, m, 48)
	if !m.State().GameOver || m.State().Cleared {
		t.Fatalf("state = %+v, expected game over without clear", m.State())
	}

	// Frozen frames must not record the run again.
	m = tickAt(t, m, 64)

	runs, err := store.TopScores("blockbreaker_sudden", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Cleared || runs[0].RunID != firstRun {
		t.Errorf("recorded %+v, expected run %s with 50 points", runs[0], firstRun)
	}
	if runs[0].Duration != 48*time.Millisecond {
		t.Errorf("Duration = %v, expected 48ms", runs[0].Duration)
	}

	// Restart begins a fresh run.
	m = step(t, m, runeKey('r'))
	m = tickAt(t, m, 80)
	if m.State().GameOver || m.State().Phase != "ready" {
		t.Fatalf("after restart state = %+v, expected ready", m.State())
	}
	if m.run.id == firstRun || m.run.saved {
		t.Error("restart should start a new unsaved run")
	}

	// Quitting a run with no points records nothing.
	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit the program")
	}
	runs, _ = store.TopScores("blockbreaker_sudden", 10)
	if len(runs) != 1 {
		t.Errorf("quitting an empty run recorded it, now %d runs", len(runs))
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelQuitMidRunRecords(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, "blockbreaker", store)
	m = scoreOneBrick(t, m, game)

	m = step(t, m, runeKey('q'))
	if m.controls.Attached() {
		t.Error("quitting should detach the controls")
	}

	best, err := store.HighScore("blockbreaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 50 {
		t.Errorf("HighScore = %d, expected the abandoned run's 50", best)
	}
}

func TestModelBackToMenu(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		m, _ := newTestModel(t, "blockbreaker", nil)
		m = tickAt(t, m, 0)
		m = step(t, m, spaceKey)
		m = tickAt(t, m, 16)
		m = step(t, m, runeKey('p'))
		m = tickAt(t, m, 32)

		m = step(t, m, runeKey('b'))
		if m.BackToMenu() {
			t.Error("b should do nothing without WithBackToMenu")
		}
	})

	t.Run("only when paused or finished", func(t *testing.T) {
		m, _ := newTestModel(t, "blockbreaker", nil, WithBackToMenu())
		m = tickAt(t, m, 0)
		m = step(t, m, spaceKey)
		m = tickAt(t, m, 16)

		m = step(t, m, runeKey('b'))
		if m.BackToMenu() {
			t.Fatal("b while playing should be ignored")
		}

		m = step(t, m, runeKey('p'))
		m = tickAt(t, m, 32)
		if !m.State().Paused {
			t.Fatalf("state = %+v, expected paused", m.State())
		}

		m = step(t, m, runeKey('b'))
		if !m.BackToMenu() || m.IsQuitting() {
			t.Error("b while paused should return to the menu without quitting")
		}
		if _, cmd := m.Update(TickMsg(t0.Add(time.Second))); cmd != nil {
			t.Error("ticks after leaving should stop the loop")
		}
	})
}

func TestModelViewAndResize(t *testing.T) {
	m, _ := newTestModel(t, "blockbreaker", nil)
	m = tickAt(t, m, 0)

	view := m.View()
	if n := strings.Count(view, "\n"); n != 20 {
		t.Errorf("view has %d line breaks, expected 20 playfield rows plus help", n)
	}
	if !strings.Contains(view, "SCORE") {
		t.Error("view should contain the score line")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the key help")
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("after resize screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m, game := newTestModel(t, "blockbreaker", nil)
	m = tickAt(t, m, 0)

	// Column 6 of 64 is x=65 on a 640-wide field; the paddle clamps to 80.
	m = step(t, m, tea.MouseMsg{X: 6, Y: 10, Action: tea.MouseActionMotion})
	m = tickAt(t, m, 16)

	if got := game.Session().Paddle().X; got != 80 {
		t.Errorf("paddle X = %v, expected 80", got)
	}
}

func TestSessionModelFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var sm tea.Model = NewSessionModel(nil, testConfig(), log.New(io.Discard))
	send := func(msg tea.Msg) {
		t.Helper()
		sm, _ = sm.Update(msg)
	}
	current := func() SessionModel {
		t.Helper()
		s, ok := sm.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", sm)
		}
		return s
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if current().screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if current().screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if current().screen != screenGame {
		t.Fatal("enter should start the game")
	}

	send(TickMsg(t0))
	send(spaceKey)
	send(TickMsg(t0.Add(16 * time.Millisecond)))
	send(runeKey('p'))
	send(TickMsg(t0.Add(32 * time.Millisecond)))
	send(runeKey('b'))
	if current().screen != screenMenu {
		t.Fatal("b while paused should return to the menu")
	}

	send(runeKey('q'))
	if !current().quitting || current().View() != "" {
		t.Error("q in the menu should quit")
	}
}
