package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
		{"back has no action", runeKey('b'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestControlsForwardKeys(t *testing.T) {
	var q core.CommandQueue
	c := NewControls(DefaultKeyMap())
	c.Attach(&q)

	c.Key(runeKey('a'))
	c.Key(runeKey('z'))
	if got := c.Key(runeKey('q')); got != core.ActionQuit {
		t.Errorf("Key(q) = %v, expected Quit", got)
	}

	cmds := q.Drain()
	if len(cmds) != 1 {
		t.Fatalf("expected only the left press to be queued, got %v", cmds)
	}
	if cmds[0] != (core.ActionPressed{Action: core.ActionLeft}) {
		t.Errorf("queued %v, expected left press", cmds[0])
	}
}

func TestControlsDetachDropsInput(t *testing.T) {
	var q core.CommandQueue
	c := NewControls(DefaultKeyMap())
	c.Attach(&q)
	if !c.Attached() {
		t.Fatal("Attached() = false after Attach")
	}

	c.Detach()
	c.Key(runeKey('r'))
	if q.Len() != 0 {
		t.Errorf("detached controls queued %d commands", q.Len())
	}
}

func TestControlsMouse(t *testing.T) {
	var q core.CommandQueue
	c := NewControls(DefaultKeyMap())
	c.Attach(&q)

	// 64 columns over 640 units: one column is 10 units wide.
	r := core.NewRaster(core.NewScreen(64, 20), core.NewBounds(640, 480))

	c.Mouse(tea.MouseMsg{X: 31, Y: 5, Action: tea.MouseActionMotion}, r)
	c.Mouse(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, r)
	c.Mouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, r)
	c.Mouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, r)

	cmds := q.Drain()
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %v", cmds)
	}

	move, ok := cmds[0].(core.PointerMoved)
	if !ok || math.Abs(move.X-315) > 1e-9 {
		t.Errorf("first command = %v, expected PointerMoved{315}", cmds[0])
	}
	click, ok := cmds[1].(core.PointerMoved)
	if !ok || math.Abs(click.X-105) > 1e-9 {
		t.Errorf("second command = %v, expected PointerMoved{105}", cmds[1])
	}
	if cmds[2] != (core.ActionPressed{Action: core.ActionLaunch, Pointer: true}) {
		t.Errorf("third command = %v, expected pointer launch", cmds[2])
	}
}
