package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Controls is the terminal input source. The Bubble Tea model feeds it
// key and mouse messages; while attached it forwards them to the game's
// command queue.
type Controls struct {
	mu   sync.Mutex
	sink core.CommandSink
	keys KeyMap
}

// NewControls creates controls using the given bindings.
func NewControls(keys KeyMap) *Controls {
	return &Controls{keys: keys}
}

// Attach starts forwarding commands into sink.
func (c *Controls) Attach(sink core.CommandSink) {
	c.mu.Lock()
	c.sink = sink
	c.mu.Unlock()
}

// Detach stops forwarding. Later input is dropped.
func (c *Controls) Detach() {
	c.mu.Lock()
	c.sink = nil
	c.mu.Unlock()
}

// Attached reports whether a sink is connected.
func (c *Controls) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sink != nil
}

func (c *Controls) push(cmd core.Command) bool {
	c.mu.Lock()
	sink := c.sink
	c.mu.Unlock()
	if sink == nil {
		return false
	}
	sink.Push(cmd)
	return true
}

// Key maps a key press and forwards it. Quit is returned but never
// forwarded; the caller owns shutdown.
func (c *Controls) Key(msg tea.KeyMsg) core.Action {
	action := c.keys.Action(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	default:
		c.push(core.ActionPressed{Action: action})
	}
	return action
}

// Mouse forwards pointer motion as PointerMoved and a left click as a
// pointer launch. The raster converts the cell column to playfield x.
func (c *Controls) Mouse(msg tea.MouseMsg, r *core.Raster) {
	if r == nil {
		return
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		c.push(core.PointerMoved{X: r.ToWorldX(msg.X)})
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		c.push(core.PointerMoved{X: r.ToWorldX(msg.X)})
		c.push(core.ActionPressed{Action: core.ActionLaunch, Pointer: true})
	}
}
