package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLaunch         // Space or left click - release the ball
	ActionPause          // P, Escape - pause/unpause game
	ActionLeft           // A, Left arrow - nudge paddle left
	ActionRight          // D, Right arrow - nudge paddle right
	ActionRestart        // R key - start over after clear or game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one input event queued for the next frame.
// The set of commands is closed: PointerMoved and ActionPressed.
type Command interface {
	command()
}

// PointerMoved carries the latest pointer position in playfield x units.
type PointerMoved struct {
	X float64
}

// ActionPressed carries a discrete action.
// Pointer is set when the action came from a click rather than a key.
type ActionPressed struct {
	Action  Action
	Pointer bool
}

func (PointerMoved) command()  {}
func (ActionPressed) command() {}

// CommandSink accepts commands from an input source.
type CommandSink interface {
	Push(cmd Command)
}

// InputSource produces commands. Attach starts delivery into sink and
// Detach stops it; the owner must Detach before discarding the source.
type InputSource interface {
	Attach(sink CommandSink)
	Detach()
}

// CommandQueue buffers commands between frames.
// Producers may live on other goroutines; the game loop is the only consumer.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
}

// Push appends a command for the next frame.
func (q *CommandQueue) Push(cmd Command) {
	if cmd == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain returns all pending commands in FIFO order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
