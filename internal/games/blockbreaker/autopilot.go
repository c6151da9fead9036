package blockbreaker

import (
	"math"
	"sync"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Autopilot is an input source that keeps the paddle under the ball.
// It launches with the pointer, so the session seed picks each launch angle.
// It aims slightly off center, sweeping over time, so the ball does not
// settle into a vertical loop.
type Autopilot struct {
	mu   sync.Mutex
	sink core.CommandSink

	// Sweep is the aim offset as a fraction of the paddle half width.
	Sweep float64
}

// NewAutopilot creates a detached autopilot.
func NewAutopilot() *Autopilot {
	return &Autopilot{Sweep: 0.6}
}

// Attach starts delivering commands to sink.
func (a *Autopilot) Attach(sink core.CommandSink) {
	a.mu.Lock()
	a.sink = sink
	a.mu.Unlock()
}

// Detach stops delivery.
func (a *Autopilot) Detach() {
	a.mu.Lock()
	a.sink = nil
	a.mu.Unlock()
}

// Follow queues the commands for the next frame based on snap.
func (a *Autopilot) Follow(snap Snapshot) {
	a.mu.Lock()
	sink := a.sink
	a.mu.Unlock()
	if sink == nil {
		return
	}

	switch snap.State {
	case StateReady.String():
		sink.Push(core.PointerMoved{X: snap.PaddleX})
		sink.Push(core.ActionPressed{Action: core.ActionLaunch, Pointer: true})
	case StatePlaying.String():
		offset := a.Sweep * snap.PaddleW / 2 * math.Sin(float64(snap.Frame)*0.013)
		sink.Push(core.PointerMoved{X: snap.BallX + offset})
	}
}
