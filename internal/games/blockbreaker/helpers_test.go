package blockbreaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

var t0 = time.Unix(1_700_000_000, 0)

type drawCall struct {
	kind       string // "circle", "rect", "text"
	x, y, w, h float64
	r          float64
	color      core.Color
	text       string
	style      core.TextStyle
}

// recordCanvas is a core.Canvas that remembers every call.
type recordCanvas struct {
	calls []drawCall
}

func (c *recordCanvas) FillCircle(x, y, r float64, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", x: x, y: y, r: r, color: color})
}

func (c *recordCanvas) FillRect(x, y, w, h float64, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: color})
}

func (c *recordCanvas) DrawText(text string, x, y float64, style core.TextStyle) {
	c.calls = append(c.calls, drawCall{kind: "text", x: x, y: y, text: text, style: style, color: style.Color})
}

func (c *recordCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.kind == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

// newReadySession builds and initializes a session on the default config.
func newReadySession(t *testing.T, mutate func(*config.BlockBreakerConfig), l HitListener) *Session {
	t.Helper()
	cfg := config.DefaultBlockBreakerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if l == nil {
		l = NopHitListener{}
	}
	s, err := NewSession(cfg, 42, l)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.Equal(t, StateReady, s.State())
	return s
}

// launchWithKey launches the ball on the first frame at t0.
func launchWithKey(t *testing.T, s *Session) {
	t.Helper()
	s.Push(core.ActionPressed{Action: core.ActionLaunch})
	s.Frame(t0)
	require.Equal(t, StatePlaying, s.State())
}

// placeBall puts the launched ball at (x, y) with the given velocity.
func placeBall(s *Session, x, y, vx, vy float64) {
	b := s.Ball()
	b.X, b.Y, b.VX, b.VY = x, y, vx, vy
}

// fakeInput records Attach/Detach calls.
type fakeInput struct {
	sink     core.CommandSink
	attached int
	detached int
}

func (f *fakeInput) Attach(sink core.CommandSink) {
	f.sink = sink
	f.attached++
}

func (f *fakeInput) Detach() {
	f.sink = nil
	f.detached++
}
