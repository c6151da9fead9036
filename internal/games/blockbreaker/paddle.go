package blockbreaker

import "github.com/vovakirdan/blockbreaker/internal/core"

// Paddle is the player's bat. X is the center, Y is the top edge.
type Paddle struct {
	X, Y float64
	W, H float64

	target  float64
	pending bool // target was set since the last Update
	bounds  *core.Bounds
}

// NewPaddle creates a paddle centered at x whose top edge sits at y.
func NewPaddle(x, y, w, h float64, bounds *core.Bounds) *Paddle {
	return &Paddle{X: x, Y: y, W: w, H: h, target: x, bounds: bounds}
}

// SetTarget stores the latest pointer sample in playfield x.
func (p *Paddle) SetTarget(x float64) {
	p.target = x
	p.pending = true
}

// Target returns the pending target x.
func (p *Paddle) Target() float64 {
	return p.target
}

// Nudge shifts the target by dx. The first nudge of a frame starts from the
// current position; later ones in the same frame add up.
func (p *Paddle) Nudge(dx float64) {
	if !p.pending {
		p.target = p.X
	}
	p.target += dx
	p.pending = true
}

// Update moves the paddle straight to its target and clamps it inside the bounds.
// Tracking is immediate, so dt is unused.
func (p *Paddle) Update(_ float64) {
	p.pending = false
	p.X = p.target
	if p.bounds == nil {
		return
	}
	half := p.W / 2
	lo, hi := p.bounds.Left+half, p.bounds.Right-half
	if lo > hi {
		// Wider than the playfield: keep it centered.
		p.X = (p.bounds.Left + p.bounds.Right) / 2
		return
	}
	p.X = core.ClampF(p.X, lo, hi)
}

// Rect returns the paddle box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X - p.W/2, Y: p.Y, W: p.W, H: p.H}
}

// Draw renders the paddle.
func (p *Paddle) Draw(c core.Canvas) {
	r := p.Rect()
	c.FillRect(r.X, r.Y, r.W, r.H, core.ColorPaddle)
}
