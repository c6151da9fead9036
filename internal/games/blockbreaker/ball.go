package blockbreaker

import "github.com/vovakirdan/blockbreaker/internal/core"

// Default ball parameters.
const (
	DefaultBallRadius = 8
	DefaultBallSpeed  = 300 // pixels per second
	DefaultStickGap   = 1
)

// Edge is the set of playfield walls the ball touched during one update.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Has reports whether e contains every wall in other.
func (e Edge) Has(other Edge) bool {
	return e&other == other && other != 0
}

// Ball is the single ball in play. Coordinates are the center in playfield pixels.
type Ball struct {
	X, Y      float64
	R         float64
	VX, VY    float64 // pixels per second
	Launched  bool
	BaseSpeed float64
	StickGap  float64

	bounds *core.Bounds
}

// NewBall creates a ball at (x, y) confined to bounds.
func NewBall(x, y, r float64, bounds *core.Bounds) *Ball {
	return &Ball{
		X:         x,
		Y:         y,
		R:         r,
		BaseSpeed: DefaultBallSpeed,
		StickGap:  DefaultStickGap,
		bounds:    bounds,
	}
}

// StickToPaddle parks the ball just above the paddle center and stops it.
func (b *Ball) StickToPaddle(p *Paddle) {
	b.X = p.X
	b.Y = p.Y - b.R - b.StickGap
	b.VX = 0
	b.VY = 0
	b.Launched = false
}

// Launch sets the velocity from an angle in degrees. Negative angles go up.
// Calling it again replaces the velocity.
func (b *Ball) Launch(angleDeg, speed float64) {
	v := core.VecFromAngle(angleDeg, speed)
	b.VX, b.VY = v.X, v.Y
	b.Launched = true
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return core.Vec2{X: b.VX, Y: b.VY}.Len()
}

// SetSpeed rescales the velocity to speed, keeping its direction.
func (b *Ball) SetSpeed(speed float64) {
	cur := b.Speed()
	if cur == 0 {
		return
	}
	k := speed / cur
	b.VX *= k
	b.VY *= k
}

// Update integrates one step and reflects off the walls.
// It returns the walls touched; nothing moves before launch.
func (b *Ball) Update(dt float64) Edge {
	if !b.Launched {
		return 0
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.bounds == nil {
		return 0
	}

	var edges Edge
	if b.X-b.R < b.bounds.Left {
		b.X = b.bounds.Left + b.R
		b.VX = -b.VX
		edges |= EdgeLeft
	} else if b.X+b.R > b.bounds.Right {
		b.X = b.bounds.Right - b.R
		b.VX = -b.VX
		edges |= EdgeRight
	}

	if b.Y-b.R < b.bounds.Top {
		b.Y = b.bounds.Top + b.R
		b.VY = -b.VY
		edges |= EdgeTop
	} else if b.Y+b.R > b.bounds.Bottom {
		b.Y = b.bounds.Bottom - b.R
		b.VY = -b.VY
		edges |= EdgeBottom
	}
	return edges
}

// Draw renders the ball, grey while it waits on the paddle.
func (b *Ball) Draw(c core.Canvas) {
	color := core.ColorBallIdle
	if b.Launched {
		color = core.ColorBallLive
	}
	c.FillCircle(b.X, b.Y, b.R, color)
}
