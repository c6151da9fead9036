package blockbreaker

import (
	"math"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Side names the brick edge the ball was pushed out of.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Hit describes one destroyed brick.
type Hit struct {
	Col, Row int
	Brick    Brick // state before the hit
	Side     Side
}

// Resolver holds the collision response constants.
type Resolver struct {
	MaxBounceAngle float64 // degrees from vertical at the paddle tips
	Separation     float64 // push-out distance past a brick edge
	PaddleGap      float64 // clearance above the paddle after a bounce
}

// DefaultResolver returns the standard collision constants.
func DefaultResolver() Resolver {
	return Resolver{MaxBounceAngle: 75, Separation: 0.1, PaddleGap: 1}
}

// Paddle bounces a falling ball off the paddle. The outgoing angle is linear
// in the hit offset from the paddle center, the speed is preserved and the
// ball always leaves upward. Reports whether a bounce happened.
func (r Resolver) Paddle(b *Ball, p *Paddle) bool {
	if b == nil || p == nil {
		return false
	}
	half := p.W / 2
	withinX := b.X > p.X-half && b.X < p.X+half
	hitY := b.Y+b.R >= p.Y && b.Y < p.Y+p.H
	if !withinX || !hitY || b.VY <= 0 {
		return false
	}

	offset := (b.X - p.X) / half
	angle := core.DegToRad(offset * r.MaxBounceAngle)
	speed := b.Speed()
	b.VX = speed * math.Sin(angle)
	b.VY = -math.Abs(speed * math.Cos(angle))
	b.Y = p.Y - b.R - r.PaddleGap
	return true
}

// Bricks resolves at most one brick per call: the first live cell in
// row-major order that overlaps the ball. Other overlaps wait for the
// next frame. The ball is pushed out along the axis of least penetration
// (ties go to Y) and the matching velocity component is flipped.
func (r Resolver) Bricks(b *Ball, f *Field) (Hit, bool) {
	if b == nil || f == nil {
		return Hit{}, false
	}

	for cell := range f.Alive() {
		rect := f.CellRect(cell.Col, cell.Row)
		if !rect.IntersectsCircle(b.X, b.Y, b.R) {
			continue
		}

		side := r.pushOut(b, rect)
		f.Hit(cell.Col, cell.Row)
		return Hit{Col: cell.Col, Row: cell.Row, Brick: cell.Brick, Side: side}, true
	}
	return Hit{}, false
}

// pushOut moves the ball outside rect and reflects it.
func (r Resolver) pushOut(b *Ball, rect core.RectF) Side {
	overlapLeft := (b.X + b.R) - rect.X
	overlapRight := rect.Right() - (b.X - b.R)
	overlapTop := (b.Y + b.R) - rect.Y
	overlapBottom := rect.Bottom() - (b.Y - b.R)

	minX := math.Min(overlapLeft, overlapRight)
	minY := math.Min(overlapTop, overlapBottom)

	if minX < minY {
		b.VX = -b.VX
		if overlapLeft < overlapRight {
			b.X = rect.X - b.R - r.Separation
			return SideLeft
		}
		b.X = rect.Right() + b.R + r.Separation
		return SideRight
	}

	b.VY = -b.VY
	if overlapTop < overlapBottom {
		b.Y = rect.Y - b.R - r.Separation
		return SideTop
	}
	b.Y = rect.Bottom() + b.R + r.Separation
	return SideBottom
}
