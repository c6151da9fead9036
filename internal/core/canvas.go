package core

import (
	"math"
	"unicode/utf8"
)

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Color Color
	Align Align
}

// Canvas is the render target the game draws into.
// Coordinates are playfield units, not screen cells.
type Canvas interface {
	FillCircle(x, y, r float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	DrawText(text string, x, y float64, style TextStyle)
}

// Glyphs used when rasterizing shapes into cells.
const (
	GlyphFill = '█'
	GlyphBall = '●'
)

// Raster is a Canvas that scales playfield coordinates onto a Screen.
// Each axis is scaled independently, so the playfield always fills the screen.
type Raster struct {
	screen *Screen
	bounds Bounds
	sx, sy float64 // cells per playfield unit
}

// NewRaster creates a raster mapping bounds onto the whole screen.
func NewRaster(screen *Screen, bounds Bounds) *Raster {
	r := &Raster{screen: screen, bounds: bounds}
	if bounds.Width() > 0 {
		r.sx = float64(screen.Width()) / bounds.Width()
	}
	if bounds.Height() > 0 {
		r.sy = float64(screen.Height()) / bounds.Height()
	}
	return r
}

// Screen returns the underlying cell buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

// ToWorldX converts a screen column to the playfield x at the column's center.
func (r *Raster) ToWorldX(col int) float64 {
	if r.sx == 0 {
		return r.bounds.Left
	}
	return r.bounds.Left + (float64(col)+0.5)/r.sx
}

func (r *Raster) col(x float64) int {
	return int(math.Floor((x - r.bounds.Left) * r.sx))
}

func (r *Raster) row(y float64) int {
	return int(math.Floor((y - r.bounds.Top) * r.sy))
}

// span converts a world interval to a half-open cell interval.
// Rounding keeps adjacent rectangles from sharing a cell.
func span(start, length, origin, scale float64) (int, int) {
	a := int(math.Round((start - origin) * scale))
	b := int(math.Round((start + length - origin) * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// FillRect paints every cell covered by the rectangle.
func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := span(x, w, r.bounds.Left, r.sx)
	r0, r1 := span(y, h, r.bounds.Top, r.sy)
	r.screen.DrawRect(NewRect(c0, r0, c1-c0, r1-r0), GlyphFill, c)
}

// FillCircle paints cells whose centers fall inside the circle.
// A circle smaller than one cell is drawn as a single ball glyph.
func (r *Raster) FillCircle(x, y, radius float64, c Color) {
	if r.sx == 0 || r.sy == 0 {
		return
	}
	cx, cy := r.col(x), r.row(y)
	if radius*r.sx < 1 || radius*r.sy < 1 {
		r.screen.Set(cx, cy, GlyphBall, c)
		return
	}

	painted := false
	c0, c1 := r.col(x-radius), r.col(x+radius)
	r0, r1 := r.row(y-radius), r.row(y+radius)
	for row := r0; row <= r1; row++ {
		wy := r.bounds.Top + (float64(row)+0.5)/r.sy
		for col := c0; col <= c1; col++ {
			wx := r.bounds.Left + (float64(col)+0.5)/r.sx
			dx, dy := wx-x, wy-y
			if dx*dx+dy*dy <= radius*radius {
				r.screen.Set(col, row, GlyphFill, c)
				painted = true
			}
		}
	}
	if !painted {
		r.screen.Set(cx, cy, GlyphBall, c)
	}
}

// DrawText writes text with its anchor at (x, y).
func (r *Raster) DrawText(text string, x, y float64, style TextStyle) {
	col, row := r.col(x), r.row(y)
	if style.Align == AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	r.screen.DrawText(col, row, text, style.Color)
}
