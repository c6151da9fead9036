package blockbreaker

import (
	"iter"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// DefaultBrickScore is awarded per destroyed brick.
const DefaultBrickScore = 50

// Brick is one grid cell. Color is cosmetic.
type Brick struct {
	Alive bool
	Color core.Color
	Score int
	HP    int
}

// Cell is a brick together with its grid address.
type Cell struct {
	Col, Row int
	Brick    Brick
}

// FieldLayout describes the grid layout. It cannot change after NewField.
type FieldLayout struct {
	Cols, Rows       int
	TileW, TileH     float64
	OffsetX, OffsetY float64
	Score            int
}

// Field is the brick grid, stored as grid[row][col].
type Field struct {
	layout FieldLayout
	grid   [][]Brick
}

// NewField builds a grid with every brick alive.
func NewField(layout FieldLayout) *Field {
	layout.Cols = max(layout.Cols, 0)
	layout.Rows = max(layout.Rows, 0)

	f := &Field{layout: layout, grid: make([][]Brick, layout.Rows)}
	for r := range layout.Rows {
		row := make([]Brick, layout.Cols)
		for c := range layout.Cols {
			row[c] = Brick{
				Alive: true,
				Color: brickColor(c, r, layout.Cols),
				Score: layout.Score,
				HP:    1,
			}
		}
		f.grid[r] = row
	}
	return f
}

// brickColor is a horizontal hue sweep that darkens 5% per row.
func brickColor(col, row, cols int) core.Color {
	hue := 360 * float64(col) / float64(max(cols, 1))
	light := max(0.60-0.05*float64(row), 0.10)
	return core.Color(colorful.Hsl(hue, 0.70, light).Clamped().Hex())
}

// Layout returns the grid layout.
func (f *Field) Layout() FieldLayout {
	return f.layout
}

// Alive yields the live bricks in row-major order. Each call starts a
// fresh traversal over the current state.
func (f *Field) Alive() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r, row := range f.grid {
			for c, b := range row {
				if !b.Alive {
					continue
				}
				if !yield(Cell{Col: c, Row: r, Brick: b}) {
					return
				}
			}
		}
	}
}

// CellRect maps grid indices to the cell's playfield rectangle.
func (f *Field) CellRect(col, row int) core.RectF {
	return core.RectF{
		X: f.layout.OffsetX + float64(col)*f.layout.TileW,
		Y: f.layout.OffsetY + float64(row)*f.layout.TileH,
		W: f.layout.TileW,
		H: f.layout.TileH,
	}
}

func (f *Field) inRange(col, row int) bool {
	return row >= 0 && row < len(f.grid) && col >= 0 && col < len(f.grid[row])
}

// IsAlive reports whether the cell holds a live brick.
func (f *Field) IsAlive(col, row int) bool {
	return f.inRange(col, row) && f.grid[row][col].Alive
}

// Hit destroys the brick at (col, row). It returns true only if the brick
// was alive; out-of-range and dead cells return false.
func (f *Field) Hit(col, row int) bool {
	if !f.IsAlive(col, row) {
		return false
	}
	b := &f.grid[row][col]
	b.Alive = false
	b.HP = 0
	return true
}

// Remaining counts the live bricks.
func (f *Field) Remaining() int {
	n := 0
	for range f.Alive() {
		n++
	}
	return n
}

// Draw renders live bricks with a 1px gap around each.
func (f *Field) Draw(c core.Canvas) {
	for cell := range f.Alive() {
		r := f.CellRect(cell.Col, cell.Row)
		c.FillRect(r.X+1, r.Y+1, r.W-2, r.H-2, cell.Brick.Color)
	}
}
