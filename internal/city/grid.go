package city

import (
	"sort"

	"github.com/vovakirdan/math-city/internal/core"
)

// Cell addresses one grid square.
type Cell struct {
	X, Y int
}

// Occupied pairs a cell with the building covering it.
type Occupied struct {
	Cell
	Kind Kind
}

// Grid is a sparse occupancy map. Every cell of a placed footprint is stored
// individually, all mapped to the same kind, so lookups are cell-granular.
// Buildings are never removed.
type Grid struct {
	width  int
	height int
	cells  map[Cell]Kind
}

// NewGrid creates an empty grid of width×height cells.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  max(width, 0),
		height: max(height, 0),
		cells:  make(map[Cell]Kind),
	}
}

// NewGridFromPixels derives the grid size from a board measured in pixels
// and a square cell size. Partial cells at the edges are dropped.
func NewGridFromPixels(pxWidth, pxHeight, cellSize int) *Grid {
	if cellSize <= 0 {
		return NewGrid(0, 0)
	}
	return NewGrid(pxWidth/cellSize, pxHeight/cellSize)
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the grid area as a rectangle anchored at the origin.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// Footprint returns the block a building of kind k would cover with its
// top-left corner at (x, y).
func Footprint(k Kind, x, y int) core.Rect {
	return core.Square(x, y, k.Size())
}

// CanPlace reports whether a building of kind k fits at (x, y): the whole
// footprint inside the grid and every footprint cell free. No side effects.
func (g *Grid) CanPlace(k Kind, x, y int) bool {
	fp := Footprint(k, x, y)
	if !g.Bounds().ContainsRect(fp) {
		return false
	}

	free := true
	fp.Each(func(cx, cy int) bool {
		if _, taken := g.cells[Cell{cx, cy}]; taken {
			free = false
		}
		return free
	})
	return free
}

// Place commits a building of kind k at (x, y). It checks the placement
// again rather than trusting an earlier CanPlace, and leaves the grid
// untouched when the check fails.
func (g *Grid) Place(k Kind, x, y int) bool {
	if !g.CanPlace(k, x, y) {
		return false
	}
	Footprint(k, x, y).Each(func(cx, cy int) bool {
		g.cells[Cell{cx, cy}] = k
		return true
	})
	return true
}

// OccupantAt returns the building covering (x, y), if any.
func (g *Grid) OccupantAt(x, y int) (Kind, bool) {
	k, ok := g.cells[Cell{x, y}]
	return k, ok
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells returns every occupied cell in row-major order.
func (g *Grid) Cells() []Occupied {
	out := make([]Occupied, 0, len(g.cells))
	for c, k := range g.cells {
		out = append(out, Occupied{Cell: c, Kind: k})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
