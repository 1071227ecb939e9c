// Package core provides the small value types shared by the city model and
// the terminal front end. It has no dependency on Bubble Tea so the game
// rules built on it stay testable without a terminal.
package core

// Rect is an axis-aligned block of cells. The right and bottom edges are
// exclusive.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a rectangle with the given origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square creates a size×size rectangle anchored at (x, y).
func Square(x, y, size int) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Right returns the x-coordinate one past the last column.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the last row.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	if other.Empty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Each calls fn for every cell of the rectangle in row-major order.
// Iteration stops early when fn returns false.
func (r Rect) Each(fn func(x, y int) bool) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !fn(x, y) {
				return
			}
		}
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
