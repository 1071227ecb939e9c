package tui

import (
	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/core"
)

// Frame geometry in terminal cells. One grid cell is two columns wide so
// the board looks roughly square.
const (
	cellWidth   = 2
	titleRows   = 1
	menuWidth   = 34
	menuGap     = 1
	entryHeight = 4 // name, description, cost, blank
)

// menuEntry is the clickable block of one building kind in the side menu.
type menuEntry struct {
	kind city.Kind
	rect core.Rect
}

// layout places the board and the side menu in the frame and translates
// terminal positions back to grid cells and menu entries.
type layout struct {
	cols, rows int
	boardBox   core.Rect // border included
	board      core.Rect // interior, in terminal cells
	menuBox    core.Rect
	entries    []menuEntry
	width      int
	height     int
}

func newLayout(cols, rows int) layout {
	l := layout{cols: cols, rows: rows}
	l.boardBox = core.NewRect(0, titleRows, cols*cellWidth+2, rows+2)
	l.board = core.NewRect(1, titleRows+1, cols*cellWidth, rows)

	kinds := city.Kinds()
	menuH := 3 + len(kinds)*entryHeight
	l.menuBox = core.NewRect(l.boardBox.Right()+menuGap, titleRows, menuWidth, menuH)

	// Heading row inside the box, then one block per kind.
	top := l.menuBox.Y + 2
	for i, k := range kinds {
		r := core.NewRect(l.menuBox.X+1, top+i*entryHeight, menuWidth-2, entryHeight-1)
		l.entries = append(l.entries, menuEntry{kind: k, rect: r})
	}

	l.width = l.menuBox.Right()
	l.height = max(l.boardBox.Bottom(), l.menuBox.Bottom())
	return l
}

// cellAt returns the grid cell under terminal position (col, row).
func (l layout) cellAt(col, row int) (x, y int, ok bool) {
	if !l.board.Contains(col, row) {
		return 0, 0, false
	}
	return (col - l.board.X) / cellWidth, row - l.board.Y, true
}

// kindAt returns the menu entry under terminal position (col, row).
func (l layout) kindAt(col, row int) (city.Kind, bool) {
	for _, e := range l.entries {
		if e.rect.Contains(col, row) {
			return e.kind, true
		}
	}
	return city.KindNone, false
}

// cellOrigin returns the terminal position of the left column of cell (x, y).
func (l layout) cellOrigin(x, y int) (col, row int) {
	return l.board.X + x*cellWidth, l.board.Y + y
}
