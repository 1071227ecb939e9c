package tui

import (
	"testing"

	"github.com/vovakirdan/math-city/internal/city"
)

func TestLayoutCellAt(t *testing.T) {
	l := newLayout(28, 19)

	tests := []struct {
		name     string
		col, row int
		x, y     int
		ok       bool
	}{
		{"first cell left column", 1, 2, 0, 0, true},
		{"first cell right column", 2, 2, 0, 0, true},
		{"second cell", 3, 2, 1, 0, true},
		{"last cell", 56, 20, 27, 18, true},
		{"title row", 1, 0, 0, 0, false},
		{"top border", 5, 1, 0, 0, false},
		{"left border", 0, 5, 0, 0, false},
		{"right border", 57, 5, 0, 0, false},
		{"bottom border", 5, 21, 0, 0, false},
		{"menu", 70, 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := l.cellAt(tt.col, tt.row)
			if ok != tt.ok {
				t.Fatalf("cellAt(%d, %d) ok = %v, want %v", tt.col, tt.row, ok, tt.ok)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("cellAt(%d, %d) = (%d, %d), want (%d, %d)", tt.col, tt.row, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestLayoutCellOriginRoundTrip(t *testing.T) {
	l := newLayout(10, 8)

	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			col, row := l.cellOrigin(x, y)
			gx, gy, ok := l.cellAt(col, row)
			if !ok || gx != x || gy != y {
				t.Fatalf("cell (%d, %d) -> (%d, %d) -> (%d, %d, %v)", x, y, col, row, gx, gy, ok)
			}
		}
	}
}

func TestLayoutKindAt(t *testing.T) {
	l := newLayout(28, 19)

	if len(l.entries) != len(city.Kinds()) {
		t.Fatalf("entries = %d, want %d", len(l.entries), len(city.Kinds()))
	}

	for i, k := range city.Kinds() {
		e := l.entries[i]
		got, ok := l.kindAt(e.rect.X, e.rect.Y)
		if !ok || got != k {
			t.Errorf("kindAt(entry %d) = %v, %v; want %v", i, got, ok, k)
		}
		// Last line of the block still belongs to the entry.
		got, ok = l.kindAt(e.rect.Right()-1, e.rect.Bottom()-1)
		if !ok || got != k {
			t.Errorf("kindAt(entry %d bottom right) = %v, %v; want %v", i, got, ok, k)
		}
	}

	if _, ok := l.kindAt(l.menuBox.X+2, l.menuBox.Y+1); ok {
		t.Error("menu heading should not select a kind")
	}
	if _, ok := l.kindAt(5, 5); ok {
		t.Error("board should not select a kind")
	}
}

func TestLayoutSize(t *testing.T) {
	l := newLayout(28, 19)

	if l.width != l.menuBox.Right() {
		t.Errorf("width = %d, want %d", l.width, l.menuBox.Right())
	}
	if l.height < l.boardBox.Bottom() || l.height < l.menuBox.Bottom() {
		t.Errorf("height %d does not fit board %d and menu %d", l.height, l.boardBox.Bottom(), l.menuBox.Bottom())
	}
}
