package tui

import (
	"fmt"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/core"
	"github.com/vovakirdan/math-city/internal/engine"
)

const (
	glyphGrass    = '·'
	glyphBuilding = '█'
	glyphPreview  = '▒'
)

func kindColor(k city.Kind) core.Color {
	switch k {
	case city.KindHouse:
		return core.ColorHouse
	case city.KindShop:
		return core.ColorShop
	case city.KindFactory:
		return core.ColorFactory
	case city.KindPark:
		return core.ColorPark
	default:
		return core.ColorDefault
	}
}

// drawFrame renders the title row, the board and the side menu into s.
// (cx, cy) is the board cursor.
func drawFrame(s *core.Screen, l layout, c *engine.Controller, cx, cy int) {
	s.Clear()

	s.DrawText(0, 0, "MATH CITY", core.ColorCursor)
	status := "select a building (1-4)"
	if k := c.Selected(); k != city.KindNone {
		status = "building: " + k.Info().Title
	}
	s.DrawText(12, 0, fmt.Sprintf("%s  cursor %d,%d", status, cx, cy), core.ColorMuted)

	drawBoard(s, l, c, cx, cy)
	drawMenu(s, l, c.Selected())
}

func drawBoard(s *core.Screen, l layout, c *engine.Controller, cx, cy int) {
	s.DrawBox(l.boardBox, core.ColorGridLine)

	g := c.Grid()
	g.Bounds().Each(func(x, y int) bool {
		col, row := l.cellOrigin(x, y)
		if k, ok := g.OccupantAt(x, y); ok {
			s.Set(col, row, glyphBuilding, kindColor(k))
			s.Set(col+1, row, glyphBuilding, kindColor(k))
		} else {
			s.Set(col, row, glyphGrass, core.ColorGrass)
			s.Set(col+1, row, ' ', core.ColorGrass)
		}
		return true
	})

	switch c.Phase() {
	case engine.PhaseAwaitingAnswer:
		if t, ok := c.Pending(); ok {
			drawFootprint(s, l, g, city.Footprint(t.Kind, t.X, t.Y), core.ColorCursor)
		}
	case engine.PhaseArmed:
		color := core.ColorPreviewBad
		if c.CanPlaceAt(cx, cy) {
			color = core.ColorPreviewOK
		}
		drawFootprint(s, l, g, city.Footprint(c.Selected(), cx, cy), color)
	default:
		col, row := l.cellOrigin(cx, cy)
		s.Set(col, row, '[', core.ColorCursor)
		s.Set(col+1, row, ']', core.ColorCursor)
	}
}

// drawFootprint shades the part of fp that lies on the board.
func drawFootprint(s *core.Screen, l layout, g *city.Grid, fp core.Rect, color core.Color) {
	bounds := g.Bounds()
	fp.Each(func(x, y int) bool {
		if !bounds.Contains(x, y) {
			return true
		}
		col, row := l.cellOrigin(x, y)
		s.Set(col, row, glyphPreview, color)
		s.Set(col+1, row, glyphPreview, color)
		return true
	})
}

func drawMenu(s *core.Screen, l layout, selected city.Kind) {
	s.DrawBox(l.menuBox, core.ColorGridLine)
	s.DrawText(l.menuBox.X+2, l.menuBox.Y+1, "BUILDINGS", core.ColorText)

	for i, e := range l.entries {
		info := e.kind.Info()
		marker := "  "
		if e.kind == selected {
			marker = "▶ "
		}
		name := fmt.Sprintf("%s%d %s %dx%d", marker, i+1, info.Title, info.Size, info.Size)
		s.DrawText(e.rect.X, e.rect.Y, name, kindColor(e.kind))
		s.DrawText(e.rect.X+4, e.rect.Y+1, info.Description, core.ColorMuted)
		s.DrawText(e.rect.X+4, e.rect.Y+2, info.Cost, core.ColorMuted)
	}
}
