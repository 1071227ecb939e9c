package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/engine"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateBoardKeys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		kind   commandKind
		event  engine.EventType
		choose city.Kind
		dx, dy int
	}{
		{"1 selects house", runeKey("1"), cmdEvents, engine.EventSelectKind, city.KindHouse, 0, 0},
		{"2 selects shop", runeKey("2"), cmdEvents, engine.EventSelectKind, city.KindShop, 0, 0},
		{"3 selects factory", runeKey("3"), cmdEvents, engine.EventSelectKind, city.KindFactory, 0, 0},
		{"4 selects park", runeKey("4"), cmdEvents, engine.EventSelectKind, city.KindPark, 0, 0},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, cmdMove, engine.EventNone, city.KindNone, 0, -1},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, cmdMove, engine.EventNone, city.KindNone, 0, 1},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, cmdMove, engine.EventNone, city.KindNone, -1, 0},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, cmdMove, engine.EventNone, city.KindNone, 1, 0},
		{"enter places", tea.KeyMsg{Type: tea.KeyEnter}, cmdPlaceCursor, engine.EventNone, city.KindNone, 0, 0},
		{"space places", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, cmdPlaceCursor, engine.EventNone, city.KindNone, 0, 0},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, cmdEvents, engine.EventCancel, city.KindNone, 0, 0},
		{"h toggles help", runeKey("h"), cmdEvents, engine.EventToggleHelp, city.KindNone, 0, 0},
		{"tab toggles history", tea.KeyMsg{Type: tea.KeyTab}, cmdHistory, engine.EventNone, city.KindNone, 0, 0},
		{"q quits", runeKey("q"), cmdQuit, engine.EventNone, city.KindNone, 0, 0},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, cmdQuit, engine.EventNone, city.KindNone, 0, 0},
		{"5 is unbound", runeKey("5"), cmdNone, engine.EventNone, city.KindNone, 0, 0},
		{"backspace is unbound", tea.KeyMsg{Type: tea.KeyBackspace}, cmdNone, engine.EventNone, city.KindNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := km.Translate(tt.msg, false)
			if c.kind != tt.kind {
				t.Fatalf("kind = %v, want %v", c.kind, tt.kind)
			}
			if c.dx != tt.dx || c.dy != tt.dy {
				t.Errorf("move = (%d, %d), want (%d, %d)", c.dx, c.dy, tt.dx, tt.dy)
			}
			if tt.kind != cmdEvents {
				return
			}
			if len(c.events) != 1 {
				t.Fatalf("got %d events, want 1", len(c.events))
			}
			if c.events[0].Type != tt.event || c.events[0].Kind != tt.choose {
				t.Errorf("event = %v, want %v(%v)", c.events[0], tt.event, tt.choose)
			}
		})
	}
}

func TestTranslateAnswerKeys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		kind  commandKind
		types []engine.EventType
		chars string
	}{
		{"digit", runeKey("4"), cmdEvents, []engine.EventType{engine.EventCharacter}, "4"},
		{"q is typed", runeKey("q"), cmdEvents, []engine.EventType{engine.EventCharacter}, "q"},
		{"h is typed", runeKey("h"), cmdEvents, []engine.EventType{engine.EventCharacter}, "h"},
		{"paste", runeKey("6*7"), cmdEvents, []engine.EventType{engine.EventCharacter, engine.EventCharacter, engine.EventCharacter}, "6*7"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, cmdEvents, []engine.EventType{engine.EventCharacter}, " "},
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, cmdEvents, []engine.EventType{engine.EventSubmit}, ""},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, cmdEvents, []engine.EventType{engine.EventBackspace}, ""},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, cmdEvents, []engine.EventType{engine.EventCancel}, ""},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, cmdQuit, nil, ""},
		{"alt rune ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, cmdNone, nil, ""},
		{"arrows ignored", tea.KeyMsg{Type: tea.KeyLeft}, cmdNone, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := km.Translate(tt.msg, true)
			if c.kind != tt.kind {
				t.Fatalf("kind = %v, want %v", c.kind, tt.kind)
			}
			if len(c.events) != len(tt.types) {
				t.Fatalf("got %d events, want %d", len(c.events), len(tt.types))
			}
			var chars []rune
			for i, ev := range c.events {
				if ev.Type != tt.types[i] {
					t.Errorf("event %d = %v, want %v", i, ev.Type, tt.types[i])
				}
				if ev.Type == engine.EventCharacter {
					chars = append(chars, ev.Char)
				}
			}
			if string(chars) != tt.chars {
				t.Errorf("chars = %q, want %q", string(chars), tt.chars)
			}
		})
	}
}
