package engine

import (
	"fmt"

	"github.com/vovakirdan/math-city/internal/city"
)

// EventType identifies an input event delivered by the front end.
type EventType int

const (
	EventNone EventType = iota
	EventSelectKind
	EventClickCell
	EventCharacter
	EventBackspace
	EventSubmit
	EventCancel
	EventToggleHelp
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventSelectKind:
		return "SelectKind"
	case EventClickCell:
		return "ClickCell"
	case EventCharacter:
		return "Character"
	case EventBackspace:
		return "Backspace"
	case EventSubmit:
		return "Submit"
	case EventCancel:
		return "Cancel"
	case EventToggleHelp:
		return "ToggleHelp"
	default:
		return "Unknown"
	}
}

// Event is one discrete input. Only the fields relevant to Type are set;
// click coordinates are already in cells.
type Event struct {
	Type EventType
	Kind city.Kind
	X, Y int
	Char rune
}

func (e Event) String() string {
	switch e.Type {
	case EventSelectKind:
		return fmt.Sprintf("SelectKind(%v)", e.Kind)
	case EventClickCell:
		return fmt.Sprintf("ClickCell(%d,%d)", e.X, e.Y)
	case EventCharacter:
		return fmt.Sprintf("Character(%q)", e.Char)
	default:
		return e.Type.String()
	}
}

// SelectKind selects a building kind for placement.
func SelectKind(k city.Kind) Event { return Event{Type: EventSelectKind, Kind: k} }

// ClickCell targets grid cell (x, y).
func ClickCell(x, y int) Event { return Event{Type: EventClickCell, X: x, Y: y} }

// Character appends r to the answer buffer.
func Character(r rune) Event { return Event{Type: EventCharacter, Char: r} }

// Backspace removes the last rune of the answer buffer.
func Backspace() Event { return Event{Type: EventBackspace} }

// Submit checks the answer buffer.
func Submit() Event { return Event{Type: EventSubmit} }

// Cancel drops the active problem and the selection.
func Cancel() Event { return Event{Type: EventCancel} }

// ToggleHelp flips the help panel.
func ToggleHelp() Event { return Event{Type: EventToggleHelp} }
