package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/engine"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	House     key.Binding
	Shop      key.Binding
	Factory   key.Binding
	Park      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Place     key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Cancel    key.Binding
	Help      key.Binding
	History   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.House, k.Shop, k.Factory, k.Park, k.Place, k.Cancel, k.History, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.House, k.Shop, k.Factory, k.Park},
		{k.Up, k.Down, k.Left, k.Right, k.Place},
		{k.Cancel, k.History, k.Help, k.Quit},
	}
}

// answerKeys is the help view shown while a problem is open.
type answerKeys struct{ KeyMap }

func (k answerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Backspace, k.Cancel}
}

func (k answerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		House: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "house"),
		),
		Shop: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shop"),
		),
		Factory: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "factory"),
		),
		Park: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "park"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// commandKind says what a key press asks the model to do.
type commandKind int

const (
	cmdNone        commandKind = iota
	cmdEvents                  // forward events to the controller
	cmdMove                    // move the board cursor by (dx, dy)
	cmdPlaceCursor             // click the cell under the cursor
	cmdHistory                 // toggle the history panel
	cmdQuit
)

// command is the result of translating one key press.
type command struct {
	kind   commandKind
	events []engine.Event
	dx, dy int
}

func events(evs ...engine.Event) command {
	return command{kind: cmdEvents, events: evs}
}

// Translate maps a key press to a command. While answering, printable
// runes (including q and the digits) go to the answer buffer and only
// ctrl+c quits.
func (k KeyMap) Translate(msg tea.KeyMsg, answering bool) command {
	if answering {
		return k.translateAnswer(msg)
	}

	switch {
	case key.Matches(msg, k.Quit):
		return command{kind: cmdQuit}
	case key.Matches(msg, k.House):
		return events(engine.SelectKind(city.KindHouse))
	case key.Matches(msg, k.Shop):
		return events(engine.SelectKind(city.KindShop))
	case key.Matches(msg, k.Factory):
		return events(engine.SelectKind(city.KindFactory))
	case key.Matches(msg, k.Park):
		return events(engine.SelectKind(city.KindPark))
	case key.Matches(msg, k.Up):
		return command{kind: cmdMove, dy: -1}
	case key.Matches(msg, k.Down):
		return command{kind: cmdMove, dy: 1}
	case key.Matches(msg, k.Left):
		return command{kind: cmdMove, dx: -1}
	case key.Matches(msg, k.Right):
		return command{kind: cmdMove, dx: 1}
	case key.Matches(msg, k.Place):
		return command{kind: cmdPlaceCursor}
	case key.Matches(msg, k.Cancel):
		return events(engine.Cancel())
	case key.Matches(msg, k.Help):
		return events(engine.ToggleHelp())
	case key.Matches(msg, k.History):
		return command{kind: cmdHistory}
	}
	return command{}
}

func (k KeyMap) translateAnswer(msg tea.KeyMsg) command {
	switch msg.Type {
	case tea.KeyCtrlC:
		return command{kind: cmdQuit}
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt || len(msg.Runes) == 0 {
			return command{}
		}
		evs := make([]engine.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, engine.Character(r))
		}
		return events(evs...)
	}

	switch {
	case key.Matches(msg, k.Submit):
		return events(engine.Submit())
	case key.Matches(msg, k.Backspace):
		return events(engine.Backspace())
	case key.Matches(msg, k.Cancel):
		return events(engine.Cancel())
	case key.Matches(msg, k.History):
		return command{kind: cmdHistory}
	}
	return command{}
}
