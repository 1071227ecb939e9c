package engine

import (
	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

// Phase is the controller's position in the click, answer, commit cycle.
type Phase int

const (
	PhaseIdle           Phase = iota // no kind selected
	PhaseArmed                       // kind selected, no problem
	PhaseAwaitingAnswer              // problem active, typing an answer
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	default:
		return "unknown"
	}
}

// User-facing status messages.
const (
	MsgSelectFirst = "Please select a building type first!"
	MsgCannotPlace = "Cannot place building here!"
	MsgPlaced      = "Building placed successfully!"
	MsgPlaceFailed = "Failed to place building!"
	MsgIncorrect   = "Incorrect answer! Try again."
)

// DefaultMessageTicks is how long a message stays up: one second at 60 fps.
const DefaultMessageTicks = 60

// Target is the placement a pending problem will commit.
type Target struct {
	Kind city.Kind
	X, Y int
}

// Message is a transient status line with a frame countdown.
type Message struct {
	Text      string
	Remaining int
}

// Visible reports whether the message should still be shown.
func (m Message) Visible() bool {
	return m.Remaining > 0 && m.Text != ""
}

// State is the session's interaction state. The controller mutates the
// State it was given; callers read it through the controller.
type State struct {
	Selected city.Kind        // KindNone when nothing is selected
	Problem  *mathgen.Problem // nil unless awaiting an answer
	Input    []rune
	Pending  Target
	Message  Message
	ShowHelp bool
}

// Phase derives the current phase from the state.
func (s *State) Phase() Phase {
	switch {
	case s.Problem != nil:
		return PhaseAwaitingAnswer
	case s.Selected != city.KindNone:
		return PhaseArmed
	default:
		return PhaseIdle
	}
}

// Snapshot is a copy of everything observable about a session.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Selected    city.Kind
	Question    string
	Answer      string
	Input       string
	Pending     Target
	Message     string
	MessageLeft int
	ShowHelp    bool
	Occupied    int
}
