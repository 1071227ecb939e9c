// Package engine runs the interaction state machine: select a building
// kind, click a cell, answer the generated problem, and commit the placement
// on a correct answer.
//
// A Controller is driven from a single goroutine. The placement re-check in
// city.Grid.Place assumes nothing else mutates the grid between the click
// and the submit, so a front end that spreads input handling over several
// goroutines must funnel every Handle and Tick call through one owner.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

// ProblemSource produces a problem for a building kind.
type ProblemSource interface {
	Generate(k city.Kind) mathgen.Problem
}

// Attempt describes one submitted answer.
type Attempt struct {
	Building    city.Kind
	ProblemKind mathgen.ProblemKind
	Question    string
	Answer      string
	Input       string
	Correct     bool
	Placed      bool
	X, Y        int
}

// Recorder receives every submitted attempt. Errors are logged and never
// affect the session.
type Recorder interface {
	Record(a Attempt) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder attaches an attempt recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMessageTicks sets how many ticks a status message stays visible.
func WithMessageTicks(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.messageTicks = n
		}
	}
}

// Controller owns the grid and the interaction state of one session.
type Controller struct {
	grid         *city.Grid
	problems     ProblemSource
	state        *State
	recorder     Recorder
	logger       *log.Logger
	messageTicks int
	tick         uint64
}

// New creates a controller over grid. If state is nil a fresh State is
// allocated.
func New(grid *city.Grid, problems ProblemSource, state *State, opts ...Option) *Controller {
	if state == nil {
		state = &State{}
	}
	c := &Controller{
		grid:         grid,
		problems:     problems,
		state:        state,
		logger:       log.New(io.Discard),
		messageTicks: DefaultMessageTicks,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle applies one input event.
func (c *Controller) Handle(ev Event) {
	c.logger.Debug("event", "event", ev.String(), "phase", c.state.Phase().String())

	switch ev.Type {
	case EventSelectKind:
		c.selectKind(ev.Kind)
	case EventClickCell:
		c.click(ev.X, ev.Y)
	case EventCharacter:
		if c.state.Phase() == PhaseAwaitingAnswer {
			c.state.Input = append(c.state.Input, ev.Char)
		}
	case EventBackspace:
		if c.state.Phase() == PhaseAwaitingAnswer && len(c.state.Input) > 0 {
			c.state.Input = c.state.Input[:len(c.state.Input)-1]
		}
	case EventSubmit:
		if c.state.Phase() == PhaseAwaitingAnswer {
			c.submit()
		}
	case EventCancel:
		c.cancel()
	case EventToggleHelp:
		c.state.ShowHelp = !c.state.ShowHelp
	}
}

// selectKind arms the controller. While a problem is open the selection is
// locked: the pending target already carries its kind.
func (c *Controller) selectKind(k city.Kind) {
	if !k.Valid() {
		panic(fmt.Sprintf("engine: select of unknown building kind %d", int(k)))
	}
	if c.state.Phase() == PhaseAwaitingAnswer {
		return
	}
	c.state.Selected = k
}

func (c *Controller) click(x, y int) {
	switch c.state.Phase() {
	case PhaseAwaitingAnswer:
		return
	case PhaseIdle:
		c.show(MsgSelectFirst)
		return
	}

	k := c.state.Selected
	if !c.grid.CanPlace(k, x, y) {
		c.show(MsgCannotPlace)
		return
	}

	p := c.problems.Generate(k)
	c.state.Problem = &p
	c.state.Input = c.state.Input[:0]
	c.state.Pending = Target{Kind: k, X: x, Y: y}
	c.logger.Debug("problem posed", "kind", p.Kind, "building", k.String(), "x", x, "y", y)
}

func (c *Controller) submit() {
	p := *c.state.Problem
	target := c.state.Pending
	input := string(c.state.Input)

	correct := mathgen.Check(p, input)
	placed := false
	if correct {
		placed = c.grid.Place(target.Kind, target.X, target.Y)
		if placed {
			c.show(MsgPlaced)
			c.logger.Info("building placed", "building", target.Kind.String(), "x", target.X, "y", target.Y)
		} else {
			c.show(MsgPlaceFailed)
			c.logger.Warn("placement rejected on commit", "building", target.Kind.String(), "x", target.X, "y", target.Y)
		}
	} else {
		c.show(MsgIncorrect)
	}

	c.record(Attempt{
		Building:    target.Kind,
		ProblemKind: p.Kind,
		Question:    p.Question,
		Answer:      p.Answer,
		Input:       input,
		Correct:     correct,
		Placed:      placed,
		X:           target.X,
		Y:           target.Y,
	})

	c.state.Problem = nil
	c.state.Input = c.state.Input[:0]
	c.state.Pending = Target{}
}

func (c *Controller) cancel() {
	c.state.Problem = nil
	c.state.Input = c.state.Input[:0]
	c.state.Pending = Target{}
	c.state.Selected = city.KindNone
}

func (c *Controller) record(a Attempt) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(a); err != nil {
		c.logger.Warn("could not record attempt", "error", err)
	}
}

// show replaces the current message and restarts its countdown.
func (c *Controller) show(text string) {
	c.state.Message = Message{Text: text, Remaining: c.messageTicks}
}

// Tick advances one frame: the message countdown drops by one and the
// message clears when it reaches zero.
func (c *Controller) Tick() {
	c.tick++
	m := &c.state.Message
	if m.Remaining > 0 {
		m.Remaining--
		if m.Remaining == 0 {
			m.Text = ""
		}
	}
}

// Grid returns the session grid.
func (c *Controller) Grid() *city.Grid {
	return c.grid
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase()
}

// Selected returns the selected kind, KindNone if there is none.
func (c *Controller) Selected() city.Kind {
	return c.state.Selected
}

// Question returns the active problem's text, if a problem is open.
func (c *Controller) Question() (string, bool) {
	if c.state.Problem == nil {
		return "", false
	}
	return c.state.Problem.Question, true
}

// Input returns the answer typed so far.
func (c *Controller) Input() string {
	return string(c.state.Input)
}

// Pending returns the placement the open problem will commit.
func (c *Controller) Pending() (Target, bool) {
	if c.state.Problem == nil {
		return Target{}, false
	}
	return c.state.Pending, true
}

// Message returns the status text and whether it should still be shown.
func (c *Controller) Message() (string, bool) {
	m := c.state.Message
	return m.Text, m.Visible()
}

// ShowHelp reports whether the help panel is toggled on.
func (c *Controller) ShowHelp() bool {
	return c.state.ShowHelp
}

// CanPlaceAt reports whether the selected kind would fit at (x, y), for
// hover previews. It is false when nothing is selected.
func (c *Controller) CanPlaceAt(x, y int) bool {
	if c.state.Selected == city.KindNone {
		return false
	}
	return c.grid.CanPlace(c.state.Selected, x, y)
}

// Snapshot returns a copy of the observable session state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        c.tick,
		Phase:       c.state.Phase(),
		Selected:    c.state.Selected,
		Input:       string(c.state.Input),
		Pending:     c.state.Pending,
		Message:     c.state.Message.Text,
		MessageLeft: c.state.Message.Remaining,
		ShowHelp:    c.state.ShowHelp,
		Occupied:    c.grid.Len(),
	}
	if p := c.state.Problem; p != nil {
		s.Question = p.Question
		s.Answer = p.Answer
	}
	return s
}
