package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-city/internal/core"
	"github.com/vovakirdan/math-city/internal/engine"
	"github.com/vovakirdan/math-city/internal/journal"
)

// Model is the Bubble Tea model of a game session. It owns the controller;
// every engine event is applied from Update.
type Model struct {
	ctrl        *engine.Controller
	layout      layout
	screen      *core.Screen
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	history     historyPanel
	logger      *log.Logger
	cursorX     int
	cursorY     int
	showHistory bool
	quitting    bool
}

// NewModel creates a model for the controller. history may be nil.
func NewModel(ctrl *engine.Controller, history *journal.Journal, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := ctrl.Grid()
	l := newLayout(g.Width(), g.Height())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctrl:    ctrl,
		layout:  l,
		screen:  core.NewScreen(l.width, l.height),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		history: newHistoryPanel(history, l.height),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	answering := m.ctrl.Phase() == engine.PhaseAwaitingAnswer
	c := m.keys.Translate(msg, answering)

	switch c.kind {
	case cmdQuit:
		m.quitting = true
		return m, tea.Quit
	case cmdEvents:
		for _, ev := range c.events {
			m.apply(ev)
		}
	case cmdMove:
		g := m.ctrl.Grid()
		m.cursorX = core.Clamp(m.cursorX+c.dx, 0, g.Width()-1)
		m.cursorY = core.Clamp(m.cursorY+c.dy, 0, g.Height()-1)
	case cmdPlaceCursor:
		m.apply(engine.ClickCell(m.cursorX, m.cursorY))
	case cmdHistory:
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.reload()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, onBoard := m.layout.cellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if onBoard {
			m.cursorX, m.cursorY = x, y
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if onBoard {
			m.cursorX, m.cursorY = x, y
			m.apply(engine.ClickCell(x, y))
			return m, nil
		}
		if k, ok := m.layout.kindAt(msg.X, msg.Y); ok {
			m.apply(engine.SelectKind(k))
		}
	}
	return m, nil
}

// apply forwards one event and keeps the history panel current.
func (m *Model) apply(ev engine.Event) {
	m.logger.Debug("event", "event", ev, "phase", m.ctrl.Phase())
	m.ctrl.Handle(ev)
	if ev.Type == engine.EventSubmit && m.showHistory {
		m.history.reload()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.layout, m.ctrl, m.cursorX, m.cursorY)
	top := RenderScreen(m.screen)
	if m.showHistory {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, " ", m.history.View())
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")

	if q, ok := m.ctrl.Question(); ok {
		b.WriteString(m.renderProblem(q))
		b.WriteString("\n")
	}

	if text, ok := m.ctrl.Message(); ok {
		style := failureStyle
		if text == engine.MsgPlaced {
			style = successStyle
		}
		b.WriteString(style.Render(text))
	}
	b.WriteString("\n")

	if m.ctrl.ShowHelp() {
		var keys help.KeyMap = m.keys
		if m.ctrl.Phase() == engine.PhaseAwaitingAnswer {
			keys = answerKeys{m.keys}
		}
		b.WriteString(hintStyle.Render(m.help.View(keys)))
	}

	return b.String()
}

func (m Model) renderProblem(question string) string {
	width := m.layout.width - 4
	var b strings.Builder
	b.WriteString(titleStyle.Render("Solve to build"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(question))
	b.WriteString("\n")
	b.WriteString("Answer: ")
	b.WriteString(inputStyle.Render(m.ctrl.Input() + "_"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("expressions like 12*7 are accepted"))
	return problemStyle.Render(b.String())
}

// Run starts the Bubble Tea program for the controller.
func Run(ctrl *engine.Controller, history *journal.Journal, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(ctrl, history, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Motion events drive the hover preview
	)

	_, err := p.Run()
	return err
}
