package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-city/internal/journal"
)

const maxHistory = 50 // Max attempts to load

// historyPanel shows the attempts recorded in this session.
type historyPanel struct {
	journal *journal.Journal
	table   table.Model
	correct int
	wrong   int
	err     error
}

func newHistoryPanel(j *journal.Journal, height int) historyPanel {
	columns := []table.Column{
		{Title: "Building", Width: 9},
		{Title: "Problem", Width: 10},
		{Title: "Answer", Width: 7},
		{Title: "Input", Width: 12},
		{Title: "Result", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(height-4, 3)), // Leave room for header and counts
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return historyPanel{journal: j, table: t}
}

// reload refreshes rows and totals from the journal.
func (h *historyPanel) reload() {
	if h.journal == nil {
		h.table.SetRows(nil)
		return
	}

	entries, err := h.journal.Recent(maxHistory)
	if err != nil {
		h.err = err
		return
	}
	h.correct, h.wrong, h.err = h.journal.Counts()

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		result := "wrong"
		if e.Correct {
			result = "ok"
			if !e.Placed {
				result = "blocked"
			}
		}
		rows[i] = table.Row{
			e.Building.String(),
			string(e.ProblemKind),
			e.Answer,
			e.Input,
			result,
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h historyPanel) View() string {
	header := fmt.Sprintf("HISTORY  %d correct, %d incorrect", h.correct, h.wrong)
	body := h.table.View()
	switch {
	case h.err != nil:
		body = failureStyle.Render(h.err.Error())
	case len(h.table.Rows()) == 0:
		body = hintStyle.Italic(true).Render("No answers yet.")
	}
	return panelStyle.Render(titleStyle.Render(header) + "\n" + body)
}
