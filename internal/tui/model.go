package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielblac/tmech-invoice/internal/app"
)

// Model is the root Bubble Tea model. The app has exactly two states:
// viewing the document, or editing it in the modal form. The form owns
// the draft; the view always shows the canonical record.
type Model struct {
	app    *app.App
	width  int
	height int

	form *editForm // non-nil while the edit modal is open

	statusMsg string
	err       error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{app: a}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// printPDF renders the canonical record in the background. The draft, if
// any, is deliberately not consulted; print output reflects committed
// state only.
func (m *Model) printPDF() tea.Cmd {
	a := m.app
	rec := a.Session.Canonical()
	return func() tea.Msg {
		path, err := a.PDF.WriteFile(rec, a.Config.Storage.OutputDir)
		return printDoneMsg{path: path, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case editSavedMsg:
		if msg.err != nil {
			// Keep the modal open; the draft is still intact
			if m.form != nil {
				m.form.err = msg.err
			}
			return m, nil
		}
		m.form = nil
		m.err = nil
		m.statusMsg = "Invoice saved"
		return m, nil

	case printDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = fmt.Sprintf("Printed to %s", msg.path)
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		// The modal captures all keys while open
		if m.form != nil {
			var cmd tea.Cmd
			done := false
			done, cmd = m.form.update(msg)
			if done {
				m.form = nil
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Edit):
			m.err = nil
			m.app.Session.Begin()
			m.form = newEditForm(m.app)
			return m, m.form.focusCmd()

		case key.Matches(msg, DefaultKeyMap.Print):
			m.err = nil
			return m, m.printPDF()
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 40 {
		innerWidth = 40
	}

	header := headerStyle.Render("tmech-invoice")
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", max(innerWidth-12, 10)),
	)

	var content, footer string
	if m.form != nil {
		content = m.form.view()
		footer = footerStyle.Render("tab: next  ctrl+n/d: item +/-  ctrl+l/x: info +/-  ctrl+s: save  esc: cancel")
	} else {
		content = renderDocument(m.app, m.app.Session.Canonical(), innerWidth)
		footer = footerStyle.Render("[E]dit  [P]rint  [Q]uit")
	}

	status := ""
	if m.statusMsg != "" {
		status = lipgloss.NewStyle().Foreground(successColor).Render("\n" + m.statusMsg)
	} else if m.err != nil {
		status = lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, status, divider, footer)

	frame := appBorderStyle.Width(innerWidth)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
