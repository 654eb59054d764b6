package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mentalift/mentalift/internal/chart"
	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/models"
	"github.com/mentalift/mentalift/internal/wellness"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.historyView.Width = msg.Width - h
		m.historyView.Height = msg.Height - v - 6
		return m, nil
	}

	// Handle Login State
	if m.state == constants.StateLogin {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateWelcome
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.username = strings.TrimSpace(m.loginForm.Username)
			if err := m.sessions.Save(m.username); err != nil {
				m.warning = fmt.Sprintf("Session not saved: %v", err)
			}
			m.formError = ""
			m.state = constants.StateHome
		case huh.StateAborted:
			m.state = constants.StateWelcome
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Checkin State
	if m.state == constants.StateCheckin {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateHome
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			reading := models.Reading{
				Mood:    m.checkinForm.Mood,
				Stress:  m.checkinForm.Stress,
				Anxiety: m.checkinForm.Anxiety,
				Sleep:   m.checkinForm.Sleep,
				Notes:   m.checkinForm.Notes,
			}
			entry := wellness.Evaluate(reading, m.analyzer)
			if err := m.store.AppendEntry(m.username, entry); err != nil {
				// Stay in form state to allow retry
				m.formError = fmt.Sprintf("Failed to save check-in: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.lastEntry = &entry
			m.formError = ""
			m.state = constants.StateHome
		case huh.StateAborted:
			m.state = constants.StateHome
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.state {
		case constants.StateWelcome:
			if key.Matches(msg, m.keys.Start) {
				m.startLogin()
				return m, m.form.Init()
			}

		case constants.StateHome:
			switch {
			case key.Matches(msg, m.keys.Checkin):
				m.startCheckin()
				return m, m.form.Init()
			case key.Matches(msg, m.keys.History):
				m.openHistory()
				return m, nil
			case key.Matches(msg, m.keys.About):
				m.state = constants.StateAbout
				return m, nil
			case key.Matches(msg, m.keys.Logout):
				if err := m.sessions.Clear(); err != nil {
					m.warning = fmt.Sprintf("Failed to clear session: %v", err)
				}
				m.username = ""
				m.lastEntry = nil
				m.startLogin()
				return m, m.form.Init()
			}

		case constants.StateHistory:
			if key.Matches(msg, m.keys.Back) {
				m.state = constants.StateHome
				return m, nil
			}
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(msg)
			return m, cmd

		case constants.StateAbout:
			if key.Matches(msg, m.keys.Back) {
				m.state = constants.StateHome
				return m, nil
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// openHistory re-reads the user's history from storage and renders the
// trend chart alongside it. A chart failure is reported as a warning
// and never blocks the history view.
func (m *Model) openHistory() {
	m.warning = ""
	m.chartPath = ""

	history, err := m.store.GetHistory(m.username)
	if err != nil {
		m.history = nil
		m.warning = fmt.Sprintf("Failed to load history: %v", err)
		m.historyView.SetContent("")
		m.state = constants.StateHistory
		return
	}
	m.history = history

	if len(history) > 0 {
		path := filepath.Join(m.dataDir, m.username+constants.ChartFileSuffix)
		if err := chart.RenderHistory(m.username, history, path); err != nil {
			m.warning = fmt.Sprintf("Chart not generated: %v", err)
		} else {
			m.chartPath = path
		}
	}

	m.historyView.SetContent(m.renderHistory())
	m.historyView.GotoTop()
	m.state = constants.StateHistory
}
