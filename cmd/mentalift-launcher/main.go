package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/launcher"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var choices = []string{"Check My Mental Status", "About", "Quit"}

type model struct {
	cursor    int
	showAbout bool
	message   string
	warning   string
	quitting  bool
}

func initialModel() model {
	m := model{}
	if running, err := launcher.IsRunning(); err == nil && running {
		m.warning = "mentalift appears to be running already; a second instance overwrites its data on save."
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showAbout {
			m.showAbout = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			switch m.cursor {
			case 0:
				if err := launcher.Spawn(); err != nil {
					m.message = dangerStyle.Render(fmt.Sprintf("Could not start %s: %v", constants.AppName, err))
				} else {
					m.message = "mentalift started."
				}
			case 1:
				m.showAbout = true
			case 2:
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	if m.showAbout {
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("About"),
			"",
			constants.AboutText,
			"",
			"Press any key to go back.",
		))
	}

	parts := []string{titleStyle.Render("MentaLift Launcher"), ""}
	for i, choice := range choices {
		if i == m.cursor {
			parts = append(parts, selectedStyle.Render("> "+choice))
		} else {
			parts = append(parts, "  "+choice)
		}
	}
	if m.warning != "" {
		parts = append(parts, "", warningStyle.Render(m.warning))
	}
	if m.message != "" {
		parts = append(parts, "", m.message)
	}
	parts = append(parts, "", "enter select · ↑/↓ move · q quit")

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
