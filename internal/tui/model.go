package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/models"
	"github.com/mentalift/mentalift/internal/session"
	"github.com/mentalift/mentalift/internal/storage"
	"github.com/mentalift/mentalift/internal/validation"
	"github.com/mentalift/mentalift/internal/wellness"
)

type Model struct {
	store    storage.Provider
	sessions *session.Store
	analyzer wellness.Analyzer
	dataDir  string

	state    constants.SessionState
	username string
	keys     KeyMap
	help     help.Model

	form        *huh.Form
	loginForm   *LoginFormModel
	checkinForm *CheckinFormModel

	lastEntry *models.Entry

	history     []models.Entry
	historyView viewport.Model
	chartPath   string

	formError string
	warning   string
	quitting  bool
	width     int
	height    int
}

// NewModel builds the initial application model. A valid saved session
// skips the welcome and login screens and lands directly on the home
// screen.
func NewModel(store storage.Provider, sessions *session.Store, analyzer wellness.Analyzer, dataDir string) Model {
	m := Model{
		store:       store,
		sessions:    sessions,
		analyzer:    analyzer,
		dataDir:     dataDir,
		state:       constants.StateWelcome,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		historyView: viewport.New(0, 0),
	}

	if username := sessions.Load(); validation.Username(username) == nil {
		m.username = username
		m.state = constants.StateHome
	}

	return m
}

func (m *Model) startLogin() {
	m.loginForm = &LoginFormModel{}
	m.form = NewLoginForm(m.loginForm)
	m.state = constants.StateLogin
}

func (m *Model) startCheckin() {
	m.checkinForm = NewCheckinFormModel()
	m.form = NewCheckinForm(m.checkinForm)
	m.state = constants.StateCheckin
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateWelcome:
		return []key.Binding{m.keys.Start, m.keys.Quit}
	case constants.StateHome:
		return []key.Binding{m.keys.Checkin, m.keys.History, m.keys.About, m.keys.Logout, m.keys.Quit, m.keys.Help}
	case constants.StateHistory:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit}
	case constants.StateAbout:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Back}
	actions := []key.Binding{m.keys.Checkin, m.keys.History, m.keys.About, m.keys.Logout}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}
