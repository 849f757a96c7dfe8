package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kpeters/hard75/internal/app"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateReset
)

type Model struct {
	app   *app.App
	state SessionState
	keys  KeyMap
	help  help.Model

	form        *huh.Form
	resetReason string
	resetOK     bool

	width    int
	height   int
	quitting bool
}

func NewModel(a *app.App) Model {
	return Model{
		app:   a,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) newResetForm() *huh.Form {
	m.resetReason = ""
	m.resetOK = false
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset the challenge? The current run is archived and you go back to day 1.").
				Value(&m.resetOK),
			huh.NewInput().
				Title("Reason (optional)").
				Value(&m.resetReason),
		),
	).WithTheme(huh.ThemeDracula())
}
