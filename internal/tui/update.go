package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
	}

	if m.state == StateReset {
		return m.updateResetForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(keyMsg, m.keys.Water):
			m.app.Dispatch(engine.AddWater{Oz: m.app.State().UserSettings.WaterBottleSize})

		case key.Matches(keyMsg, m.keys.SmallSip):
			m.app.Dispatch(engine.AddWater{Oz: constants.WaterIncrementSmall})

		case key.Matches(keyMsg, m.keys.Page):
			m.app.Dispatch(engine.AddPages{Pages: 1})

		case key.Matches(keyMsg, m.keys.Diet):
			if day := m.app.State().TodayProgress; day != nil {
				followed := !day.DietFollowed
				m.app.Dispatch(engine.UpdateToday{Patch: engine.DayPatch{DietFollowed: &followed}})
			}

		case key.Matches(keyMsg, m.keys.Workout1):
			m.markWorkoutDone(1)

		case key.Matches(keyMsg, m.keys.Workout2):
			m.markWorkoutDone(2)

		case key.Matches(keyMsg, m.keys.Outdoor1):
			m.toggleOutdoor(1)

		case key.Matches(keyMsg, m.keys.Outdoor2):
			m.toggleOutdoor(2)

		case key.Matches(keyMsg, m.keys.Photo):
			// The core only tracks an opaque reference; a dated marker is
			// enough to satisfy the photo task from the dashboard.
			ref := fmt.Sprintf("photo-%s", time.Now().Format(constants.DateFormat))
			m.app.Dispatch(engine.SetPhoto{URI: ref})

		case key.Matches(keyMsg, m.keys.Reset):
			if m.app.State().CurrentDay > 0 {
				m.form = m.newResetForm()
				m.state = StateReset
				return m, m.form.Init()
			}
		}
	}

	return m, nil
}

func (m *Model) toggleOutdoor(num int) {
	day := m.app.State().TodayProgress
	if day == nil {
		return
	}
	outdoor := !day.Workout1.IsOutdoor
	if num == 2 {
		outdoor = !day.Workout2.IsOutdoor
	}
	m.app.Dispatch(engine.UpdateWorkout{
		Num:   num,
		Patch: engine.WorkoutPatch{IsOutdoor: &outdoor},
	})
}

func (m *Model) markWorkoutDone(num int) {
	completed := true
	duration := constants.WorkoutDurationMinutes
	m.app.Dispatch(engine.UpdateWorkout{
		Num: num,
		Patch: engine.WorkoutPatch{
			Completed: &completed,
			Duration:  &duration,
		},
	})
}

func (m Model) updateResetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateDashboard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.resetOK {
			m.app.Dispatch(engine.ResetChallenge{Reason: m.resetReason})
		}
		m.state = StateDashboard
	case huh.StateAborted:
		m.state = StateDashboard
	}

	return m, cmd
}
