package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/models"
	"github.com/kpeters/hard75/internal/rules"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateReset {
		return docStyle.Render(m.form.View())
	}

	state := m.app.State()
	var b strings.Builder

	if state.CurrentDay == 0 {
		b.WriteString(headerStyle.Render("75 Hard"))
		b.WriteString("\n\n")
		b.WriteString("No challenge in progress. Run `hard75 start` to begin day 1.\n")
		b.WriteString("\n" + m.help.View(m.keys))
		return docStyle.Render(b.String())
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("75 Hard | Day %d of %d", state.CurrentDay, constants.ChallengeDays)))
	b.WriteString("\n\n")

	day := state.TodayProgress
	tasks := rules.TaskCompletionFor(day)

	b.WriteString(taskLine(tasks.Water, fmt.Sprintf("Water     %d/%d oz", waterOz(state), constants.WaterGoalOz)))
	b.WriteString(taskLine(tasks.Reading, fmt.Sprintf("Reading   %d/%d pages", pagesRead(state), constants.ReadingGoalPages)))
	b.WriteString(taskLine(tasks.Diet, "Diet      followed"))
	b.WriteString(taskLine(tasks.Workouts, workoutLine(day)))
	b.WriteString(taskLine(tasks.Photo, "Photo     taken"))

	if day != nil && day.Workout1.Completed && !day.Workout2.Completed {
		gap := rules.WorkoutGapInfoFor(day, time.Now())
		if !gap.CanStartSecond {
			b.WriteString("\n" + dangerStyle.Render(fmt.Sprintf("Second workout opens in %d min", gap.MinutesRemaining)) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nStreak: %d days\n", state.Streak))
	b.WriteString("\n" + m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func taskLine(done bool, label string) string {
	if done {
		return doneStyle.Render("✓ "+label) + "\n"
	}
	return pendingStyle.Render("○ "+label) + "\n"
}

func workoutLine(day *models.DayProgress) string {
	if day == nil {
		return "Workouts  0/2"
	}
	n := 0
	if day.Workout1.Completed {
		n++
	}
	if day.Workout2.Completed {
		n++
	}
	outdoor := ""
	if day.Workout1.IsOutdoor || day.Workout2.IsOutdoor {
		outdoor = ", one outdoor"
	} else if n > 0 {
		outdoor = ", outdoor pending"
	}
	return fmt.Sprintf("Workouts  %d/2%s", n, outdoor)
}

func waterOz(state models.ChallengeState) int {
	if state.TodayProgress == nil {
		return 0
	}
	return state.TodayProgress.WaterOz
}

func pagesRead(state models.ChallengeState) int {
	if state.TodayProgress == nil {
		return 0
	}
	return state.TodayProgress.PagesRead
}
