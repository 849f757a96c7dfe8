package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/models"
)

type HistoryCmd struct {
	Days int  `short:"n" help:"Number of recent days to show from the current attempt." default:"7"`
	All  bool `help:"Show every day of the current attempt."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.State()

	if len(state.Attempts) > 0 {
		fmt.Println("Past attempts:")
		for i, a := range state.Attempts {
			reason := a.Reason
			if reason == "" {
				reason = "-"
			}
			fmt.Printf("  %d. %s → %s  %d day(s) completed  (%s)\n", i+1, a.StartDate, a.EndDate, a.DaysCompleted, reason)
		}
		fmt.Println()
	}

	if state.CurrentDay == 0 {
		fmt.Println("No active attempt.")
		return nil
	}

	days := state.History
	if !c.All && len(days) > c.Days {
		days = days[len(days)-c.Days:]
	}

	fmt.Println("Current attempt:")
	for _, d := range days {
		fmt.Printf("  %s %s  %s\n", mark(d.Completed), d.Date, daySummary(d))
	}
	return nil
}

func daySummary(d models.DayProgress) string {
	workouts := 0
	if d.Workout1.Completed {
		workouts++
	}
	if d.Workout2.Completed {
		workouts++
	}
	return fmt.Sprintf("water %doz, %dp read, %d/2 workouts", d.WaterOz, d.PagesRead, workouts)
}
