package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.State()
	if state.CurrentDay == 0 {
		fmt.Println("Challenge not started.")
		return nil
	}

	completed := 0
	for _, d := range state.History {
		if d.Completed {
			completed++
		}
	}

	fmt.Printf("Current attempt: day %d of %d (started %s)\n", state.CurrentDay, constants.ChallengeDays, *state.StartDate)
	fmt.Printf("  Streak:          %d\n", state.Streak)
	fmt.Printf("  Days completed:  %d\n", completed)
	fmt.Printf("  Pages read:      %d\n", state.TotalPagesRead)
	fmt.Printf("  Water:           %d oz\n", state.TotalWaterOz)
	fmt.Printf("  Workouts:        %d\n", state.TotalWorkouts)

	fmt.Print("  Milestones:      ")
	for i, m := range constants.Milestones {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Printf("%s %d", mark(state.CurrentDay > m || (state.CurrentDay == m && state.TodayProgress != nil && state.TodayProgress.Completed)), m)
	}
	fmt.Println()

	if len(state.Attempts) > 0 {
		fmt.Printf("\nPast attempts: %d (see 'hard75 history')\n", len(state.Attempts))
	}
	return nil
}
