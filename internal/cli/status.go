package cli

import (
	"fmt"
	"time"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/rules"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.State()
	if state.CurrentDay == 0 {
		fmt.Println("Challenge not started. Run 'hard75 start' to begin.")
		return nil
	}

	fmt.Printf("Day %d of %d  (streak: %d)\n\n", state.CurrentDay, constants.ChallengeDays, state.Streak)

	day := state.TodayProgress
	if day == nil {
		fmt.Println("No record for today. Yesterday may be incomplete:")
		fmt.Println("review with 'hard75 history' and decide whether to 'hard75 reset'.")
		return nil
	}

	tasks := rules.TaskCompletionFor(day)
	fmt.Printf("  %s Progress photo\n", mark(tasks.Photo))
	fmt.Printf("  %s Water    %d/%d oz\n", mark(tasks.Water), day.WaterOz, constants.WaterGoalOz)
	fmt.Printf("  %s Workouts %s\n", mark(tasks.Workouts), workoutSummary(ctx))
	fmt.Printf("  %s Reading  %d/%d pages", mark(tasks.Reading), day.PagesRead, constants.ReadingGoalPages)
	if day.BookTitle != "" {
		fmt.Printf("  (%s)", day.BookTitle)
	}
	fmt.Println()
	fmt.Printf("  %s Diet\n", mark(tasks.Diet))

	if day.Completed {
		fmt.Println("\nAll five tasks done. Run 'hard75 done' to bank the day.")
	}
	return nil
}

func workoutSummary(ctx *Context) string {
	state := ctx.App.State()
	day := state.TodayProgress
	if day == nil {
		return ""
	}

	done := 0
	if day.Workout1.Completed {
		done++
	}
	if day.Workout2.Completed {
		done++
	}

	summary := fmt.Sprintf("%d/2 done", done)
	if day.Workout1.Completed && !day.Workout2.Completed {
		gap := rules.WorkoutGapInfoFor(day, time.Now())
		if !gap.CanStartSecond {
			summary += fmt.Sprintf(", second workout in %dm", gap.MinutesRemaining)
		}
	}
	return summary
}
