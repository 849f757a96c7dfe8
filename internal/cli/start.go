package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
)

type StartCmd struct{}

func (c *StartCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.State()
	if state.CurrentDay > 0 {
		return fmt.Errorf("challenge already in progress (day %d), use 'hard75 reset' to start over", state.CurrentDay)
	}

	if !state.HasCompletedOnboarding {
		ctx.App.Dispatch(engine.CompleteOnboarding{})
	}
	state = ctx.App.Dispatch(engine.StartChallenge{})

	fmt.Printf("Challenge started. Day 1 of %d, today is %s.\n", constants.ChallengeDays, *state.StartDate)
	fmt.Println("Every day:")
	for _, task := range constants.DailyTasks {
		fmt.Printf("  - %s (%s)\n", task.Title, task.Subtitle)
	}
	return nil
}
