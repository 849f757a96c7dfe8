package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/kpeters/hard75/internal/engine"
)

type ResetCmd struct {
	Reason string `short:"r" help:"Why the run ended (stored with the archived attempt)."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.State()
	if state.CurrentDay == 0 {
		return fmt.Errorf("no challenge in progress, run 'hard75 start' instead")
	}

	reason := c.Reason
	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Reset the challenge? Day %d progress will be archived and you go back to day 1.", state.CurrentDay)).
					Value(&confirmed),
				huh.NewInput().
					Title("Reason (optional)").
					Value(&reason),
			),
		).WithTheme(huh.ThemeDracula())

		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	next := ctx.App.Dispatch(engine.ResetChallenge{Reason: reason})
	attempt := next.Attempts[len(next.Attempts)-1]
	fmt.Printf("Attempt archived (%d day(s) completed). Back to day 1, today is %s.\n",
		attempt.DaysCompleted, *next.StartDate)
	return nil
}
