package cli

import (
	"fmt"
	"strings"

	"github.com/kpeters/hard75/internal/engine"
	"github.com/kpeters/hard75/internal/rules"
)

type DoneCmd struct{}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	day, err := ctx.requireToday()
	if err != nil {
		return err
	}

	if !day.Completed {
		tasks := rules.TaskCompletionFor(day)
		var missing []string
		if !tasks.Photo {
			missing = append(missing, "photo")
		}
		if !tasks.Water {
			missing = append(missing, "water")
		}
		if !tasks.Workouts {
			missing = append(missing, "workouts")
		}
		if !tasks.Reading {
			missing = append(missing, "reading")
		}
		if !tasks.Diet {
			missing = append(missing, "diet")
		}
		return fmt.Errorf("today is not complete yet, still missing: %s", strings.Join(missing, ", "))
	}

	state := ctx.App.Dispatch(engine.CompleteDay{})
	fmt.Printf("Day %d banked. Streak: %d.\n", state.CurrentDay, state.Streak)
	return nil
}
