package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/engine"
)

type DietCmd struct {
	Unset bool `help:"Clear the diet flag for today."`
}

func (c *DietCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if _, err := ctx.requireToday(); err != nil {
		return err
	}

	followed := !c.Unset
	ctx.App.Dispatch(engine.UpdateToday{Patch: engine.DayPatch{DietFollowed: &followed}})

	if followed {
		fmt.Println("Diet followed today.")
	} else {
		fmt.Println("Diet flag cleared for today.")
	}
	return nil
}
