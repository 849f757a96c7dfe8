package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
)

type SetDayCmd struct {
	Day int `arg:"" help:"Day number to jump to (1-75)."`
}

func (c *SetDayCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	state := ctx.App.Dispatch(engine.SetDay{Day: c.Day})
	fmt.Printf("Now on day %d of %d (start date %s).\n", state.CurrentDay, constants.ChallengeDays, *state.StartDate)
	fmt.Println("Earlier days were backfilled as completed; streak and totals were rebuilt.")
	return nil
}
