package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
)

type WaterCmd struct {
	Oz     int  `arg:"" optional:"" help:"Ounces to add (negative to remove)."`
	Bottle bool `short:"b" help:"Add one bottle (settings bottle size)."`
	Small  bool `help:"Add a small increment (8 oz)."`
	Large  bool `help:"Add a large increment (16 oz)."`
}

func (c *WaterCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if _, err := ctx.requireToday(); err != nil {
		return err
	}

	delta := c.Oz
	switch {
	case c.Bottle:
		delta = ctx.App.State().UserSettings.WaterBottleSize
	case c.Small:
		delta = constants.WaterIncrementSmall
	case c.Large:
		delta = constants.WaterIncrementLarge
	}
	if delta == 0 {
		return fmt.Errorf("nothing to add, pass ounces or one of --bottle/--small/--large")
	}

	state := ctx.App.Dispatch(engine.AddWater{Oz: delta})
	fmt.Printf("Water: %d/%d oz\n", state.TodayProgress.WaterOz, constants.WaterGoalOz)
	return nil
}
