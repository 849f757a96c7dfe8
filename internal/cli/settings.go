package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/engine"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WaterBottleSize *int  `help:"Water bottle size in ounces."`
	Notifications   *bool `help:"Enable or disable daily reminders."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	settings := ctx.App.State().UserSettings
	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Water Bottle Size: %d oz\n", settings.WaterBottleSize)
		fmt.Printf("  Notifications:     %v\n", settings.Notifications)
		return nil
	}

	patch := engine.SettingsPatch{
		WaterBottleSize: c.WaterBottleSize,
		Notifications:   c.Notifications,
	}
	if patch.WaterBottleSize == nil && patch.Notifications == nil {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	ctx.App.Dispatch(engine.UpdateSettings{Patch: patch})
	fmt.Println("Settings updated successfully.")
	return nil
}
