package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/engine"
)

type NotesCmd struct {
	Text string `arg:"" help:"Journal note for today (replaces the existing note)."`
}

func (c *NotesCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if _, err := ctx.requireToday(); err != nil {
		return err
	}

	ctx.App.Dispatch(engine.UpdateToday{Patch: engine.DayPatch{Notes: &c.Text}})
	fmt.Println("Notes saved.")
	return nil
}
