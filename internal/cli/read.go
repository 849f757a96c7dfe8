package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
)

type ReadCmd struct {
	Pages int    `arg:"" optional:"" help:"Pages read (negative to correct)."`
	Book  string `short:"b" help:"Set the current book title."`
}

func (c *ReadCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if _, err := ctx.requireToday(); err != nil {
		return err
	}

	if c.Pages == 0 && c.Book == "" {
		return fmt.Errorf("nothing to record, pass a page count and/or --book")
	}

	if c.Book != "" {
		title := c.Book
		ctx.App.Dispatch(engine.UpdateToday{Patch: engine.DayPatch{BookTitle: &title}})
	}
	if c.Pages != 0 {
		ctx.App.Dispatch(engine.AddPages{Pages: c.Pages})
	}

	day := ctx.App.State().TodayProgress
	fmt.Printf("Reading: %d/%d pages", day.PagesRead, constants.ReadingGoalPages)
	if day.BookTitle != "" {
		fmt.Printf(" (%s)", day.BookTitle)
	}
	fmt.Println()
	return nil
}
