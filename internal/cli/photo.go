package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/engine"
)

type PhotoCmd struct {
	Ref string `arg:"" help:"Photo reference (file path or any opaque identifier)."`
}

func (c *PhotoCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if _, err := ctx.requireToday(); err != nil {
		return err
	}

	ctx.App.Dispatch(engine.SetPhoto{URI: c.Ref})
	fmt.Println("Progress photo recorded.")
	return nil
}
