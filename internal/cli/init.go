package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.App.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized hard75 storage at: %s\n", ctx.App.Store.GetConfigPath())
	return nil
}
