package cli

import (
	"fmt"
	"os"

	"github.com/kpeters/hard75/internal/storage"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	data, err := storage.ExportSnapshot(ctx.App.State())
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported challenge state to %s\n", c.Output)
	return nil
}
