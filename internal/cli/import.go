package cli

import (
	"fmt"
	"os"

	"github.com/kpeters/hard75/internal/engine"
	"github.com/kpeters/hard75/internal/storage"
)

type ImportCmd struct {
	File string `arg:"" help:"Exported snapshot to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	// Parse before touching state: a bad document must leave the current
	// state untouched.
	snapshot, err := storage.ParseSnapshot(data)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	state := ctx.App.Dispatch(engine.ImportData{State: *snapshot})
	if state.CurrentDay > 0 {
		fmt.Printf("Imported challenge state: day %d, %d past attempt(s).\n", state.CurrentDay, len(state.Attempts))
	} else {
		fmt.Println("Imported challenge state.")
	}
	return nil
}
