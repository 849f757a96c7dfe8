package cli

import (
	"encoding/json"
	"fmt"

	"github.com/kpeters/hard75/internal/storage"
)

type DebugCmd struct {
	StorePath *DebugStorePathCmd `cmd:"" help:"Show store path."`
	DumpState *DebugDumpStateCmd `cmd:"" help:"Dump the full challenge state as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.App.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	data, err := storage.ExportSnapshot(ctx.App.State())
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
