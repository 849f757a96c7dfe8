package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpeters/hard75/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(ctx.App), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}
