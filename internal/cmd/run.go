package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ui"
)

// RunCmd starts the interactive dashboard
type RunCmd struct {
	Dev bool `help:"Show build info in the header." hidden:""`
}

// Run launches the TUI. The operation lock is held for the whole session so
// the dashboard is the only writer while it is open.
func (r *RunCmd) Run(cli *CLI) error {
	handle, err := cli.Container.OperationService.Open(context.Background(), cli.repoPath())
	if err != nil {
		return err
	}
	defer handle.Close()

	logging.Logger.Info("Starting dashboard", "repo_path", handle.Root())
	p := tea.NewProgram(
		ui.NewModel(handle, cli.Container.Runner, cli.settings, r.Dev),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Dashboard exited")
	return nil
}
