package cmd

import (
	"context"
	"fmt"
)

// HistoryCmd inspects archived operations
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"list" help:"List recent archived operations" default:"1"`
	Prune HistoryPruneCmd `cmd:"prune" help:"Trim the archive to the newest N operations"`
}

// HistoryListCmd lists recent archived operations
type HistoryListCmd struct {
	Limit int `help:"Maximum operations to show" default:"20"`
}

// Run executes the history list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	operations, err := cli.Container.History.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if cli.Output != "text" {
		return cli.printer().encoder.Encode(operations)
	}

	if len(operations) == 0 {
		fmt.Println("No archived operations.")
		return nil
	}
	for _, op := range operations {
		completed := "unknown"
		if op.CompletedAt != nil {
			completed = op.CompletedAt.Format("2006-01-02 15:04")
		}
		progress := op.Progress()
		fmt.Printf("%-16s %-22s %-10s %s  %d/%d applied\n",
			completed, op.ReleaseName, op.FinalStatus, op.RepoPath,
			progress.Applied, progress.Total)
	}
	return nil
}

// HistoryPruneCmd trims the archive to the newest operations
type HistoryPruneCmd struct {
	Keep int `help:"How many operations to keep" default:"50"`
}

// Run executes the history prune command
func (h *HistoryPruneCmd) Run(cli *CLI) error {
	removed, err := cli.Container.History.Prune(context.Background(), h.Keep)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d archived operation(s), kept the newest %d.\n", removed, h.Keep)
	return nil
}
