package cmd

import (
	"context"
)

// StatusCmd shows the current operation without taking the lock
type StatusCmd struct{}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	snap, err := cli.Container.OperationService.Status(context.Background(), cli.repoPath())
	if err != nil {
		return err
	}
	return cli.printer().snapshot(snap)
}
