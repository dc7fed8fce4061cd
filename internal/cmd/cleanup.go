package cmd

import (
	"context"
	"fmt"
	"time"
)

// CleanupCmd removes finished records past their retention age and trees no
// record references
type CleanupCmd struct {
	OlderThan time.Duration `help:"Retention age for finished operations" default:"168h"`
}

// Run executes the cleanup command
func (c *CleanupCmd) Run(cli *CLI) error {
	result, err := cli.Container.CleanupService.Cleanup(context.Background(), c.OlderThan)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d record(s) and %d tree(s).\n",
		result.RemovedRecords, len(result.RemovedTrees))
	for _, path := range result.RemovedTrees {
		fmt.Printf("  %s\n", path)
	}
	return nil
}
