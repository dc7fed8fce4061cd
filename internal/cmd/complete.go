package cmd

import (
	"context"

	"github.com/renato0307/cereja/internal/services"
)

// CompleteCmd runs the post-pick tasks and finalizes the record. The picked
// commits stay in the tree; pushing them is the user's call.
type CompleteCmd struct {
	NextState string `help:"State linked work items are advanced to" default:"Closed"`
}

// Run executes the complete command
func (c *CompleteCmd) Run(cli *CLI) error {
	state := c.NextState
	if state == "Closed" && cli.settings != nil && cli.settings.WorkItemState != "" {
		state = cli.settings.WorkItemState
	}

	return cli.runOperation(context.Background(), func(ctx context.Context, handle *services.OperationHandle) (*services.Outcome, error) {
		return handle.Complete(ctx, state)
	})
}
