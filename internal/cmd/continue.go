package cmd

import (
	"context"

	"github.com/renato0307/cereja/internal/services"
)

// ContinueCmd resumes an operation stopped on a conflict
type ContinueCmd struct {
	Skip bool `help:"Abandon the conflicted item instead of finishing it"`
}

// Run executes the continue command
func (c *ContinueCmd) Run(cli *CLI) error {
	return cli.runOperation(context.Background(), func(ctx context.Context, handle *services.OperationHandle) (*services.Outcome, error) {
		if c.Skip {
			return handle.Skip(ctx)
		}
		return handle.Resume(ctx)
	})
}
