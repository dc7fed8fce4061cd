package cmd

import (
	"context"

	"github.com/renato0307/cereja/internal/services"
)

// AbortCmd ends the operation and removes its tree
type AbortCmd struct{}

// Run executes the abort command
func (a *AbortCmd) Run(cli *CLI) error {
	return cli.runOperation(context.Background(), func(ctx context.Context, handle *services.OperationHandle) (*services.Outcome, error) {
		return handle.Abort(ctx)
	})
}
