package cmd

import (
	"context"
)

// ShellCmd opens $SHELL inside the operation's tree
type ShellCmd struct{}

// Run executes the shell command
func (s *ShellCmd) Run(cli *CLI) error {
	return cli.Container.ShellService.OpenResolveShell(context.Background(), cli.repoPath())
}
