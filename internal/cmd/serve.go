package cmd

import (
	"github.com/renato0307/cereja/internal/server"
)

// ServeCmd serves a read-only status view over SSH
type ServeCmd struct {
	Host string `default:"localhost" help:"Host to bind the SSH server to."`
	Port string `default:"2222" help:"Port to bind the SSH server to."`
}

// Run starts the SSH server and blocks until it is signalled to stop.
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.repoPath(), cli.Container.OperationService)
	if err != nil {
		return err
	}
	return srv.Start()
}
