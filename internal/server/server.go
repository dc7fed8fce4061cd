package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/services"
)

// Server serves a read-only status view of one repository's operation over
// SSH, for inspecting a stopped run on a box without touching it.
type Server struct {
	host       string
	port       string
	repoPath   string
	svc        *services.OperationService
	wishServer *ssh.Server
}

// NewServer creates the SSH server. Clients authenticate with the public
// keys in ~/.ssh/authorized_keys.
func NewServer(host, port, repoPath string, svc *services.OperationService) (*Server, error) {
	s := &Server{
		host:     host,
		port:     port,
		repoPath: repoPath,
		svc:      svc,
	}

	sshDir := filepath.Join(config.CerejaHome(), "ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(sshDir, "id_ed25519")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	authorizedKeysPath := filepath.Join(homeDir, ".ssh", "authorized_keys")

	wishServer, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%s", host, port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := keyFingerprint(key)
			authorized := isKeyAuthorized(key, authorizedKeysPath)
			if authorized {
				logging.Logger.Info("SSH key authenticated",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			} else {
				logging.Logger.Warn("Unauthorized SSH key",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			}
			return authorized
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start runs the server until SIGINT or SIGTERM, then shuts it down.
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH status server",
		"address", fmt.Sprintf("%s:%s", s.host, s.port),
		"repo_path", s.repoPath)
	fmt.Printf("SSH status server listening on %s:%s\n", s.host, s.port)

	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			logging.Logger.Error("SSH server error", "error", err)
		}
	}()

	<-done
	logging.Logger.Info("Shutting down SSH status server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH status server stopped")
	return nil
}
