package services

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// ShellService opens the user's shell inside an operation's tree, which is
// where conflicts get resolved and finished picks get reviewed.
type ShellService struct {
	runner ports.ShellRunner
	store  ports.RecordStore
	vcs    ports.VersionControl
}

// NewShellService creates a new ShellService
func NewShellService(store ports.RecordStore, vcs ports.VersionControl, runner ports.ShellRunner) *ShellService {
	return &ShellService{
		runner: runner,
		store:  store,
		vcs:    vcs,
	}
}

// TreePath returns the operation tree for repoPath, failing when there is
// no operation or the tree does not exist yet.
func (s *ShellService) TreePath(ctx context.Context, repoPath string) (string, error) {
	root, err := s.vcs.DiscoverRoot(repoPath)
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}

	op, err := s.store.Load(ctx, root)
	if err != nil {
		return "", err
	}
	if op.WorkTreePath == "" {
		return "", fmt.Errorf("%w: the operation has no tree yet (phase %s)", domain.ErrWrongPhase, op.Phase)
	}
	if _, err := os.Stat(op.WorkTreePath); err != nil {
		return "", fmt.Errorf("operation tree %s is gone: %w", op.WorkTreePath, err)
	}
	return op.WorkTreePath, nil
}

// OpenResolveShell blocks inside an interactive shell rooted at the
// operation's tree until the user exits it.
func (s *ShellService) OpenResolveShell(ctx context.Context, repoPath string) error {
	path, err := s.TreePath(ctx, repoPath)
	if err != nil {
		return err
	}
	logging.Logger.Info("Entering operation tree", "path", path)
	return s.runner.RunInteractive(path)
}
