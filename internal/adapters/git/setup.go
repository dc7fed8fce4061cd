package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/cereja/internal/adapters/statefile"
	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// PickBranchName returns the branch the picked commits land on
func PickBranchName(releaseName string) (string, error) {
	sanitized, err := sanitizeBranchName(releaseName)
	if err != nil {
		return "", fmt.Errorf("release name %q cannot become a branch: %w", releaseName, err)
	}
	return "pick/" + sanitized, nil
}

// SetupTree prepares the tree the operation will mutate, positioned on a
// new branch at the tip of the target branch. With useWorktree it attaches
// an auxiliary worktree to the local clone; otherwise it creates a fresh
// clone under the managed trees directory.
func (c *Client) SetupTree(ctx context.Context, op *domain.Operation, useWorktree bool) (ports.Checkout, error) {
	branch, err := PickBranchName(op.ReleaseName)
	if err != nil {
		return ports.Checkout{}, err
	}

	logging.Logger.Info("Setting up tree",
		"repo_path", op.RepoPath,
		"target", op.TargetBranch,
		"branch", branch,
		"use_worktree", useWorktree)

	// Refresh remote state first so the new branch starts at the real tip.
	// Offline is tolerated; the local refs are then the best we have.
	if _, err := runGit(ctx, op.RepoPath, "fetch", "origin"); err != nil {
		logging.Logger.Warn("Git fetch origin failed (continuing anyway)", "error", err)
	}

	if useWorktree {
		return c.setupWorktree(ctx, op, branch)
	}
	return c.setupClone(ctx, op, branch)
}

func (c *Client) setupWorktree(ctx context.Context, op *domain.Operation, branch string) (ports.Checkout, error) {
	dir := filepath.Join(c.treesDir, statefile.Key(op.RepoPath))
	if err := os.MkdirAll(c.treesDir, 0755); err != nil {
		return ports.Checkout{}, fmt.Errorf("failed to create trees directory: %w", err)
	}
	if _, err := os.Stat(dir); err == nil {
		return ports.Checkout{}, fmt.Errorf("tree %s already exists; abort the previous operation first", dir)
	}

	start := "origin/" + op.TargetBranch
	if _, err := runGit(ctx, op.RepoPath, "worktree", "add", "-b", branch, dir, start); err != nil {
		// No remote-tracking ref; retry from the local branch
		logging.Logger.Warn("Worktree add from remote ref failed, retrying from local branch",
			"start", start, "error", err)
		if _, err := runGit(ctx, op.RepoPath, "worktree", "add", "-b", branch, dir, op.TargetBranch); err != nil {
			return ports.Checkout{}, fmt.Errorf("failed to create worktree: %w", err)
		}
	}

	logging.Logger.Info("Worktree created", "path", dir, "branch", branch)
	return ports.Checkout{Auxiliary: true, BaseRepoPath: op.RepoPath, Path: dir}, nil
}

func (c *Client) setupClone(ctx context.Context, op *domain.Operation, branch string) (ports.Checkout, error) {
	dir := filepath.Join(c.treesDir, statefile.Key(op.RepoPath))
	if err := os.MkdirAll(c.treesDir, 0755); err != nil {
		return ports.Checkout{}, fmt.Errorf("failed to create trees directory: %w", err)
	}
	if _, err := os.Stat(dir); err == nil {
		return ports.Checkout{}, fmt.Errorf("tree %s already exists; abort the previous operation first", dir)
	}

	// A local clone keeps every ref, so the merge commits picked from the
	// source branch are present without a second fetch.
	if _, err := runGit(ctx, c.treesDir, "clone", op.RepoPath, dir); err != nil {
		return ports.Checkout{}, fmt.Errorf("failed to clone repository: %w", err)
	}

	start := "origin/" + op.TargetBranch
	if _, err := runGit(ctx, dir, "checkout", "-b", branch, start); err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			logging.Logger.Warn("Failed to remove half-built clone", "path", dir, "error", rmErr)
		}
		return ports.Checkout{}, fmt.Errorf("failed to branch from %s: %w", start, err)
	}

	logging.Logger.Info("Clone created", "path", dir, "branch", branch)
	return ports.Checkout{Auxiliary: false, BaseRepoPath: op.RepoPath, Path: dir}, nil
}

// TeardownTree removes the operation's tree. A missing tree is not an
// error; abort flows call this on best effort.
func (c *Client) TeardownTree(ctx context.Context, op *domain.Operation) error {
	if op.WorkTreePath == "" {
		return nil
	}
	if _, err := os.Stat(op.WorkTreePath); os.IsNotExist(err) {
		logging.Logger.Debug("Tree already gone", "path", op.WorkTreePath)
		return nil
	}

	if op.IsAuxiliaryCheckout {
		if _, err := runGit(ctx, op.BaseRepoPath, "worktree", "remove", "--force", op.WorkTreePath); err != nil {
			return fmt.Errorf("failed to remove worktree: %w", err)
		}
		if branch, err := PickBranchName(op.ReleaseName); err == nil {
			if _, err := runGit(ctx, op.BaseRepoPath, "branch", "-D", branch); err != nil {
				logging.Logger.Warn("Failed to delete pick branch", "branch", branch, "error", err)
			}
		}
		return nil
	}

	// Only trees we created under the managed directory are deleted here
	if !strings.HasPrefix(op.WorkTreePath, c.treesDir+string(os.PathSeparator)) {
		return fmt.Errorf("tree %s is outside the managed directory %s", op.WorkTreePath, c.treesDir)
	}
	if err := os.RemoveAll(op.WorkTreePath); err != nil {
		return fmt.Errorf("failed to remove tree: %w", err)
	}

	logging.Logger.Info("Tree removed", "path", op.WorkTreePath)
	return nil
}
