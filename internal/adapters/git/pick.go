package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// Apply cherry-picks one merge commit onto the operation's tree.
// A conflicted pick is not an error: the outcome carries the unresolved
// paths and the sequencer is left in place for resolution.
func (c *Client) Apply(ctx context.Context, op *domain.Operation, item domain.Item) (ports.ApplyOutcome, error) {
	if op.WorkTreePath == "" {
		return ports.ApplyOutcome{}, errors.New("operation has no tree to apply onto")
	}

	logging.Logger.Info("Applying commit",
		"pull_request_id", item.PullRequestID,
		"commit", item.MergeCommit,
		"tree", op.WorkTreePath)

	args := c.pickArgs(op)
	args = append(args, "cherry-pick", "-x", "--keep-redundant-commits")
	if merge, err := c.isMergeCommit(ctx, op.WorkTreePath, item.MergeCommit); err != nil {
		return ports.ApplyOutcome{}, err
	} else if merge {
		args = append(args, "--mainline", fmt.Sprint(op.MainlineParent))
	}
	args = append(args, item.MergeCommit)

	if _, err := runGit(ctx, op.WorkTreePath, args...); err != nil {
		conflicts, pathsErr := c.UnresolvedPaths(ctx, op.WorkTreePath)
		if pathsErr == nil && len(conflicts) > 0 {
			logging.Logger.Info("Pick stopped on conflict",
				"pull_request_id", item.PullRequestID,
				"paths", conflicts)
			return ports.ApplyOutcome{Conflicts: conflicts}, nil
		}
		if isConflictError(err) {
			// Conflict reported but no unmerged paths listed; surface what we know
			return ports.ApplyOutcome{Conflicts: conflicts}, nil
		}
		return ports.ApplyOutcome{}, err
	}

	noChanges, err := c.headIsEmpty(ctx, op.WorkTreePath)
	if err != nil {
		logging.Logger.Warn("Could not inspect picked commit", "error", err)
		noChanges = false
	}
	return ports.ApplyOutcome{NoChanges: noChanges}, nil
}

// UnresolvedPaths lists the files still carrying conflict markers
func (c *Client) UnresolvedPaths(ctx context.Context, treePath string) ([]string, error) {
	output, err := queryGit(ctx, treePath, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved paths: %w", err)
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// ResumeAfterResolution finishes the stopped cherry-pick once the human has
// resolved and staged the conflicted files. When files are still unresolved
// the outcome reports them and the sequencer stays put.
func (c *Client) ResumeAfterResolution(ctx context.Context, op *domain.Operation) (ports.ApplyOutcome, error) {
	remaining, err := c.UnresolvedPaths(ctx, op.WorkTreePath)
	if err != nil {
		return ports.ApplyOutcome{}, err
	}
	if len(remaining) > 0 {
		logging.Logger.Info("Resolution incomplete", "paths", remaining)
		return ports.ApplyOutcome{Conflicts: remaining}, nil
	}

	args := c.pickArgs(op)
	args = append(args, "-c", "core.editor=true", "cherry-pick", "--continue")
	if _, err := runGit(ctx, op.WorkTreePath, args...); err != nil {
		if isEmptyResolutionError(err) {
			// The resolution made the change set empty. Keep the record of
			// the pick as an empty commit and move on.
			if _, quitErr := runGit(ctx, op.WorkTreePath, "cherry-pick", "--quit"); quitErr != nil {
				return ports.ApplyOutcome{}, quitErr
			}
			if _, commitErr := runGit(ctx, op.WorkTreePath, "commit", "--allow-empty", "--no-edit"); commitErr != nil {
				return ports.ApplyOutcome{}, commitErr
			}
			return ports.ApplyOutcome{NoChanges: true}, nil
		}
		return ports.ApplyOutcome{}, err
	}

	return ports.ApplyOutcome{}, nil
}

// AbandonInProgress drops a stopped cherry-pick and restores the tree to
// its pre-pick state. Nothing in progress is not an error.
func (c *Client) AbandonInProgress(ctx context.Context, op *domain.Operation) error {
	if op.WorkTreePath == "" {
		return nil
	}
	if _, err := runGit(ctx, op.WorkTreePath, "cherry-pick", "--abort"); err != nil {
		if strings.Contains(err.Error(), "no cherry-pick") {
			logging.Logger.Debug("No cherry-pick in progress to abandon")
			return nil
		}
		return err
	}
	logging.Logger.Info("Abandoned in-progress pick", "tree", op.WorkTreePath)
	return nil
}

// pickArgs returns the config flags shared by mutating pick commands.
// Hook suppression applies to every mutation of the tree or none.
func (c *Client) pickArgs(op *domain.Operation) []string {
	if op.HooksEnabled {
		return nil
	}
	return []string{"-c", "core.hooksPath=" + os.DevNull}
}

// isMergeCommit reports whether the commit has more than one parent, which
// decides whether a mainline must be chosen
func (c *Client) isMergeCommit(ctx context.Context, treePath, commit string) (bool, error) {
	output, err := queryGit(ctx, treePath, "rev-list", "--parents", "-n", "1", commit)
	if err != nil {
		return false, fmt.Errorf("failed to inspect commit %s: %w", commit, err)
	}
	// Line format: <sha> <parent> [<parent>...]
	return len(strings.Fields(output)) > 2, nil
}

// headIsEmpty reports whether HEAD introduced no changes
func (c *Client) headIsEmpty(ctx context.Context, treePath string) (bool, error) {
	output, err := queryGit(ctx, treePath, "show", "--format=", "--numstat", "HEAD")
	if err != nil {
		return false, err
	}
	return output == "", nil
}

// isConflictError determines if a git error indicates a pick conflict
func isConflictError(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "conflict") ||
		strings.Contains(text, "could not apply")
}

// isEmptyResolutionError detects a continue that has nothing left to commit
func isEmptyResolutionError(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "nothing to commit") ||
		strings.Contains(text, "is now empty")
}
