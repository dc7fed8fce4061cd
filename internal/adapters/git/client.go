package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// Client drives the git CLI for tree setup and cherry-picking
type Client struct {
	treesDir string
}

// Compile-time check that Client implements the port
var _ ports.VersionControl = (*Client)(nil)

// NewClient creates a git client that places managed clones under treesDir
func NewClient(treesDir string) *Client {
	return &Client{treesDir: treesDir}
}

// runGit executes git with the given args inside dir and returns the
// combined output. Failures carry the trimmed output in the error.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	logging.Logger.Debug("Running git", "dir", dir, "args", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(output))
	if err != nil {
		logging.Logger.Debug("Git command failed", "args", args, "error", err, "output", text)
		return text, fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, text)
	}
	return text, nil
}

// queryGit executes git and returns stdout only, for read-only queries
func queryGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// DiscoverRoot resolves the repository root containing path
func (c *Client) DiscoverRoot(path string) (string, error) {
	logging.Logger.Debug("Discovering repository root", "path", path)

	root, err := queryGit(context.Background(), path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %s", path)
	}

	logging.Logger.Debug("Found repository root", "root", root)
	return root, nil
}

// ValidateBranchName checks a user-provided branch name against git rules
func (c *Client) ValidateBranchName(name string) error {
	return validateBranchName(name)
}
