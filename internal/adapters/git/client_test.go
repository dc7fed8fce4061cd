package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cereja/internal/domain"
)

// testRepo is a local repository with a release branch, a develop branch,
// and merge commits simulating completed pull requests
type testRepo struct {
	path string
	// mergeFeature is the merge commit that brought feature.txt to develop
	mergeFeature string
	// mergeConflicting is a merge commit that collides with release's own
	// edit of shared.txt
	mergeConflicting string
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return string(out)
}

func writeAndCommit(t *testing.T, dir, file, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	git(t, dir, "add", file)
	git(t, dir, "commit", "-m", message)
}

func setupPickRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()

	git(t, dir, "init")
	git(t, dir, "config", "user.email", "test@test.com")
	git(t, dir, "config", "user.name", "Test")
	writeAndCommit(t, dir, "README.md", "# payments\n", "Initial commit")
	writeAndCommit(t, dir, "shared.txt", "original\n", "Add shared file")

	git(t, dir, "checkout", "-b", "release")
	git(t, dir, "checkout", "-b", "develop")

	// PR 1: a clean feature, merged with a merge commit
	git(t, dir, "checkout", "-b", "feature-1")
	writeAndCommit(t, dir, "feature.txt", "feature work\n", "Add feature")
	git(t, dir, "checkout", "develop")
	git(t, dir, "merge", "--no-ff", "--no-edit", "feature-1")
	repo := &testRepo{path: dir}
	repo.mergeFeature = revParse(t, dir, "HEAD")

	// Release diverges on shared.txt before PR 2 lands
	git(t, dir, "checkout", "release")
	writeAndCommit(t, dir, "shared.txt", "release change\n", "Release side edit")

	// PR 2: edits the same line of shared.txt on develop
	git(t, dir, "checkout", "develop")
	git(t, dir, "checkout", "-b", "feature-2")
	writeAndCommit(t, dir, "shared.txt", "develop change\n", "Develop side edit")
	git(t, dir, "checkout", "develop")
	git(t, dir, "merge", "--no-ff", "--no-edit", "feature-2")
	repo.mergeConflicting = revParse(t, dir, "HEAD")

	git(t, dir, "checkout", "develop")
	return repo
}

func revParse(t *testing.T, dir, ref string) string {
	t.Helper()
	return strings.TrimSpace(git(t, dir, "rev-parse", ref))
}

func newTestOperation(repo *testRepo) *domain.Operation {
	op := domain.NewOperation("77777777-8888-9999-aaaa-bbbbbbbbbbbb", repo.path, time.Now().UTC())
	op.SourceBranch = "develop"
	op.TargetBranch = "release"
	op.ReleaseName = "2025.11.1"
	return op
}

func TestPickBranchName(t *testing.T) {
	name, err := PickBranchName("2025.11.1")
	require.NoError(t, err)
	assert.Equal(t, "pick/2025.11.1", name)

	name, err = PickBranchName("Hotfix (Payments)")
	require.NoError(t, err)
	assert.Equal(t, "pick/hotfix-payments", name)

	_, err = PickBranchName("***")
	assert.Error(t, err)
}

func TestSetupTree_Clone(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)

	assert.False(t, checkout.Auxiliary)
	assert.Equal(t, repo.path, checkout.BaseRepoPath)
	assert.DirExists(t, checkout.Path)

	branch := git(t, checkout.Path, "rev-parse", "--abbrev-ref", "HEAD")
	assert.Contains(t, branch, "pick/2025.11.1")

	// The tree starts at the release tip, not develop's
	assert.FileExists(t, filepath.Join(checkout.Path, "shared.txt"))
	assert.NoFileExists(t, filepath.Join(checkout.Path, "feature.txt"))
}

func TestSetupTree_Worktree(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, true)
	require.NoError(t, err)

	assert.True(t, checkout.Auxiliary)
	assert.Equal(t, repo.path, checkout.BaseRepoPath)
	assert.DirExists(t, checkout.Path)

	branch := git(t, checkout.Path, "rev-parse", "--abbrev-ref", "HEAD")
	assert.Contains(t, branch, "pick/2025.11.1")
}

func TestSetupTree_RefusesExistingTree(t *testing.T) {
	repo := setupPickRepo(t)
	trees := t.TempDir()
	client := NewClient(trees)
	op := newTestOperation(repo)

	_, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)

	_, err = client.SetupTree(context.Background(), op, false)
	assert.ErrorContains(t, err, "already exists")
}

func TestApply_CleanMergeCommit(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	outcome, err := client.Apply(context.Background(), op, domain.Item{
		PullRequestID: 101,
		MergeCommit:   repo.mergeFeature,
	})

	require.NoError(t, err)
	assert.Empty(t, outcome.Conflicts)
	assert.False(t, outcome.NoChanges)
	assert.FileExists(t, filepath.Join(checkout.Path, "feature.txt"))
}

func TestApply_RedundantPickIsNoChanges(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	item := domain.Item{PullRequestID: 101, MergeCommit: repo.mergeFeature}
	_, err = client.Apply(context.Background(), op, item)
	require.NoError(t, err)

	outcome, err := client.Apply(context.Background(), op, item)

	require.NoError(t, err)
	assert.Empty(t, outcome.Conflicts)
	assert.True(t, outcome.NoChanges)
}

func TestApply_ConflictReportsPaths(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	outcome, err := client.Apply(context.Background(), op, domain.Item{
		PullRequestID: 102,
		MergeCommit:   repo.mergeConflicting,
	})

	require.NoError(t, err, "a conflict is an outcome, not an error")
	assert.Equal(t, []string{"shared.txt"}, outcome.Conflicts)

	paths, err := client.UnresolvedPaths(context.Background(), checkout.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared.txt"}, paths)
}

func TestResumeAfterResolution_StillConflicted(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	_, err = client.Apply(context.Background(), op, domain.Item{
		PullRequestID: 102,
		MergeCommit:   repo.mergeConflicting,
	})
	require.NoError(t, err)

	outcome, err := client.ResumeAfterResolution(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, []string{"shared.txt"}, outcome.Conflicts)
}

func TestResumeAfterResolution_Completes(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	_, err = client.Apply(context.Background(), op, domain.Item{
		PullRequestID: 102,
		MergeCommit:   repo.mergeConflicting,
	})
	require.NoError(t, err)

	// A human resolves and stages the file
	resolved := filepath.Join(checkout.Path, "shared.txt")
	require.NoError(t, os.WriteFile(resolved, []byte("merged change\n"), 0644))
	git(t, checkout.Path, "add", "shared.txt")

	outcome, err := client.ResumeAfterResolution(context.Background(), op)

	require.NoError(t, err)
	assert.Empty(t, outcome.Conflicts)

	paths, err := client.UnresolvedPaths(context.Background(), checkout.Path)
	require.NoError(t, err)
	assert.Empty(t, paths)

	subject := git(t, checkout.Path, "log", "-1", "--format=%s")
	assert.Contains(t, subject, "Develop side edit")
}

func TestAbandonInProgress(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path

	// Nothing in progress: a no-op
	require.NoError(t, client.AbandonInProgress(context.Background(), op))

	_, err = client.Apply(context.Background(), op, domain.Item{
		PullRequestID: 102,
		MergeCommit:   repo.mergeConflicting,
	})
	require.NoError(t, err)

	require.NoError(t, client.AbandonInProgress(context.Background(), op))

	paths, err := client.UnresolvedPaths(context.Background(), checkout.Path)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestTeardownTree_Clone(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, false)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path
	op.IsAuxiliaryCheckout = false

	require.NoError(t, client.TeardownTree(context.Background(), op))
	assert.NoDirExists(t, checkout.Path)

	// Idempotent on a missing tree
	require.NoError(t, client.TeardownTree(context.Background(), op))
}

func TestTeardownTree_Worktree(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())
	op := newTestOperation(repo)

	checkout, err := client.SetupTree(context.Background(), op, true)
	require.NoError(t, err)
	op.WorkTreePath = checkout.Path
	op.BaseRepoPath = checkout.BaseRepoPath
	op.IsAuxiliaryCheckout = true

	require.NoError(t, client.TeardownTree(context.Background(), op))
	assert.NoDirExists(t, checkout.Path)
}

func TestTeardownTree_RefusesForeignPath(t *testing.T) {
	client := NewClient(t.TempDir())
	foreign := t.TempDir()

	op := &domain.Operation{WorkTreePath: foreign}

	err := client.TeardownTree(context.Background(), op)
	assert.ErrorContains(t, err, "outside the managed directory")
	assert.DirExists(t, foreign)
}

func TestDiscoverRoot(t *testing.T) {
	repo := setupPickRepo(t)
	client := NewClient(t.TempDir())

	nested := filepath.Join(repo.path, "sub", "dir")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, err := client.DiscoverRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, resolvePath(t, repo.path), resolvePath(t, root))

	_, err = client.DiscoverRoot(t.TempDir())
	assert.Error(t, err)
}

// resolvePath normalizes symlinked temp dirs (macOS /private prefix)
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
