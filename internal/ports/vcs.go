package ports

import (
	"context"

	"github.com/renato0307/cereja/internal/domain"
)

// Checkout describes the tree prepared for an operation
type Checkout struct {
	Auxiliary    bool
	BaseRepoPath string
	Path         string
}

// ApplyOutcome reports what a single cherry-pick attempt did
type ApplyOutcome struct {
	// Conflicts lists unresolved paths; non-empty means the pick stopped
	Conflicts []string
	// NoChanges is set when the change set was already present and an
	// empty commit was recorded instead
	NoChanges bool
}

// TreeManager prepares and removes the tree an operation mutates
type TreeManager interface {
	SetupTree(ctx context.Context, op *domain.Operation, useWorktree bool) (Checkout, error)
	TeardownTree(ctx context.Context, op *domain.Operation) error
}

// Picker applies merge commits to the tree one at a time
type Picker interface {
	AbandonInProgress(ctx context.Context, op *domain.Operation) error
	Apply(ctx context.Context, op *domain.Operation, item domain.Item) (ApplyOutcome, error)
	ResumeAfterResolution(ctx context.Context, op *domain.Operation) (ApplyOutcome, error)
	UnresolvedPaths(ctx context.Context, treePath string) ([]string, error)
}

// RepoInspector queries local repository information
type RepoInspector interface {
	DiscoverRoot(path string) (string, error)
	ValidateBranchName(name string) error
}

// VersionControl is the composite interface
type VersionControl interface {
	Picker
	RepoInspector
	TreeManager
}
