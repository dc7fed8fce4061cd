package services

import (
	"fmt"
	"time"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/engine"
)

// StartRequest contains parameters for starting a pick operation
type StartRequest struct {
	HooksEnabled   bool
	Labels         []string
	MainlineParent int
	Organization   string
	Project        string
	PullRequestIDs []int64
	ReleaseName    string
	RepoPath       string
	Repository     string
	Since          time.Time
	SourceBranch   string
	TargetBranch   string
	UseWorktree    bool
}

func (r StartRequest) validate() error {
	if r.SourceBranch == "" {
		return fmt.Errorf("source branch is required")
	}
	if r.TargetBranch == "" {
		return fmt.Errorf("target branch is required")
	}
	if r.ReleaseName == "" {
		return fmt.Errorf("release name is required")
	}
	if r.SourceBranch == r.TargetBranch {
		return fmt.Errorf("source and target branches are the same: %s", r.SourceBranch)
	}
	if len(r.Labels) == 0 && len(r.PullRequestIDs) == 0 && r.Since.IsZero() {
		return fmt.Errorf("a selection is required: labels, pull request ids, or a since date")
	}
	return nil
}

// Outcome is what a runner renders when a service call returns. Result says
// why the run stopped; Snapshot is the persisted record at that moment.
type Outcome struct {
	Result   engine.Outcome  `json:"result"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

// Clock returns the current time; injected so tests control timestamps
type Clock func() time.Time
