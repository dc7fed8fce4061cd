package ports

import (
	"context"
	"time"

	"github.com/renato0307/cereja/internal/domain"
)

// Selection filters the completed pull requests to pick
type Selection struct {
	Labels         []string
	PullRequestIDs []int64
	Since          time.Time
	SourceBranch   string
}

// CandidateFetcher lists completed pull requests matching a selection.
// Returned items keep the platform's completion order and may lack a merge
// commit; filtering is the caller's job.
type CandidateFetcher interface {
	FetchCandidates(ctx context.Context, sel Selection) ([]domain.Item, error)
}

// WorkItemReader resolves the work items linked to a pull request
type WorkItemReader interface {
	LinkedWorkItems(ctx context.Context, pullRequestID int64) ([]int, error)
}

// Tagger labels pull requests that were picked into a release
type Tagger interface {
	TagPullRequest(ctx context.Context, pullRequestID int64, tag string) error
}

// WorkItemAdvancer moves work items to their next workflow state
type WorkItemAdvancer interface {
	AdvanceWorkItem(ctx context.Context, workItemID int, state string) error
}

// ReviewPlatform is the composite interface
type ReviewPlatform interface {
	CandidateFetcher
	Tagger
	WorkItemAdvancer
	WorkItemReader
}
