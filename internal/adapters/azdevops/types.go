// Package azdevops implements the review platform ports against the
// Azure DevOps REST API.
package azdevops

import (
	"fmt"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	pageSize       = 100

	apiVersion = "7.1"
	// The pull request labels endpoint has no GA release
	labelAPIVersion = "7.1-preview.1"
)

// pullRequest is the subset of the Git pull request resource the picker
// needs. Completed pull requests carry the merge commit that lands on the
// target branch.
type pullRequest struct {
	ClosedDate      time.Time   `json:"closedDate"`
	CreatedBy       identityRef `json:"createdBy"`
	Labels          []labelRef  `json:"labels"`
	LastMergeCommit *commitRef  `json:"lastMergeCommit"`
	PullRequestID   int64       `json:"pullRequestId"`
	SourceRefName   string      `json:"sourceRefName"`
	Status          string      `json:"status"`
	TargetRefName   string      `json:"targetRefName"`
	Title           string      `json:"title"`
}

type pullRequestListResponse struct {
	Count int           `json:"count"`
	Value []pullRequest `json:"value"`
}

type commitRef struct {
	CommitID string `json:"commitId"`
}

type labelRef struct {
	Active bool   `json:"active"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

type identityRef struct {
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
}

// resourceRef links a pull request to an artifact such as a work item.
// The API returns work item IDs as strings.
type resourceRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type resourceRefListResponse struct {
	Count int           `json:"count"`
	Value []resourceRef `json:"value"`
}

type labelCreateRequest struct {
	Name string `json:"name"`
}

// patchOperation is a JSON Patch entry for work item updates
type patchOperation struct {
	From  string `json:"from,omitempty"`
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// apiError carries the HTTP status so the retry policy can distinguish
// throttling and server faults from caller mistakes
type apiError struct {
	Body   string
	Status int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
}
