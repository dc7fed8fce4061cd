package azdevops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// FetchCandidates lists the completed pull requests matching the selection,
// oldest completion first so picks replay in merge order.
func (c *Client) FetchCandidates(ctx context.Context, sel ports.Selection) ([]domain.Item, error) {
	var prs []pullRequest
	var err error
	if len(sel.PullRequestIDs) > 0 {
		prs, err = c.pullRequestsByID(ctx, sel.PullRequestIDs)
	} else {
		prs, err = c.completedPullRequests(ctx, sel.SourceBranch)
	}
	if err != nil {
		return nil, err
	}

	prs = filterPullRequests(prs, sel)
	sort.Slice(prs, func(i, j int) bool {
		if prs[i].ClosedDate.Equal(prs[j].ClosedDate) {
			return prs[i].PullRequestID < prs[j].PullRequestID
		}
		return prs[i].ClosedDate.Before(prs[j].ClosedDate)
	})

	items := make([]domain.Item, 0, len(prs))
	for _, pr := range prs {
		items = append(items, toItem(pr))
	}

	logging.Logger.Info("Fetched pick candidates",
		"project", c.Project,
		"repository", c.Repository,
		"count", len(items))
	return items, nil
}

// completedPullRequests pages through every completed pull request that
// targeted the given branch
func (c *Client) completedPullRequests(ctx context.Context, branch string) ([]pullRequest, error) {
	var all []pullRequest
	for skip := 0; ; skip += pageSize {
		path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pullrequests?searchCriteria.status=completed&searchCriteria.targetRefName=%s&$top=%d&$skip=%d",
			url.PathEscape(c.Project),
			url.PathEscape(c.Repository),
			url.QueryEscape("refs/heads/"+branch),
			pageSize, skip)

		respBody, err := c.doRequest(ctx, http.MethodGet, path, apiVersion, nil, "")
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}

		var page pullRequestListResponse
		if err := json.Unmarshal(respBody, &page); err != nil {
			return nil, fmt.Errorf("failed to parse pull request list: %w", err)
		}

		all = append(all, page.Value...)
		if len(page.Value) < pageSize {
			return all, nil
		}
	}
}

func (c *Client) pullRequestsByID(ctx context.Context, ids []int64) ([]pullRequest, error) {
	prs := make([]pullRequest, 0, len(ids))
	for _, id := range ids {
		path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pullrequests/%d",
			url.PathEscape(c.Project), url.PathEscape(c.Repository), id)

		respBody, err := c.doRequest(ctx, http.MethodGet, path, apiVersion, nil, "")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pull request %d: %w", id, err)
		}

		var pr pullRequest
		if err := json.Unmarshal(respBody, &pr); err != nil {
			return nil, fmt.Errorf("failed to parse pull request %d: %w", id, err)
		}
		if pr.Status != "completed" {
			return nil, fmt.Errorf("pull request %d is %s, only completed pull requests can be picked", id, pr.Status)
		}
		prs = append(prs, pr)
	}
	return prs, nil
}

func filterPullRequests(prs []pullRequest, sel ports.Selection) []pullRequest {
	filtered := prs[:0]
	for _, pr := range prs {
		if !sel.Since.IsZero() && pr.ClosedDate.Before(sel.Since) {
			continue
		}
		if !hasAllLabels(pr, sel.Labels) {
			continue
		}
		filtered = append(filtered, pr)
	}
	return filtered
}

func hasAllLabels(pr pullRequest, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, label := range pr.Labels {
			if strings.EqualFold(label.Name, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func toItem(pr pullRequest) domain.Item {
	item := domain.Item{
		PullRequestID: pr.PullRequestID,
		Status:        domain.ItemPending,
		Title:         pr.Title,
	}
	if pr.LastMergeCommit != nil {
		item.MergeCommit = pr.LastMergeCommit.CommitID
	}
	return item
}

// LinkedWorkItems resolves the work items associated with a pull request
func (c *Client) LinkedWorkItems(ctx context.Context, pullRequestID int64) ([]int, error) {
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pullRequests/%d/workitems",
		url.PathEscape(c.Project), url.PathEscape(c.Repository), pullRequestID)

	respBody, err := c.doRequest(ctx, http.MethodGet, path, apiVersion, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list work items for pull request %d: %w", pullRequestID, err)
	}

	var refs resourceRefListResponse
	if err := json.Unmarshal(respBody, &refs); err != nil {
		return nil, fmt.Errorf("failed to parse work item refs: %w", err)
	}

	ids := make([]int, 0, len(refs.Value))
	for _, ref := range refs.Value {
		id, err := strconv.Atoi(ref.ID)
		if err != nil {
			logging.Logger.Warn("Skipping unparsable work item reference",
				"pull_request_id", pullRequestID, "ref", ref.ID)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TagPullRequest adds a label to a pull request. Adding a label that is
// already present succeeds.
func (c *Client) TagPullRequest(ctx context.Context, pullRequestID int64, tag string) error {
	path := fmt.Sprintf("/%s/_apis/git/repositories/%s/pullRequests/%d/labels",
		url.PathEscape(c.Project), url.PathEscape(c.Repository), pullRequestID)

	body := labelCreateRequest{Name: tag}
	if _, err := c.doRequest(ctx, http.MethodPost, path, labelAPIVersion, body, "application/json"); err != nil {
		return fmt.Errorf("failed to tag pull request %d with %q: %w", pullRequestID, tag, err)
	}

	logging.Logger.Info("Tagged pull request", "pull_request_id", pullRequestID, "tag", tag)
	return nil
}

// AdvanceWorkItem moves a work item to the given workflow state
func (c *Client) AdvanceWorkItem(ctx context.Context, workItemID int, state string) error {
	path := fmt.Sprintf("/%s/_apis/wit/workitems/%d", url.PathEscape(c.Project), workItemID)

	ops := []patchOperation{
		{Op: "add", Path: "/fields/System.State", Value: state},
	}
	if _, err := c.doRequest(ctx, http.MethodPatch, path, apiVersion, ops, "application/json-patch+json"); err != nil {
		return fmt.Errorf("failed to advance work item %d to %q: %w", workItemID, state, err)
	}

	logging.Logger.Info("Advanced work item", "work_item_id", workItemID, "state", state)
	return nil
}
