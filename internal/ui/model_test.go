package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/domain"
)

func TestEventLine(t *testing.T) {
	at := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	item := domain.Item{PullRequestID: 104, Title: "Fix payment rounding", Status: domain.ItemPending}

	tests := []struct {
		name  string
		event domain.Event
		want  string
	}{
		{
			name:  "item started",
			event: domain.NewItemEvent(domain.EventItemStarted, item, at),
			want:  "picking PR 104: Fix payment rounding",
		},
		{
			name:  "conflict",
			event: domain.NewConflictEvent(item, []string{"go.sum", "shared.txt"}, at),
			want:  "conflict on PR 104 in 2 file(s)",
		},
		{
			name:  "phase change",
			event: domain.NewPhaseEvent(domain.PhasePicking, at),
			want:  "entering picking",
		},
		{
			name:  "finished",
			event: domain.NewFinishedEvent(domain.PhaseCompleted, domain.FinalCompleted, at),
			want:  "operation completed",
		},
		{
			name:  "error",
			event: domain.NewErrorEvent(fmt.Errorf("device flow token expired"), at),
			want:  "error: device flow token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventLine(tt.event))
		})
	}
}

func TestTaskLine(t *testing.T) {
	tests := []struct {
		name string
		task domain.PostTask
		want string
	}{
		{
			name: "tag done",
			task: domain.PostTask{Kind: domain.TaskTag, OK: true, PullRequestID: 104},
			want: "tag PR 104 done",
		},
		{
			name: "work items done",
			task: domain.PostTask{Kind: domain.TaskWorkItems, OK: true, PullRequestID: 104},
			want: "work items for PR 104 done",
		},
		{
			name: "tag failed",
			task: domain.PostTask{Detail: "403 Forbidden", Kind: domain.TaskTag, PullRequestID: 104},
			want: "tag PR 104 failed: 403 Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taskLine(&tt.task))
		})
	}
}

func TestItemDetail(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		want string
	}{
		{
			name: "failure reason wins",
			item: domain.Item{FailureReason: "merge conflict in 2 files", MergeCommit: "abc1234def", Status: domain.ItemConflict},
			want: "merge conflict in 2 files",
		},
		{
			name: "commit and work items",
			item: domain.Item{MergeCommit: "abc1234def5678", Status: domain.ItemApplied, WorkItemIDs: []int{501, 502}},
			want: "abc1234d · 2 work item(s)",
		},
		{
			name: "bare status",
			item: domain.Item{Status: domain.ItemPending},
			want: "pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemDetail(tt.item))
		})
	}
}

func TestBuildItems_MarksTheCursor(t *testing.T) {
	op := &domain.Operation{
		CurrentIndex: 1,
		Items: []domain.Item{
			{PullRequestID: 101, Status: domain.ItemApplied},
			{PullRequestID: 102, Status: domain.ItemConflict},
			{PullRequestID: 103, Status: domain.ItemPending},
		},
		Phase: domain.PhaseAwaitingResolution,
	}

	items := buildItems(op)
	require.Len(t, items, 3)
	assert.False(t, items[0].(operationItem).current)
	assert.True(t, items[1].(operationItem).current)
	assert.False(t, items[2].(operationItem).current)
}

func TestBuildItems_NoCursorOnTerminalRecords(t *testing.T) {
	op := &domain.Operation{
		CurrentIndex: 1,
		FinalStatus:  domain.FinalCompleted,
		Items: []domain.Item{
			{PullRequestID: 101, Status: domain.ItemApplied},
			{PullRequestID: 102, Status: domain.ItemApplied},
		},
		Phase: domain.PhaseCompleted,
	}

	for _, item := range buildItems(op) {
		assert.False(t, item.(operationItem).current)
	}
}

func TestStartFormRequest(t *testing.T) {
	hooks := false
	mainline := 2
	settings := &config.Settings{
		HooksEnabled:   &hooks,
		MainlineParent: &mainline,
		Organization:   "payments",
		Project:        "platform",
		Repository:     "checkout",
	}

	form := NewStartForm(settings)
	form.raw.labels = "release-candidate, hotfix"
	form.raw.pullRequests = "101, 104"
	form.raw.releaseName = "2025.11.1"
	form.raw.since = "2025-11-01"
	form.raw.sourceBranch = "develop"
	form.raw.targetBranch = "release/2025.11"

	req, err := form.Request(settings, "/work/checkout")
	require.NoError(t, err)

	assert.Equal(t, []string{"release-candidate", "hotfix"}, req.Labels)
	assert.Equal(t, []int64{101, 104}, req.PullRequestIDs)
	assert.Equal(t, "2025.11.1", req.ReleaseName)
	assert.Equal(t, "/work/checkout", req.RepoPath)
	assert.Equal(t, "payments", req.Organization)
	assert.Equal(t, 2, req.MainlineParent)
	assert.False(t, req.HooksEnabled)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), req.Since)
}

func TestStartFormRequest_RequiresConnectionSettings(t *testing.T) {
	form := NewStartForm(nil)
	form.raw.releaseName = "2025.11.1"
	form.raw.sourceBranch = "develop"
	form.raw.targetBranch = "release/2025.11"

	_, err := form.Request(&config.Settings{}, "/work/checkout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings.json")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, formatErrorForDisplay(nil, 80))
	})

	t.Run("short error", func(t *testing.T) {
		got := formatErrorForDisplay(fmt.Errorf("lock held"), 80)
		assert.Equal(t, "Error: lock held", got)
	})

	t.Run("long error truncates", func(t *testing.T) {
		long := fmt.Errorf("%s", strings.Repeat("word ", 60))
		got := formatErrorForDisplay(long, 40)
		lines := strings.Split(got, "\n")
		assert.LessOrEqual(t, len(lines), 2)
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestPhaseBadge_UsesThePhaseName(t *testing.T) {
	for _, phase := range []domain.Phase{
		domain.PhaseLoading,
		domain.PhasePicking,
		domain.PhaseAwaitingResolution,
		domain.PhaseReadyToComplete,
		domain.PhaseCompleted,
		domain.PhaseAborted,
	} {
		assert.Contains(t, phaseBadge(phase), string(phase))
	}
}
