package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickingOperation() *Operation {
	op := NewOperation("8a4f2c3e-0000-0000-0000-000000000001", "/home/dev/payments", time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC))
	op.Phase = PhasePicking
	op.SourceBranch = "develop"
	op.TargetBranch = "release/2025.11"
	op.ReleaseName = "2025.11.1"
	op.Items = []Item{
		{PullRequestID: 101, Title: "Fix rounding", MergeCommit: "aaa111", Status: ItemApplied},
		{PullRequestID: 102, Title: "Add audit log", MergeCommit: "bbb222", Status: ItemPending},
		{PullRequestID: 103, Title: "Retry webhooks", MergeCommit: "ccc333", Status: ItemPending},
	}
	op.CurrentIndex = 1
	return op
}

func TestOperation_Validate_AcceptsConsistentRecord(t *testing.T) {
	assert.NoError(t, pickingOperation().Validate())
}

func TestOperation_Validate_RejectsSchemaVersions(t *testing.T) {
	for _, version := range []int{0, 2, -1, 99} {
		op := pickingOperation()
		op.SchemaVersion = version
		err := op.Validate()
		assert.ErrorIs(t, err, ErrUnsupportedSchema)
	}
}

func TestOperation_Validate_RejectsInconsistentRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Operation)
		field  string
	}{
		{
			"missing operation id",
			func(o *Operation) { o.OperationID = "" },
			"operation_id",
		},
		{
			"missing repo path",
			func(o *Operation) { o.RepoPath = "" },
			"repo_path",
		},
		{
			"unknown phase",
			func(o *Operation) { o.Phase = "resolving" },
			"phase",
		},
		{
			"negative cursor",
			func(o *Operation) { o.CurrentIndex = -1 },
			"current_index",
		},
		{
			"cursor past the end",
			func(o *Operation) { o.CurrentIndex = 4 },
			"current_index",
		},
		{
			"unknown item status",
			func(o *Operation) { o.Items[1].Status = "done" },
			"items",
		},
		{
			"pending behind the cursor",
			func(o *Operation) { o.Items[0].Status = ItemPending; o.CurrentIndex = 2 },
			"items",
		},
		{
			"conflict away from the cursor",
			func(o *Operation) {
				o.Phase = PhaseAwaitingResolution
				o.ConflictedPaths = []string{"pkg/billing/invoice.go"}
				o.Items[2].Status = ItemConflict
			},
			"items",
		},
		{
			"conflict outside awaiting resolution",
			func(o *Operation) { o.Items[1].Status = ItemConflict },
			"items",
		},
		{
			"awaiting resolution without conflicted paths",
			func(o *Operation) {
				o.Phase = PhaseAwaitingResolution
				o.Items[1].Status = ItemConflict
			},
			"conflicted_paths",
		},
		{
			"conflicted paths outside awaiting resolution",
			func(o *Operation) { o.ConflictedPaths = []string{"go.sum"} },
			"conflicted_paths",
		},
		{
			"terminal phase without final status",
			func(o *Operation) {
				o.Phase = PhaseCompleted
				o.Items[1].Status = ItemApplied
				o.Items[2].Status = ItemApplied
				o.CurrentIndex = 3
			},
			"final_status",
		},
		{
			"final status in a live phase",
			func(o *Operation) { o.FinalStatus = FinalCompleted },
			"final_status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := pickingOperation()
			tt.mutate(op)

			err := op.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptRecord)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestOperation_Validate_AcceptsConflictAtCursor(t *testing.T) {
	op := pickingOperation()
	op.Phase = PhaseAwaitingResolution
	op.Items[1].Status = ItemConflict
	op.ConflictedPaths = []string{"internal/ledger/post.go", "internal/ledger/post_test.go"}

	assert.NoError(t, op.Validate())
}

func TestOperation_TransitionTo(t *testing.T) {
	op := pickingOperation()

	require.NoError(t, op.TransitionTo(PhaseAwaitingResolution))
	assert.Equal(t, PhaseAwaitingResolution, op.Phase)

	err := op.TransitionTo(PhaseCompleting)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Equal(t, PhaseAwaitingResolution, op.Phase, "failed transition must not move the phase")
}

func TestOperation_CurrentItem(t *testing.T) {
	op := pickingOperation()

	item := op.CurrentItem()
	require.NotNil(t, item)
	assert.Equal(t, int64(102), item.PullRequestID)

	op.CurrentIndex = len(op.Items)
	assert.Nil(t, op.CurrentItem())
}

func TestOperation_Clone_IsIndependent(t *testing.T) {
	op := pickingOperation()
	op.ConflictedPaths = nil
	op.Items[0].WorkItemIDs = []int{401, 402}

	clone := op.Clone()
	clone.Items[0].Status = ItemFailed
	clone.Items[0].WorkItemIDs[0] = 999
	clone.PostTasks = append(clone.PostTasks, PostTask{Kind: TaskTag, PullRequestID: 101, OK: true})
	clone.CurrentIndex = 2

	assert.Equal(t, ItemApplied, op.Items[0].Status)
	assert.Equal(t, 401, op.Items[0].WorkItemIDs[0])
	assert.Empty(t, op.PostTasks)
	assert.Equal(t, 1, op.CurrentIndex)
}

func TestOperation_Progress(t *testing.T) {
	op := pickingOperation()
	op.Items = append(op.Items,
		Item{PullRequestID: 104, MergeCommit: "ddd444", Status: ItemSkipped},
		Item{PullRequestID: 105, MergeCommit: "eee555", Status: ItemFailed, FailureReason: "bad object"},
	)

	progress := op.Progress()

	assert.Equal(t, Progress{Applied: 1, Failed: 1, Pending: 2, Skipped: 1, Total: 5}, progress)
}

func TestOperation_HasFailures(t *testing.T) {
	op := pickingOperation()
	assert.False(t, op.HasFailures())

	op.Items[2].Status = ItemSkipped
	assert.True(t, op.HasFailures())
}

func TestOperation_Finalize(t *testing.T) {
	op := pickingOperation()
	op.Items[1].Status = ItemApplied
	op.Items[2].Status = ItemApplied
	op.CurrentIndex = 3
	op.Phase = PhaseCompleted

	now := time.Date(2025, 11, 3, 16, 30, 0, 0, time.UTC)
	op.Finalize(FinalCompleted, now)

	require.NotNil(t, op.CompletedAt)
	assert.Equal(t, now, *op.CompletedAt)
	assert.Equal(t, FinalCompleted, op.FinalStatus)
	assert.NoError(t, op.Validate())
}

func TestOperation_Snapshot_CopiesRecord(t *testing.T) {
	op := pickingOperation()

	snap := op.Snapshot()
	snap.Operation.Items[0].Status = ItemSkipped

	assert.Equal(t, ItemApplied, op.Items[0].Status)
	assert.Equal(t, 1, snap.Progress.Applied)
	assert.Equal(t, 3, snap.Progress.Total)
}
