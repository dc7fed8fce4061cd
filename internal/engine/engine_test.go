package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/ports"
	portsmocks "github.com/renato0307/cereja/internal/ports/mocks"
)

func operationAt(phase domain.Phase, items ...domain.Item) *domain.Operation {
	op := domain.NewOperation("op-1", "/work/checkout", time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC))
	op.Organization = "payments"
	op.Project = "platform"
	op.Repository = "checkout"
	op.ReleaseName = "2025.11.1"
	op.SourceBranch = "develop"
	op.TargetBranch = "release"
	op.Phase = phase
	op.Items = items
	if phase != domain.PhaseLoading && phase != domain.PhaseSetup {
		op.WorkTreePath = "/work/.cereja/checkout-pick"
	}
	return op
}

func pendingItem(id int64) domain.Item {
	return domain.Item{
		MergeCommit:   fmt.Sprintf("commit-%d", id),
		PullRequestID: id,
		Status:        domain.ItemPending,
		Title:         fmt.Sprintf("PR %d", id),
	}
}

func TestLoad_FiltersAndEnriches(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	sel := ports.Selection{Labels: []string{"release-candidate"}}
	candidates := []domain.Item{
		pendingItem(101),
		{PullRequestID: 102, Status: domain.ItemPending, Title: "Reverted before merge"},
		pendingItem(103),
	}

	review.EXPECT().FetchCandidates(mock.Anything, sel).Return(candidates, nil)
	review.EXPECT().LinkedWorkItems(mock.Anything, int64(101)).Return([]int{501, 502}, nil)
	review.EXPECT().LinkedWorkItems(mock.Anything, int64(103)).Return(nil, nil)

	op := operationAt(domain.PhaseLoading)
	result, err := New(vcs, review).Load(context.Background(), op, sel)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhaseSetup, result.Operation.Phase)
	require.Len(t, result.Operation.Items, 2)
	assert.Equal(t, int64(101), result.Operation.Items[0].PullRequestID)
	assert.Equal(t, []int{501, 502}, result.Operation.Items[0].WorkItemIDs)
	assert.Equal(t, int64(103), result.Operation.Items[1].PullRequestID)
	assert.Empty(t, result.Operation.Items[1].WorkItemIDs)

	// The input record stays untouched; only the returned clone moved
	assert.Equal(t, domain.PhaseLoading, op.Phase)
	assert.Empty(t, op.Items)
}

func TestLoad_NothingMatched(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	review.EXPECT().FetchCandidates(mock.Anything, mock.Anything).
		Return([]domain.Item{{PullRequestID: 102, Status: domain.ItemPending}}, nil)

	op := operationAt(domain.PhaseLoading)
	_, err := New(vcs, review).Load(context.Background(), op, ports.Selection{})

	require.ErrorIs(t, err, domain.ErrNothingMatched)
}

func TestLoad_FetchErrorPropagates(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	review.EXPECT().FetchCandidates(mock.Anything, mock.Anything).
		Return(nil, errors.New("platform unavailable"))

	op := operationAt(domain.PhaseLoading)
	_, err := New(vcs, review).Load(context.Background(), op, ports.Selection{})

	require.ErrorContains(t, err, "platform unavailable")
}

func TestLoad_RequiresLoadingPhase(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))
	_, err := New(vcs, review).Load(context.Background(), op, ports.Selection{})

	require.ErrorIs(t, err, domain.ErrWrongPhase)
}

func TestLoad_EnrichmentErrorPropagates(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	review.EXPECT().FetchCandidates(mock.Anything, mock.Anything).
		Return([]domain.Item{pendingItem(101)}, nil)
	review.EXPECT().LinkedWorkItems(mock.Anything, int64(101)).
		Return(nil, errors.New("throttled"))

	op := operationAt(domain.PhaseLoading)
	_, err := New(vcs, review).Load(context.Background(), op, ports.Selection{})

	require.ErrorContains(t, err, "work items for pull request 101")
}

func TestStep_SetupPreparesAuxiliaryTree(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseSetup, pendingItem(101))
	op.IsAuxiliaryCheckout = true

	vcs.EXPECT().SetupTree(mock.Anything, mock.Anything, true).
		Return(ports.Checkout{
			Auxiliary:    true,
			BaseRepoPath: "/work/checkout",
			Path:         "/work/checkout-pick-2025.11.1",
		}, nil)

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhasePicking, result.Operation.Phase)
	assert.Equal(t, "/work/checkout-pick-2025.11.1", result.Operation.WorkTreePath)
	assert.Equal(t, "/work/checkout", result.Operation.BaseRepoPath)
	assert.True(t, result.Operation.IsAuxiliaryCheckout)
}

func TestStep_SetupClonePathClearsBaseRepo(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseSetup, pendingItem(101))
	op.BaseRepoPath = "/stale"

	vcs.EXPECT().SetupTree(mock.Anything, mock.Anything, false).
		Return(ports.Checkout{Auxiliary: false, Path: "/tmp/pick-clone"}, nil)

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/pick-clone", result.Operation.WorkTreePath)
	assert.Empty(t, result.Operation.BaseRepoPath)
	assert.False(t, result.Operation.IsAuxiliaryCheckout)
}

func TestStep_SetupFailureLeavesRecordAlone(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseSetup, pendingItem(101))

	vcs.EXPECT().SetupTree(mock.Anything, mock.Anything, false).
		Return(ports.Checkout{}, errors.New("target branch missing"))

	_, err := New(vcs, review).Step(context.Background(), op)

	require.ErrorContains(t, err, "failed to set up tree")
	assert.Equal(t, domain.PhaseSetup, op.Phase)
	assert.Empty(t, op.WorkTreePath)
}

func TestStep_PickingAppliesAndAdvances(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101), pendingItem(102))

	vcs.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{}, nil)

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhasePicking, result.Operation.Phase)
	assert.Equal(t, 1, result.Operation.CurrentIndex)
	assert.Equal(t, domain.ItemApplied, result.Operation.Items[0].Status)
	assert.Equal(t, domain.ItemPending, result.Operation.Items[1].Status)

	// Input record keeps its cursor; callers persist the clone
	assert.Equal(t, 0, op.CurrentIndex)
	assert.Equal(t, domain.ItemPending, op.Items[0].Status)
}

func TestStep_PickingConflictParks(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))

	vcs.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{Conflicts: []string{"shared.txt", "go.sum"}}, nil)

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, result.Outcome)
	assert.Equal(t, domain.PhaseAwaitingResolution, result.Operation.Phase)
	assert.Equal(t, []string{"shared.txt", "go.sum"}, result.Operation.ConflictedPaths)
	assert.Equal(t, domain.ItemConflict, result.Operation.Items[0].Status)
	assert.Equal(t, 0, result.Operation.CurrentIndex)
	require.NoError(t, result.Operation.Validate())
}

func TestStep_PickingFailureSkipsItem(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101), pendingItem(102))

	vcs.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{}, errors.New("bad object commit-101"))
	vcs.EXPECT().AbandonInProgress(mock.Anything, mock.Anything).Return(nil)

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, domain.PhasePicking, result.Operation.Phase)
	assert.Equal(t, 1, result.Operation.CurrentIndex)
	assert.Equal(t, domain.ItemFailed, result.Operation.Items[0].Status)
	assert.Equal(t, "bad object commit-101", result.Operation.Items[0].FailureReason)
}

func TestStep_PickingFailureToleratesAbandonError(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))

	vcs.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{}, errors.New("bad object"))
	vcs.EXPECT().AbandonInProgress(mock.Anything, mock.Anything).
		Return(errors.New("nothing in progress"))

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
}

func TestStep_CursorPastEndReadiesCompletion(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemApplied
	op := operationAt(domain.PhasePicking, item)
	op.CurrentIndex = 1

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhaseReadyToComplete, result.Operation.Phase)
}

func TestStep_AwaitingResolutionReportsConflict(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item)
	op.ConflictedPaths = []string{"shared.txt"}

	result, err := New(vcs, review).Step(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, result.Outcome)
	assert.Equal(t, domain.PhaseAwaitingResolution, result.Operation.Phase)
	assert.Equal(t, []string{"shared.txt"}, result.Operation.ConflictedPaths)
}

func TestStep_LoadingNeedsRestart(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseLoading)
	_, err := New(vcs, review).Step(context.Background(), op)

	require.ErrorIs(t, err, domain.ErrWrongPhase)
}

func TestStep_TerminalRejected(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseAborted)
	op.FinalStatus = domain.FinalAborted

	_, err := New(vcs, review).Step(context.Background(), op)

	require.ErrorIs(t, err, domain.ErrOperationTerminal)
}

func TestResume_StillConflicted(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item)
	op.ConflictedPaths = []string{"shared.txt", "go.sum"}

	vcs.EXPECT().ResumeAfterResolution(mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{Conflicts: []string{"go.sum"}}, nil)

	result, err := New(vcs, review).Resume(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, result.Outcome)
	assert.Equal(t, domain.PhaseAwaitingResolution, result.Operation.Phase)
	assert.Equal(t, []string{"go.sum"}, result.Operation.ConflictedPaths)
	assert.Equal(t, 0, result.Operation.CurrentIndex)
	require.NoError(t, result.Operation.Validate())
}

func TestResume_FinishesTheItem(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item, pendingItem(102))
	op.ConflictedPaths = []string{"shared.txt"}

	vcs.EXPECT().ResumeAfterResolution(mock.Anything, mock.Anything).
		Return(ports.ApplyOutcome{}, nil)

	result, err := New(vcs, review).Resume(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhasePicking, result.Operation.Phase)
	assert.Equal(t, domain.ItemApplied, result.Operation.Items[0].Status)
	assert.Empty(t, result.Operation.Items[0].FailureReason)
	assert.Nil(t, result.Operation.ConflictedPaths)
	assert.Equal(t, 1, result.Operation.CurrentIndex)
	require.NoError(t, result.Operation.Validate())
}

func TestResume_RequiresAwaitingResolution(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))
	_, err := New(vcs, review).Resume(context.Background(), op)

	require.ErrorIs(t, err, domain.ErrWrongPhase)
}

func TestSkip_MarksItemSkipped(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item, pendingItem(102))
	op.ConflictedPaths = []string{"shared.txt"}

	vcs.EXPECT().AbandonInProgress(mock.Anything, mock.Anything).Return(nil)

	result, err := New(vcs, review).Skip(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, result.Outcome)
	assert.Equal(t, domain.PhasePicking, result.Operation.Phase)
	assert.Equal(t, domain.ItemSkipped, result.Operation.Items[0].Status)
	assert.Equal(t, "unresolved conflict skipped", result.Operation.Items[0].FailureReason)
	assert.Nil(t, result.Operation.ConflictedPaths)
	assert.Equal(t, 1, result.Operation.CurrentIndex)
	require.NoError(t, result.Operation.Validate())
}

func TestSkip_AbandonFailureEscalates(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item)
	op.ConflictedPaths = []string{"shared.txt"}

	vcs.EXPECT().AbandonInProgress(mock.Anything, mock.Anything).
		Return(errors.New("index locked"))

	_, err := New(vcs, review).Skip(context.Background(), op)

	require.ErrorContains(t, err, "failed to abandon conflicted pick")
	assert.Equal(t, domain.PhaseAwaitingResolution, op.Phase)
	assert.Equal(t, domain.ItemConflict, op.Items[0].Status)
}

func completionFixture(statuses ...domain.ItemStatus) *domain.Operation {
	items := make([]domain.Item, len(statuses))
	for i, status := range statuses {
		items[i] = pendingItem(int64(101 + i))
		items[i].Status = status
	}
	op := operationAt(domain.PhaseReadyToComplete, items...)
	op.CurrentIndex = len(items)
	return op
}

func TestComplete_TagsAppliedItems(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied, domain.ItemApplied)

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), "cherry-picked/2025.11.1").Return(nil)
	review.EXPECT().TagPullRequest(mock.Anything, int64(102), "cherry-picked/2025.11.1").Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "")

	require.NoError(t, err)
	assert.Equal(t, OutcomeDone, result.Outcome)
	assert.Equal(t, domain.PhaseCompleted, result.Operation.Phase)
	assert.Equal(t, domain.FinalCompleted, result.Operation.FinalStatus)
	require.NotNil(t, result.Operation.CompletedAt)
	require.Len(t, result.Operation.PostTasks, 2)
	for _, task := range result.Operation.PostTasks {
		assert.Equal(t, domain.TaskTag, task.Kind)
		assert.True(t, task.OK)
	}
	require.NoError(t, result.Operation.Validate())
}

func TestComplete_SkippedItemsAreNotTagged(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied, domain.ItemSkipped)

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), mock.Anything).Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "")

	require.NoError(t, err)
	// A skipped item means the release is incomplete
	assert.Equal(t, domain.FinalCompletedWithErrors, result.Operation.FinalStatus)
	require.Len(t, result.Operation.PostTasks, 1)
	assert.Equal(t, int64(101), result.Operation.PostTasks[0].PullRequestID)
}

func TestComplete_AdvancesWorkItems(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied)
	op.Items[0].WorkItemIDs = []int{501, 502}

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), mock.Anything).Return(nil)
	review.EXPECT().AdvanceWorkItem(mock.Anything, 501, "Released").Return(nil)
	review.EXPECT().AdvanceWorkItem(mock.Anything, 502, "Released").Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "Released")

	require.NoError(t, err)
	assert.Equal(t, domain.FinalCompleted, result.Operation.FinalStatus)
	require.Len(t, result.Operation.PostTasks, 2)
	assert.Equal(t, domain.TaskWorkItems, result.Operation.PostTasks[1].Kind)
	assert.True(t, result.Operation.PostTasks[1].OK)
}

func TestComplete_NoStateSkipsWorkItems(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied)
	op.Items[0].WorkItemIDs = []int{501}

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), mock.Anything).Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "")

	require.NoError(t, err)
	require.Len(t, result.Operation.PostTasks, 1)
	assert.Equal(t, domain.TaskTag, result.Operation.PostTasks[0].Kind)
}

func TestComplete_TagFailureDegradesStatus(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied, domain.ItemApplied)

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), mock.Anything).
		Return(errors.New("API error 500: boom"))
	review.EXPECT().TagPullRequest(mock.Anything, int64(102), mock.Anything).Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "")

	require.NoError(t, err)
	assert.Equal(t, domain.FinalCompletedWithErrors, result.Operation.FinalStatus)
	require.Len(t, result.Operation.PostTasks, 2)
	assert.False(t, result.Operation.PostTasks[0].OK)
	assert.Contains(t, result.Operation.PostTasks[0].Detail, "API error 500")
	assert.True(t, result.Operation.PostTasks[1].OK)
}

func TestComplete_WorkItemFailureDegradesStatus(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := completionFixture(domain.ItemApplied)
	op.Items[0].WorkItemIDs = []int{501, 502}

	review.EXPECT().TagPullRequest(mock.Anything, int64(101), mock.Anything).Return(nil)
	review.EXPECT().AdvanceWorkItem(mock.Anything, 501, "Released").
		Return(errors.New("state not allowed"))
	review.EXPECT().AdvanceWorkItem(mock.Anything, 502, "Released").Return(nil)

	result, err := New(vcs, review).Complete(context.Background(), op, "Released")

	require.NoError(t, err)
	assert.Equal(t, domain.FinalCompletedWithErrors, result.Operation.FinalStatus)
	require.Len(t, result.Operation.PostTasks, 2)
	assert.False(t, result.Operation.PostTasks[1].OK)
	assert.Contains(t, result.Operation.PostTasks[1].Detail, "work item 501")
}

func TestComplete_RequiresReadyToComplete(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))
	_, err := New(vcs, review).Complete(context.Background(), op, "")

	require.ErrorIs(t, err, domain.ErrWrongPhase)
}

func TestAbort_FromPicking(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))

	vcs.EXPECT().TeardownTree(mock.Anything, mock.Anything).Return(nil)

	result, err := New(vcs, review).Abort(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, OutcomeDone, result.Outcome)
	assert.Equal(t, domain.PhaseAborted, result.Operation.Phase)
	assert.Equal(t, domain.FinalAborted, result.Operation.FinalStatus)
	require.NotNil(t, result.Operation.CompletedAt)
	require.NoError(t, result.Operation.Validate())
}

func TestAbort_RewritesConflictedItem(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	item := pendingItem(101)
	item.Status = domain.ItemConflict
	op := operationAt(domain.PhaseAwaitingResolution, item)
	op.ConflictedPaths = []string{"shared.txt"}

	vcs.EXPECT().AbandonInProgress(mock.Anything, mock.Anything).Return(nil)
	vcs.EXPECT().TeardownTree(mock.Anything, mock.Anything).Return(nil)

	result, err := New(vcs, review).Abort(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemSkipped, result.Operation.Items[0].Status)
	assert.Equal(t, "unresolved when the operation was aborted", result.Operation.Items[0].FailureReason)
	assert.Nil(t, result.Operation.ConflictedPaths)
	require.NoError(t, result.Operation.Validate())
}

func TestAbort_TeardownFailureStillAborts(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhasePicking, pendingItem(101))

	vcs.EXPECT().TeardownTree(mock.Anything, mock.Anything).
		Return(errors.New("directory busy"))

	result, err := New(vcs, review).Abort(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAborted, result.Operation.Phase)
	assert.Equal(t, domain.FinalAborted, result.Operation.FinalStatus)
}

func TestAbort_BeforeTreeExists(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseLoading)

	result, err := New(vcs, review).Abort(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAborted, result.Operation.Phase)
}

func TestAbort_TerminalRejected(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	review := portsmocks.NewMockReviewPlatform(t)

	op := operationAt(domain.PhaseCompleted)
	op.FinalStatus = domain.FinalCompleted
	op.CurrentIndex = 0

	_, err := New(vcs, review).Abort(context.Background(), op)

	require.ErrorIs(t, err, domain.ErrOperationTerminal)
}
