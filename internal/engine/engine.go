// Package engine drives one unit of work at a time through an operation's
// phases. It works on record clones and never persists or locks: callers
// own persistence timing, which keeps crash recovery a pure replay of the
// last saved record.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// enrichmentConcurrency bounds the work item lookups during loading
const enrichmentConcurrency = 4

// Outcome classifies what a step did
type Outcome string

const (
	// OutcomeAdvanced means the step finished a unit of work and the
	// operation can take another step
	OutcomeAdvanced Outcome = "advanced"
	// OutcomeConflict means the operation stopped on a conflict and needs
	// a human before it can move again
	OutcomeConflict Outcome = "conflict"
	// OutcomeDone means there is no work left in the current phase
	OutcomeDone Outcome = "done"
	// OutcomeFailed means the current item failed and was passed over
	OutcomeFailed Outcome = "failed"
)

// Result carries the stepped record. Operation is always a clone of the
// input; the caller decides when to persist it.
type Result struct {
	Operation *domain.Operation
	Outcome   Outcome
}

// Engine applies phase semantics through the collaborator ports
type Engine struct {
	review ports.ReviewPlatform
	vcs    ports.VersionControl
}

// New creates an engine
func New(vcs ports.VersionControl, review ports.ReviewPlatform) *Engine {
	return &Engine{review: review, vcs: vcs}
}

// Load fetches the candidate pull requests for a fresh record and moves it
// to setup. The selection is not persisted, so only the start flow can call
// this; a record stranded in loading can only be aborted.
func (e *Engine) Load(ctx context.Context, op *domain.Operation, sel ports.Selection) (Result, error) {
	if op.Phase != domain.PhaseLoading {
		return Result{}, fmt.Errorf("%w: load requires %s, operation is %s", domain.ErrWrongPhase, domain.PhaseLoading, op.Phase)
	}
	next := op.Clone()

	candidates, err := e.review.FetchCandidates(ctx, sel)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	items := make([]domain.Item, 0, len(candidates))
	for _, item := range candidates {
		if item.MergeCommit == "" {
			logging.Logger.Warn("Dropping candidate without a merge commit",
				"pull_request_id", item.PullRequestID, "title", item.Title)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return Result{}, fmt.Errorf("%w: no completed pull requests matched the selection", domain.ErrNothingMatched)
	}

	if err := e.enrichWorkItems(ctx, items); err != nil {
		return Result{}, err
	}

	next.Items = items
	if err := next.TransitionTo(domain.PhaseSetup); err != nil {
		return Result{}, err
	}

	logging.Logger.Info("Loaded pick candidates", "count", len(items), "release", next.ReleaseName)
	return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
}

func (e *Engine) enrichWorkItems(ctx context.Context, items []domain.Item) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)
	for i := range items {
		g.Go(func() error {
			ids, err := e.review.LinkedWorkItems(gctx, items[i].PullRequestID)
			if err != nil {
				return fmt.Errorf("failed to resolve work items for pull request %d: %w", items[i].PullRequestID, err)
			}
			items[i].WorkItemIDs = ids
			return nil
		})
	}
	return g.Wait()
}

// Step performs one phase-appropriate unit of work
func (e *Engine) Step(ctx context.Context, op *domain.Operation) (Result, error) {
	if op.Phase.Terminal() {
		return Result{}, fmt.Errorf("%w: operation finished as %s", domain.ErrOperationTerminal, op.FinalStatus)
	}

	next := op.Clone()
	switch next.Phase {
	case domain.PhaseLoading:
		return Result{}, fmt.Errorf("%w: loading needs the candidate selection, restart the operation", domain.ErrWrongPhase)
	case domain.PhaseSetup:
		return e.stepSetup(ctx, next)
	case domain.PhasePicking:
		return e.stepPicking(ctx, next)
	case domain.PhaseAwaitingResolution:
		// Stepping does not resolve conflicts; the record is unchanged
		return Result{Operation: next, Outcome: OutcomeConflict}, nil
	case domain.PhaseReadyToComplete, domain.PhaseCompleting:
		return Result{Operation: next, Outcome: OutcomeDone}, nil
	default:
		return Result{}, fmt.Errorf("unknown phase %q", next.Phase)
	}
}

func (e *Engine) stepSetup(ctx context.Context, next *domain.Operation) (Result, error) {
	checkout, err := e.vcs.SetupTree(ctx, next, next.IsAuxiliaryCheckout)
	if err != nil {
		return Result{}, fmt.Errorf("failed to set up tree: %w", err)
	}

	next.WorkTreePath = checkout.Path
	next.IsAuxiliaryCheckout = checkout.Auxiliary
	if checkout.Auxiliary {
		next.BaseRepoPath = checkout.BaseRepoPath
	} else {
		next.BaseRepoPath = ""
	}

	if err := next.TransitionTo(domain.PhasePicking); err != nil {
		return Result{}, err
	}
	return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
}

func (e *Engine) stepPicking(ctx context.Context, next *domain.Operation) (Result, error) {
	if next.CurrentIndex >= len(next.Items) {
		if err := next.TransitionTo(domain.PhaseReadyToComplete); err != nil {
			return Result{}, err
		}
		logging.Logger.Info("All items processed", "release", next.ReleaseName)
		return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
	}

	item := &next.Items[next.CurrentIndex]
	outcome, err := e.vcs.Apply(ctx, next, *item)
	if err != nil {
		item.Status = domain.ItemFailed
		item.FailureReason = err.Error()
		if abandonErr := e.vcs.AbandonInProgress(ctx, next); abandonErr != nil {
			logging.Logger.Warn("Failed to abandon partial pick", "error", abandonErr)
		}
		next.CurrentIndex++
		logging.Logger.Error("Item failed",
			"pull_request_id", item.PullRequestID, "error", err)
		return Result{Operation: next, Outcome: OutcomeFailed}, nil
	}

	if len(outcome.Conflicts) > 0 {
		item.Status = domain.ItemConflict
		next.ConflictedPaths = outcome.Conflicts
		if err := next.TransitionTo(domain.PhaseAwaitingResolution); err != nil {
			return Result{}, err
		}
		logging.Logger.Info("Conflict detected",
			"pull_request_id", item.PullRequestID, "paths", outcome.Conflicts)
		return Result{Operation: next, Outcome: OutcomeConflict}, nil
	}

	item.Status = domain.ItemApplied
	if outcome.NoChanges {
		logging.Logger.Info("Change already present, recorded as empty commit",
			"pull_request_id", item.PullRequestID)
	}
	next.CurrentIndex++
	return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
}

// Resume finalizes the pick after a human resolved the conflicted paths. If
// unresolved paths remain the operation stays put and reports them.
func (e *Engine) Resume(ctx context.Context, op *domain.Operation) (Result, error) {
	if op.Phase != domain.PhaseAwaitingResolution {
		return Result{}, fmt.Errorf("%w: continue requires %s, operation is %s", domain.ErrWrongPhase, domain.PhaseAwaitingResolution, op.Phase)
	}
	next := op.Clone()

	outcome, err := e.vcs.ResumeAfterResolution(ctx, next)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resume after resolution: %w", err)
	}

	if len(outcome.Conflicts) > 0 {
		next.ConflictedPaths = outcome.Conflicts
		logging.Logger.Info("Conflicts still unresolved", "paths", outcome.Conflicts)
		return Result{Operation: next, Outcome: OutcomeConflict}, nil
	}

	item := &next.Items[next.CurrentIndex]
	item.Status = domain.ItemApplied
	item.FailureReason = ""
	next.ConflictedPaths = nil
	next.CurrentIndex++
	if err := next.TransitionTo(domain.PhasePicking); err != nil {
		return Result{}, err
	}

	logging.Logger.Info("Conflict resolved", "pull_request_id", item.PullRequestID)
	return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
}

// Skip abandons the conflicted item and moves on
func (e *Engine) Skip(ctx context.Context, op *domain.Operation) (Result, error) {
	if op.Phase != domain.PhaseAwaitingResolution {
		return Result{}, fmt.Errorf("%w: skip requires %s, operation is %s", domain.ErrWrongPhase, domain.PhaseAwaitingResolution, op.Phase)
	}
	next := op.Clone()

	if err := e.vcs.AbandonInProgress(ctx, next); err != nil {
		return Result{}, fmt.Errorf("failed to abandon conflicted pick: %w", err)
	}

	item := &next.Items[next.CurrentIndex]
	item.Status = domain.ItemSkipped
	item.FailureReason = "unresolved conflict skipped"
	next.ConflictedPaths = nil
	next.CurrentIndex++
	if err := next.TransitionTo(domain.PhasePicking); err != nil {
		return Result{}, err
	}

	logging.Logger.Info("Item skipped", "pull_request_id", item.PullRequestID)
	return Result{Operation: next, Outcome: OutcomeAdvanced}, nil
}

// Complete runs the post-pick tasks (tag picked pull requests, advance
// their work items) and finalizes the record. Task failures degrade the
// final status instead of stopping the run.
func (e *Engine) Complete(ctx context.Context, op *domain.Operation, workItemState string) (Result, error) {
	if op.Phase != domain.PhaseReadyToComplete {
		return Result{}, fmt.Errorf("%w: complete requires %s, operation is %s", domain.ErrWrongPhase, domain.PhaseReadyToComplete, op.Phase)
	}
	next := op.Clone()
	if err := next.TransitionTo(domain.PhaseCompleting); err != nil {
		return Result{}, err
	}

	tag := "cherry-picked/" + next.ReleaseName
	tasksFailed := false
	for _, item := range next.Items {
		if item.Status != domain.ItemApplied {
			continue
		}

		task := domain.PostTask{Kind: domain.TaskTag, OK: true, PullRequestID: item.PullRequestID}
		if err := e.review.TagPullRequest(ctx, item.PullRequestID, tag); err != nil {
			task.OK = false
			task.Detail = err.Error()
			tasksFailed = true
			logging.Logger.Warn("Failed to tag pull request",
				"pull_request_id", item.PullRequestID, "error", err)
		}
		next.PostTasks = append(next.PostTasks, task)

		if len(item.WorkItemIDs) == 0 || workItemState == "" {
			continue
		}
		next.PostTasks = append(next.PostTasks, e.advanceWorkItems(ctx, item, workItemState, &tasksFailed))
	}

	if err := next.TransitionTo(domain.PhaseCompleted); err != nil {
		return Result{}, err
	}
	final := domain.FinalCompleted
	if next.HasFailures() || tasksFailed {
		final = domain.FinalCompletedWithErrors
	}
	next.Finalize(final, time.Now().UTC())

	logging.Logger.Info("Operation completed",
		"release", next.ReleaseName, "final_status", final)
	return Result{Operation: next, Outcome: OutcomeDone}, nil
}

func (e *Engine) advanceWorkItems(ctx context.Context, item domain.Item, state string, tasksFailed *bool) domain.PostTask {
	task := domain.PostTask{Kind: domain.TaskWorkItems, OK: true, PullRequestID: item.PullRequestID}

	var failures []string
	for _, id := range item.WorkItemIDs {
		if err := e.review.AdvanceWorkItem(ctx, id, state); err != nil {
			failures = append(failures, fmt.Sprintf("work item %d: %v", id, err))
			logging.Logger.Warn("Failed to advance work item",
				"work_item_id", id, "pull_request_id", item.PullRequestID, "error", err)
		}
	}
	if len(failures) > 0 {
		task.OK = false
		task.Detail = strings.Join(failures, "; ")
		*tasksFailed = true
	}
	return task
}

// Abort tears the operation down from any non-terminal phase. Cleanup is
// best-effort: teardown failures are logged and the record still ends
// aborted.
func (e *Engine) Abort(ctx context.Context, op *domain.Operation) (Result, error) {
	if op.Phase.Terminal() {
		return Result{}, fmt.Errorf("%w: operation finished as %s", domain.ErrOperationTerminal, op.FinalStatus)
	}
	next := op.Clone()

	if next.Phase == domain.PhaseAwaitingResolution {
		if err := e.vcs.AbandonInProgress(ctx, next); err != nil {
			logging.Logger.Warn("Failed to abandon in-progress pick during abort", "error", err)
		}
		if item := next.CurrentItem(); item != nil && item.Status == domain.ItemConflict {
			item.Status = domain.ItemSkipped
			item.FailureReason = "unresolved when the operation was aborted"
		}
		next.ConflictedPaths = nil
	}

	if next.WorkTreePath != "" {
		if err := e.vcs.TeardownTree(ctx, next); err != nil {
			logging.Logger.Warn("Failed to tear down tree during abort",
				"path", next.WorkTreePath, "error", err)
		}
	}

	if err := next.TransitionTo(domain.PhaseAborted); err != nil {
		return Result{}, err
	}
	next.Finalize(domain.FinalAborted, time.Now().UTC())

	logging.Logger.Info("Operation aborted", "release", next.ReleaseName)
	return Result{Operation: next, Outcome: OutcomeDone}, nil
}
