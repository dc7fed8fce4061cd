// Package services exposes the operation contract both front ends consume.
// The CLI calls the synchronous methods; the TUI holds an OperationHandle
// for the whole session. Every record mutation is persisted before control
// returns to the caller.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/engine"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// OperationService drives pick operations end to end: locking, persistence,
// engine stepping, and archival of terminal records.
type OperationService struct {
	clock   Clock
	engine  *engine.Engine
	history ports.HistoryArchive
	locker  ports.OperationLocker
	store   ports.RecordStore
	vcs     ports.VersionControl
}

// NewOperationService creates an OperationService
func NewOperationService(
	store ports.RecordStore,
	locker ports.OperationLocker,
	vcs ports.VersionControl,
	review ports.ReviewPlatform,
	history ports.HistoryArchive,
	clock Clock,
) *OperationService {
	return &OperationService{
		clock:   clock,
		engine:  engine.New(vcs, review),
		history: history,
		locker:  locker,
		store:   store,
		vcs:     vcs,
	}
}

// Start creates a record for the repository and drives it until a conflict,
// exhaustion, or an error. Returns domain.ErrLockHeld when another process
// owns the repository and domain.ErrOperationActive when a non-terminal
// record already exists.
func (s *OperationService) Start(ctx context.Context, req StartRequest) (*Outcome, error) {
	root, err := s.resolveRoot(req.RepoPath)
	if err != nil {
		return nil, err
	}

	lock, err := s.locker.Acquire(root)
	if err != nil {
		return nil, err
	}
	defer s.release(lock)

	op, out, err := s.startLocked(ctx, root, req, nil)
	if err != nil {
		return nil, err
	}
	return s.outcome(op, out), nil
}

// Continue resumes an operation waiting on conflict resolution. With skip
// the conflicted item is abandoned instead of picked up.
func (s *OperationService) Continue(ctx context.Context, repoPath string, skip bool) (*Outcome, error) {
	root, err := s.resolveRoot(repoPath)
	if err != nil {
		return nil, err
	}

	lock, err := s.locker.Acquire(root)
	if err != nil {
		return nil, err
	}
	defer s.release(lock)

	op, err := s.store.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	op, out, err := s.continueLocked(ctx, op, skip, nil)
	if err != nil {
		return nil, err
	}
	return s.outcome(op, out), nil
}

// Abort ends the operation from any non-terminal phase, tearing down its
// tree best-effort.
func (s *OperationService) Abort(ctx context.Context, repoPath string) (*Outcome, error) {
	root, err := s.resolveRoot(repoPath)
	if err != nil {
		return nil, err
	}

	lock, err := s.locker.Acquire(root)
	if err != nil {
		return nil, err
	}
	defer s.release(lock)

	op, err := s.store.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	op, out, err := s.abortLocked(ctx, op, nil)
	if err != nil {
		return nil, err
	}
	return s.outcome(op, out), nil
}

// Complete runs the post-pick tasks and finalizes the record. The tree is
// left in place so the picked branch can be reviewed and pushed by hand.
func (s *OperationService) Complete(ctx context.Context, repoPath, workItemState string) (*Outcome, error) {
	root, err := s.resolveRoot(repoPath)
	if err != nil {
		return nil, err
	}

	lock, err := s.locker.Acquire(root)
	if err != nil {
		return nil, err
	}
	defer s.release(lock)

	op, err := s.store.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	op, out, err := s.completeLocked(ctx, op, workItemState, nil)
	if err != nil {
		return nil, err
	}
	return s.outcome(op, out), nil
}

// Status returns the persisted record without locking; it never blocks on
// a running operation.
func (s *OperationService) Status(ctx context.Context, repoPath string) (*domain.Snapshot, error) {
	root, err := s.resolveRoot(repoPath)
	if err != nil {
		return nil, err
	}

	op, err := s.store.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	snap := op.Snapshot()
	return &snap, nil
}

func (s *OperationService) startLocked(ctx context.Context, root string, req StartRequest, emit func(domain.Event)) (*domain.Operation, engine.Outcome, error) {
	if err := req.validate(); err != nil {
		return nil, "", err
	}
	if err := s.vcs.ValidateBranchName(req.SourceBranch); err != nil {
		return nil, "", fmt.Errorf("invalid source branch: %w", err)
	}
	if err := s.vcs.ValidateBranchName(req.TargetBranch); err != nil {
		return nil, "", fmt.Errorf("invalid target branch: %w", err)
	}

	existing, err := s.store.Load(ctx, root)
	switch {
	case err == nil:
		if !existing.Phase.Terminal() {
			return nil, "", fmt.Errorf("%w: operation %s is %s",
				domain.ErrOperationActive, existing.OperationID, existing.Phase)
		}
	case errors.Is(err, domain.ErrNoOperation):
		// Fresh repository, nothing to check
	default:
		return nil, "", err
	}

	op := domain.NewOperation(uuid.NewString(), root, s.clock())
	op.HooksEnabled = req.HooksEnabled
	op.IsAuxiliaryCheckout = req.UseWorktree
	op.Organization = req.Organization
	op.Project = req.Project
	op.ReleaseName = req.ReleaseName
	op.Repository = req.Repository
	op.SourceBranch = req.SourceBranch
	op.TargetBranch = req.TargetBranch
	if req.MainlineParent > 0 {
		op.MainlineParent = req.MainlineParent
	}
	if err := s.store.Save(ctx, op); err != nil {
		return nil, "", err
	}

	logging.Logger.Info("Operation started",
		"operation_id", op.OperationID,
		"release", op.ReleaseName,
		"repo", root,
		"source", op.SourceBranch,
		"target", op.TargetBranch)

	sel := ports.Selection{
		Labels:         req.Labels,
		PullRequestIDs: req.PullRequestIDs,
		Since:          req.Since,
		SourceBranch:   req.SourceBranch,
	}
	result, err := s.engine.Load(ctx, op, sel)
	if err != nil {
		// Nothing was picked yet; do not strand a loading record
		if delErr := s.store.Delete(ctx, root); delErr != nil {
			logging.Logger.Warn("Failed to remove unstarted record", "error", delErr)
		}
		return nil, "", err
	}
	op = result.Operation
	if err := s.store.Save(ctx, op); err != nil {
		return op, "", err
	}
	if emit != nil {
		emit(domain.NewPhaseEvent(op.Phase, s.clock()))
	}

	return s.run(ctx, op, emit)
}

func (s *OperationService) continueLocked(ctx context.Context, op *domain.Operation, skip bool, emit func(domain.Event)) (*domain.Operation, engine.Outcome, error) {
	var result engine.Result
	var err error
	if skip {
		result, err = s.engine.Skip(ctx, op)
	} else {
		result, err = s.engine.Resume(ctx, op)
	}
	if err != nil {
		return op, "", err
	}
	if saveErr := s.store.Save(ctx, result.Operation); saveErr != nil {
		return op, "", saveErr
	}
	s.emitStep(op, result.Operation, result.Outcome, emit)

	if result.Outcome == engine.OutcomeConflict {
		// Paths are still unresolved; nothing more to drive
		return result.Operation, result.Outcome, nil
	}
	return s.run(ctx, result.Operation, emit)
}

func (s *OperationService) abortLocked(ctx context.Context, op *domain.Operation, emit func(domain.Event)) (*domain.Operation, engine.Outcome, error) {
	result, err := s.engine.Abort(ctx, op)
	if err != nil {
		return op, "", err
	}
	if saveErr := s.store.Save(ctx, result.Operation); saveErr != nil {
		return op, "", saveErr
	}
	s.archiveTerminal(ctx, result.Operation)
	if emit != nil {
		emit(domain.NewFinishedEvent(result.Operation.Phase, result.Operation.FinalStatus, s.clock()))
	}
	return result.Operation, result.Outcome, nil
}

func (s *OperationService) completeLocked(ctx context.Context, op *domain.Operation, workItemState string, emit func(domain.Event)) (*domain.Operation, engine.Outcome, error) {
	result, err := s.engine.Complete(ctx, op, workItemState)
	if err != nil {
		return op, "", err
	}
	if saveErr := s.store.Save(ctx, result.Operation); saveErr != nil {
		return op, "", saveErr
	}
	s.archiveTerminal(ctx, result.Operation)
	if emit != nil {
		now := s.clock()
		for _, task := range result.Operation.PostTasks {
			emit(domain.NewTaskEvent(task, now))
		}
		emit(domain.NewFinishedEvent(result.Operation.Phase, result.Operation.FinalStatus, now))
	}
	return result.Operation, result.Outcome, nil
}

// run steps the operation until it stops on a conflict or runs out of work,
// persisting after every step. Failed items do not stop the run.
func (s *OperationService) run(ctx context.Context, op *domain.Operation, emit func(domain.Event)) (*domain.Operation, engine.Outcome, error) {
	for {
		if emit != nil && op.Phase == domain.PhasePicking {
			if item := op.CurrentItem(); item != nil {
				emit(domain.NewItemEvent(domain.EventItemStarted, *item, s.clock()))
			}
		}

		result, err := s.engine.Step(ctx, op)
		if err != nil {
			return op, "", err
		}
		if saveErr := s.store.Save(ctx, result.Operation); saveErr != nil {
			return op, "", saveErr
		}
		s.emitStep(op, result.Operation, result.Outcome, emit)
		op = result.Operation

		switch result.Outcome {
		case engine.OutcomeConflict, engine.OutcomeDone:
			return op, result.Outcome, nil
		}
	}
}

// emitStep translates the difference between two record states into events
func (s *OperationService) emitStep(prev, next *domain.Operation, outcome engine.Outcome, emit func(domain.Event)) {
	if emit == nil {
		return
	}
	now := s.clock()
	if next.Phase != prev.Phase {
		emit(domain.NewPhaseEvent(next.Phase, now))
	}
	if next.CurrentIndex > prev.CurrentIndex && prev.CurrentIndex < len(next.Items) {
		item := next.Items[prev.CurrentIndex]
		switch item.Status {
		case domain.ItemApplied:
			emit(domain.NewItemEvent(domain.EventItemApplied, item, now))
		case domain.ItemFailed:
			emit(domain.NewItemEvent(domain.EventItemFailed, item, now))
		case domain.ItemSkipped:
			emit(domain.NewItemEvent(domain.EventItemSkipped, item, now))
		}
	}
	if outcome == engine.OutcomeConflict && next.Phase == domain.PhaseAwaitingResolution {
		if item := next.CurrentItem(); item != nil {
			emit(domain.NewConflictEvent(*item, next.ConflictedPaths, now))
		}
	}
}

// archiveTerminal copies a finished record into the history archive.
// Failures are logged; the record itself is already persisted.
func (s *OperationService) archiveTerminal(ctx context.Context, op *domain.Operation) {
	if s.history == nil {
		return
	}
	if err := s.history.Archive(ctx, op); err != nil {
		logging.Logger.Warn("Failed to archive operation",
			"operation_id", op.OperationID, "error", err)
		return
	}
	logging.Logger.Info("Operation archived",
		"operation_id", op.OperationID, "final_status", op.FinalStatus)
}

func (s *OperationService) resolveRoot(repoPath string) (string, error) {
	root, err := s.vcs.DiscoverRoot(repoPath)
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return root, nil
}

func (s *OperationService) release(lock ports.OperationLock) {
	if err := lock.Release(); err != nil {
		logging.Logger.Warn("Failed to release operation lock", "error", err)
	}
}

func (s *OperationService) outcome(op *domain.Operation, out engine.Outcome) *Outcome {
	return &Outcome{Result: out, Snapshot: op.Snapshot()}
}
