package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// eventBuffer is how many progress events may queue before drops start.
// The UI drains continuously, so the buffer only absorbs short stalls.
const eventBuffer = 64

// ErrHandleClosed is returned by handle methods after Close
var ErrHandleClosed = errors.New("operation handle is closed")

// OperationHandle holds the repository lock for an interactive session and
// serializes all mutations behind one mutex. Progress is reported as
// domain.Events on a channel; the UI applies events and never touches the
// record directly.
type OperationHandle struct {
	closed  bool
	events  chan domain.Event
	lock    ports.OperationLock
	mu      sync.Mutex
	op      *domain.Operation
	root    string
	service *OperationService
}

// Open acquires the repository lock and loads the current record, if any.
// The handle keeps the lock until Close; a handle without a record can
// still Start one.
func (s *OperationService) Open(ctx context.Context, repoPath string) (*OperationHandle, error) {
	root, err := s.resolveRoot(repoPath)
	if err != nil {
		return nil, err
	}

	lock, err := s.locker.Acquire(root)
	if err != nil {
		return nil, err
	}

	op, err := s.store.Load(ctx, root)
	if err != nil && !errors.Is(err, domain.ErrNoOperation) {
		s.release(lock)
		return nil, err
	}

	return &OperationHandle{
		events:  make(chan domain.Event, eventBuffer),
		lock:    lock,
		op:      op,
		root:    root,
		service: s,
	}, nil
}

// Events is the progress stream. The channel closes with the handle.
func (h *OperationHandle) Events() <-chan domain.Event {
	return h.events
}

// Root returns the repository root the handle is locked to
func (h *OperationHandle) Root() string {
	return h.root
}

// Snapshot returns the current record view, or nil when no operation exists
func (h *OperationHandle) Snapshot() *domain.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.op == nil {
		return nil
	}
	snap := h.op.Snapshot()
	return &snap
}

// Start creates a record for the locked repository and drives it until a
// conflict, exhaustion, or an error.
func (h *OperationHandle) Start(ctx context.Context, req StartRequest) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrHandleClosed
	}
	if h.op != nil && !h.op.Phase.Terminal() {
		return nil, fmt.Errorf("%w: operation %s is %s",
			domain.ErrOperationActive, h.op.OperationID, h.op.Phase)
	}

	op, out, err := h.service.startLocked(ctx, h.root, req, h.emit)
	if op != nil {
		h.op = op
	}
	if err != nil {
		h.emit(domain.NewErrorEvent(err, h.service.clock()))
		return nil, err
	}
	return h.service.outcome(op, out), nil
}

// Drive steps the operation until it stops on a conflict or runs out of work
func (h *OperationHandle) Drive(ctx context.Context) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.usable(); err != nil {
		return nil, err
	}

	op, out, err := h.service.run(ctx, h.op, h.emit)
	if op != nil {
		h.op = op
	}
	if err != nil {
		h.emit(domain.NewErrorEvent(err, h.service.clock()))
		return nil, err
	}
	return h.service.outcome(op, out), nil
}

// Step performs a single unit of work
func (h *OperationHandle) Step(ctx context.Context) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.usable(); err != nil {
		return nil, err
	}

	result, err := h.service.engine.Step(ctx, h.op)
	if err != nil {
		return nil, err
	}
	if err := h.service.store.Save(ctx, result.Operation); err != nil {
		return nil, err
	}
	h.service.emitStep(h.op, result.Operation, result.Outcome, h.emit)
	h.op = result.Operation
	return h.service.outcome(h.op, result.Outcome), nil
}

// Resume finalizes the conflicted item after resolution and keeps going
func (h *OperationHandle) Resume(ctx context.Context) (*Outcome, error) {
	return h.continueWith(ctx, false)
}

// Skip abandons the conflicted item and keeps going
func (h *OperationHandle) Skip(ctx context.Context) (*Outcome, error) {
	return h.continueWith(ctx, true)
}

func (h *OperationHandle) continueWith(ctx context.Context, skip bool) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.usable(); err != nil {
		return nil, err
	}

	op, out, err := h.service.continueLocked(ctx, h.op, skip, h.emit)
	if op != nil {
		h.op = op
	}
	if err != nil {
		return nil, err
	}
	return h.service.outcome(op, out), nil
}

// Abort ends the operation from any non-terminal phase
func (h *OperationHandle) Abort(ctx context.Context) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.usable(); err != nil {
		return nil, err
	}

	op, out, err := h.service.abortLocked(ctx, h.op, h.emit)
	if op != nil {
		h.op = op
	}
	if err != nil {
		return nil, err
	}
	return h.service.outcome(op, out), nil
}

// Complete runs the post-pick tasks and finalizes the record
func (h *OperationHandle) Complete(ctx context.Context, workItemState string) (*Outcome, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.usable(); err != nil {
		return nil, err
	}

	op, out, err := h.service.completeLocked(ctx, h.op, workItemState, h.emit)
	if op != nil {
		h.op = op
	}
	if err != nil {
		return nil, err
	}
	return h.service.outcome(op, out), nil
}

// Close releases the repository lock and ends the event stream. Safe to
// call more than once.
func (h *OperationHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	close(h.events)
	return h.lock.Release()
}

func (h *OperationHandle) usable() error {
	if h.closed {
		return ErrHandleClosed
	}
	if h.op == nil {
		return domain.ErrNoOperation
	}
	return nil
}

// emit is only called while the handle mutex is held, so it never races
// with Close
func (h *OperationHandle) emit(event domain.Event) {
	if h.closed {
		return
	}
	select {
	case h.events <- event:
	default:
		logging.Logger.Warn("Dropping progress event", "kind", event.Kind)
	}
}
