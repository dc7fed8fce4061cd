package ports

import (
	"context"

	"github.com/renato0307/cereja/internal/domain"
)

// RecordReader loads persisted operation records
type RecordReader interface {
	Load(ctx context.Context, repoPath string) (*domain.Operation, error)
	List(ctx context.Context) ([]*domain.Operation, error)
}

// RecordWriter persists and removes operation records
type RecordWriter interface {
	Save(ctx context.Context, op *domain.Operation) error
	Delete(ctx context.Context, repoPath string) error
}

// RecordStore is the composite interface. Implementations must persist
// atomically: a crash mid-save leaves the previous record intact.
type RecordStore interface {
	RecordReader
	RecordWriter
}

// OperationLock is a held per-repository lock
type OperationLock interface {
	Release() error
}

// OperationLocker serializes operations on one repository across processes.
// Acquire returns domain.ErrLockHeld when a live process owns the lock.
type OperationLocker interface {
	Acquire(repoPath string) (OperationLock, error)
}
