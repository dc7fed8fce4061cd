package ports

import (
	"context"

	"github.com/renato0307/cereja/internal/domain"
)

// HistoryWriter archives records that reached a terminal phase
type HistoryWriter interface {
	Archive(ctx context.Context, op *domain.Operation) error
}

// HistoryReader lists archived operations, newest first
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.Operation, error)
}

// HistoryPruner drops archive entries beyond the newest keep
type HistoryPruner interface {
	Prune(ctx context.Context, keep int) (int64, error)
}

// HistoryArchive is the composite interface
type HistoryArchive interface {
	HistoryPruner
	HistoryReader
	HistoryWriter
	Close() error
}
