package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// CleanupService removes finished records past their retention age and
// managed trees no record references anymore.
type CleanupService struct {
	clock    Clock
	store    ports.RecordStore
	treesDir string
	vcs      ports.VersionControl
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(store ports.RecordStore, vcs ports.VersionControl, treesDir string, clock Clock) *CleanupService {
	return &CleanupService{
		clock:    clock,
		store:    store,
		treesDir: treesDir,
		vcs:      vcs,
	}
}

// CleanupResult contains what a cleanup run removed
type CleanupResult struct {
	RemovedRecords int
	RemovedTrees   []string
}

// Cleanup removes terminal records older than the retention age together
// with their trees, then sweeps the trees directory for orphans. Live
// operations and fresh terminal records are left alone.
func (s *CleanupService) Cleanup(ctx context.Context, retention time.Duration) (*CleanupResult, error) {
	cutoff := s.clock().Add(-retention)

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	result := &CleanupResult{}
	referenced := make(map[string]bool)

	for _, op := range records {
		if !op.Phase.Terminal() || op.CompletedAt == nil || op.CompletedAt.After(cutoff) {
			if op.WorkTreePath != "" {
				referenced[op.WorkTreePath] = true
			}
			continue
		}

		if op.WorkTreePath != "" {
			if err := s.vcs.TeardownTree(ctx, op); err != nil {
				logging.Logger.Warn("Failed to remove tree",
					"operation_id", op.OperationID, "path", op.WorkTreePath, "error", err)
			} else {
				result.RemovedTrees = append(result.RemovedTrees, op.WorkTreePath)
			}
		}
		if err := s.store.Delete(ctx, op.RepoPath); err != nil {
			logging.Logger.Warn("Failed to delete record",
				"operation_id", op.OperationID, "error", err)
			continue
		}
		result.RemovedRecords++
		logging.Logger.Info("Removed finished record",
			"operation_id", op.OperationID, "final_status", op.FinalStatus)
	}

	orphans, err := s.sweepOrphans(referenced)
	if err != nil {
		return result, err
	}
	result.RemovedTrees = append(result.RemovedTrees, orphans...)
	return result, nil
}

// sweepOrphans removes directories under the managed trees dir that no
// surviving record references
func (s *CleanupService) sweepOrphans(referenced map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(s.treesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read trees directory: %w", err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.treesDir, entry.Name())
		if referenced[path] {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			logging.Logger.Warn("Failed to remove orphaned tree", "path", path, "error", err)
			continue
		}
		removed = append(removed, path)
		logging.Logger.Info("Removed orphaned tree", "path", path)
	}
	return removed, nil
}
