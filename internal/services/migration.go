package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// RecordStoreFactory opens a record store rooted at an operations directory
type RecordStoreFactory func(dir string) ports.RecordStore

// MigrationService moves everything under one CEREJA_HOME to another:
// operation records, the history database, and the managed trees directory.
type MigrationService struct {
	storeFactory RecordStoreFactory
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(storeFactory RecordStoreFactory) *MigrationService {
	return &MigrationService{storeFactory: storeFactory}
}

// MoveHomeParams contains parameters for moving between CEREJA_HOME directories
type MoveHomeParams struct {
	DestHome   string
	SourceHome string
}

// MoveHomeResult contains the result of a home move
type MoveHomeResult struct {
	MovedHistory bool
	MovedRecords int
	MovedTrees   bool
}

// MoveHome migrates the state under SourceHome to DestHome. It refuses to
// run while any record is non-terminal: a live operation references trees
// and locks that must not move under it.
func (s *MigrationService) MoveHome(ctx context.Context, params MoveHomeParams) (*MoveHomeResult, error) {
	source := config.ExpandPath(params.SourceHome)
	dest := config.ExpandPath(params.DestHome)
	if source == dest {
		return nil, fmt.Errorf("source and destination are the same: %s", source)
	}

	logging.Logger.Info("Moving state between homes", "from", source, "to", dest)

	sourceStore := s.storeFactory(config.OperationsDirIn(source))
	records, err := sourceStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	for _, op := range records {
		if !op.Phase.Terminal() {
			return nil, fmt.Errorf("%w: operation %s is %s, finish or abort it before migrating",
				domain.ErrOperationActive, op.OperationID, op.Phase)
		}
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination home: %w", err)
	}

	result := &MoveHomeResult{}

	// Trees move first so re-keyed record paths point at directories that
	// already exist
	sourceTrees := config.TreesDirIn(source)
	destTrees := config.TreesDirIn(dest)
	if _, err := os.Stat(sourceTrees); err == nil {
		if err := moveDirectory(sourceTrees, destTrees); err != nil {
			return nil, fmt.Errorf("failed to move trees directory: %w", err)
		}
		result.MovedTrees = true
		logging.Logger.Info("Trees directory moved", "from", sourceTrees, "to", destTrees)
	}

	destStore := s.storeFactory(config.OperationsDirIn(dest))
	for _, op := range records {
		rekeyTreePaths(op, sourceTrees, destTrees)
		if err := destStore.Save(ctx, op); err != nil {
			return nil, fmt.Errorf("failed to save record %s at destination: %w", op.OperationID, err)
		}
		if err := sourceStore.Delete(ctx, op.RepoPath); err != nil {
			logging.Logger.Warn("Failed to delete source record",
				"operation_id", op.OperationID, "error", err)
		}
		result.MovedRecords++
	}

	sourceDB := config.HistoryDBPathIn(source)
	if _, err := os.Stat(sourceDB); err == nil {
		destDB := config.HistoryDBPathIn(dest)
		if err := moveFile(sourceDB, destDB); err != nil {
			return nil, fmt.Errorf("failed to move history database: %w", err)
		}
		// WAL sidecars travel with the database when present
		for _, suffix := range []string{"-wal", "-shm"} {
			if _, err := os.Stat(sourceDB + suffix); err == nil {
				if err := moveFile(sourceDB+suffix, destDB+suffix); err != nil {
					logging.Logger.Warn("Failed to move history sidecar",
						"file", sourceDB+suffix, "error", err)
				}
			}
		}
		result.MovedHistory = true
	}

	logging.Logger.Info("Migration finished",
		"records", result.MovedRecords,
		"trees", result.MovedTrees,
		"history", result.MovedHistory)
	return result, nil
}

// rekeyTreePaths rewrites managed tree paths recorded under the old home.
// BaseRepoPath points at the user's own repository and never moves.
func rekeyTreePaths(op *domain.Operation, sourceTrees, destTrees string) {
	if op.WorkTreePath != "" && strings.HasPrefix(op.WorkTreePath, sourceTrees+string(os.PathSeparator)) {
		op.WorkTreePath = destTrees + strings.TrimPrefix(op.WorkTreePath, sourceTrees)
	}
}

// moveDirectory renames a directory, falling back to copy + delete for
// cross-filesystem moves
func moveDirectory(sourcePath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := os.Rename(sourcePath, destPath); err == nil {
		return nil
	}

	if err := copyDirectory(sourcePath, destPath); err != nil {
		return fmt.Errorf("failed to copy directory: %w", err)
	}
	if err := os.RemoveAll(sourcePath); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}

// moveFile renames a file, falling back to copy + delete
func moveFile(sourcePath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := os.Rename(sourcePath, destPath); err == nil {
		return nil
	}

	if err := copyFile(sourcePath, destPath); err != nil {
		return err
	}
	return os.Remove(sourcePath)
}

// copyDirectory recursively copies a directory
func copyDirectory(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDirectory(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file, preserving its permissions
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	sourceInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, sourceInfo.Mode())
}
