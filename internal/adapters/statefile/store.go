package statefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// Store persists operation records as JSON files, one per repository.
// Writes go through a temp file in the same directory followed by a rename,
// so an interrupted save leaves the previous record intact.
type Store struct {
	dir string
}

// Compile-time check that Store implements the port
var _ ports.RecordStore = (*Store)(nil)

// NewStore creates a store rooted at dir (usually $CEREJA_HOME/operations)
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// RecordPath returns the record file backing repoPath
func (s *Store) RecordPath(repoPath string) string {
	return RecordPath(s.dir, repoPath)
}

// LockPath returns the lock file guarding repoPath
func (s *Store) LockPath(repoPath string) string {
	return LockPath(s.dir, repoPath)
}

// Load reads and validates the record for repoPath.
// Returns domain.ErrNoOperation when no record exists.
func (s *Store) Load(ctx context.Context, repoPath string) (*domain.Operation, error) {
	return s.loadFile(s.RecordPath(repoPath))
}

func (s *Store) loadFile(path string) (*domain.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoOperation, path)
		}
		return nil, fmt.Errorf("failed to read record %s: %w", path, err)
	}

	// Probe the schema version before decoding the full document so a
	// layout change in a future version is reported as unsupported, not
	// as corruption.
	var probe struct {
		SchemaVersion int `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, path, err)
	}
	if probe.SchemaVersion != domain.SchemaVersion {
		return nil, fmt.Errorf("%w: %s carries version %d, want %d",
			domain.ErrUnsupportedSchema, path, probe.SchemaVersion, domain.SchemaVersion)
	}

	var op domain.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, path, err)
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("record %s: %w", path, err)
	}

	return &op, nil
}

// Save validates and atomically persists the record, refreshing UpdatedAt
func (s *Store) Save(ctx context.Context, op *domain.Operation) error {
	op.UpdatedAt = time.Now().UTC()
	if err := op.Validate(); err != nil {
		return fmt.Errorf("refusing to persist: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(op, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	data = append(data, '\n')

	path := s.RecordPath(op.RepoPath)
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	logging.Logger.Debug("Record persisted",
		"operation_id", op.OperationID,
		"phase", op.Phase,
		"path", path)
	return nil
}

// writeFileAtomic writes data via a temp file in the same directory plus a
// rename, so readers never observe a partial record
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pick-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp record: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp record: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set record permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace record %s: %w", path, err)
	}
	return nil
}

// Delete removes the record for repoPath. Missing records are not an error.
func (s *Store) Delete(ctx context.Context, repoPath string) error {
	path := s.RecordPath(repoPath)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record %s: %w", path, err)
	}
	return nil
}

// List loads every readable record in the store. Records that fail to load
// are logged and skipped so one corrupt file doesn't hide the rest.
func (s *Store) List(ctx context.Context) ([]*domain.Operation, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, filePrefix+"*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	ops := make([]*domain.Operation, 0, len(matches))
	for _, path := range matches {
		op, err := s.loadFile(path)
		if err != nil {
			if errors.Is(err, domain.ErrNoOperation) {
				continue
			}
			logging.Logger.Warn("Skipping unreadable record", "path", path, "error", err)
			continue
		}
		ops = append(ops, op)
	}
	return ops, nil
}
