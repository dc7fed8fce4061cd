// Package oplock serializes operations on a repository across processes.
//
// The lock is its own existence: acquisition is an exclusive create of the
// lock file, never a check followed by a create, so two racing processes
// cannot both win. The file carries the holder's pid so a crashed process
// can be detected and its lock reclaimed.
package oplock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/cereja/internal/adapters/statefile"
	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// Marker is the metadata written into a held lock file
type Marker struct {
	Hostname  string    `json:"hostname,omitempty"`
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"started_at"`
}

// Lock is a held per-repository lock
type Lock struct {
	path string
}

// Locker acquires locks inside a state directory
type Locker struct {
	dir string
}

// Compile-time check that Locker implements the port
var _ ports.OperationLocker = (*Locker)(nil)

// NewLocker creates a locker rooted at dir (usually $CEREJA_HOME/operations)
func NewLocker(dir string) *Locker {
	return &Locker{dir: dir}
}

// Acquire takes the lock for repoPath. It returns domain.ErrLockHeld when a
// live process owns it; locks left behind by dead processes are reclaimed.
func (l *Locker) Acquire(repoPath string) (ports.OperationLock, error) {
	return Acquire(statefile.LockPath(l.dir, repoPath))
}

// Acquire takes the lock file at path
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	marker := Marker{PID: os.Getpid(), StartedAt: time.Now().UTC()}
	if hostname, err := os.Hostname(); err == nil {
		marker.Hostname = hostname
	}

	created, err := exclusiveCreate(path, marker)
	if err != nil {
		return nil, err
	}
	if created {
		logging.Logger.Debug("Lock acquired", "path", path, "pid", marker.PID)
		return &Lock{path: path}, nil
	}

	// The file exists. Decide between a live holder and a stale leftover.
	holder, readErr := readMarker(path)
	if readErr == nil && processAlive(holder.PID) {
		return nil, fmt.Errorf("%w: pid %d since %s",
			domain.ErrLockHeld, holder.PID, holder.StartedAt.Format(time.RFC3339))
	}
	if readErr != nil {
		logging.Logger.Warn("Lock marker unreadable, treating as stale", "path", path, "error", readErr)
	} else {
		logging.Logger.Info("Reclaiming stale lock",
			"path", path,
			"stale_pid", holder.PID,
			"stale_since", holder.StartedAt)
	}

	if err := replaceMarker(path, marker); err != nil {
		return nil, err
	}

	// Another reclaimer may have renamed over ours in the same window;
	// whoever's pid survived owns the lock.
	final, err := readMarker(path)
	if err != nil {
		return nil, fmt.Errorf("failed to verify reclaimed lock %s: %w", path, err)
	}
	if final.PID != marker.PID {
		return nil, fmt.Errorf("%w: pid %d since %s",
			domain.ErrLockHeld, final.PID, final.StartedAt.Format(time.RFC3339))
	}

	logging.Logger.Debug("Lock acquired after reclaim", "path", path, "pid", marker.PID)
	return &Lock{path: path}, nil
}

// Release removes the lock file. It is idempotent, and it leaves the file
// alone if another process reclaimed it in the meantime.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	path := l.path
	l.path = ""

	holder, err := readMarker(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		// Unreadable marker: remove it rather than strand a dead lock
	} else if holder.PID != os.Getpid() {
		logging.Logger.Warn("Lock no longer ours on release, leaving it",
			"path", path, "holder_pid", holder.PID)
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lock %s: %w", path, err)
	}
	logging.Logger.Debug("Lock released", "path", path)
	return nil
}

// exclusiveCreate attempts the O_EXCL create that defines acquisition.
// It reports false, nil when the file already exists.
func exclusiveCreate(path string, marker Marker) (bool, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create lock %s: %w", path, err)
	}

	if err := writeMarker(file, marker); err != nil {
		file.Close()
		os.Remove(path)
		return false, err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return false, fmt.Errorf("failed to close lock %s: %w", path, err)
	}
	return true, nil
}

// replaceMarker swaps a stale marker for ours via temp file plus rename
func replaceMarker(path string, marker Marker) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lock-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create lock replacement: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := writeMarker(tmp, marker); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close lock replacement: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set lock permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace stale lock %s: %w", path, err)
	}
	return nil
}

func writeMarker(file *os.File, marker Marker) error {
	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to marshal lock marker: %w", err)
	}
	data = append(data, '\n')
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write lock marker: %w", err)
	}
	return nil
}

func readMarker(path string) (Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Marker{}, err
	}
	var marker Marker
	if err := json.Unmarshal(data, &marker); err != nil {
		return Marker{}, fmt.Errorf("failed to parse lock marker %s: %w", path, err)
	}
	if marker.PID <= 0 {
		return Marker{}, fmt.Errorf("lock marker %s has no pid", path)
	}
	return marker, nil
}
