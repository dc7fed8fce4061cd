package statefile

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const filePrefix = "pick-"

// Key returns the stable identifier derived from a repository path. Two
// invocations against the same repository must land on the same record, so
// the path is made absolute and cleaned before hashing.
func Key(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		abs = repoPath
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return hex.EncodeToString(sum[:])[:12]
}

// RecordPath returns the record file for a repository inside dir
func RecordPath(dir, repoPath string) string {
	return filepath.Join(dir, filePrefix+Key(repoPath)+".json")
}

// LockPath returns the lock file for a repository inside dir. It sits next
// to the record so both survive or vanish with the same directory.
func LockPath(dir, repoPath string) string {
	return filepath.Join(dir, filePrefix+Key(repoPath)+".lock")
}
