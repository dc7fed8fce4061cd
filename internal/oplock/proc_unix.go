//go:build !windows

package oplock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// processAlive checks whether a PID references a running process. Signal 0
// probes without signaling; EPERM means the process exists but belongs to
// someone else, which still counts as alive.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, unix.EPERM)
}
