//go:build windows

package oplock

import "os"

// processAlive checks whether a PID references a running process. Windows
// has no signal 0; FindProcess opens a handle and fails for dead pids.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = proc.Release()
	return true
}
