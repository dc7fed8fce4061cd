//go:build windows

package shell

import "errors"

// RunInteractive is not supported on Windows; use the interactive runner
// instead.
func (r *Runner) RunInteractive(dir string) error {
	return errors.New("interactive resolve shell requires a POSIX terminal")
}
