// Package shell opens the user's shell inside an operation tree so
// conflicts can be resolved without leaving the flow.
package shell

import (
	"os"
	"os/exec"

	"github.com/renato0307/cereja/internal/ports"
)

// Runner implements ports.ShellRunner
type Runner struct{}

var _ ports.ShellRunner = (*Runner)(nil)

// NewRunner creates a shell runner
func NewRunner() *Runner {
	return &Runner{}
}

// ResolveShell returns the user's shell, falling back to /bin/bash
func ResolveShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

// Command returns an unstarted shell command rooted at dir. CEREJA_SHELL is
// set so prompts can mark the session.
func (r *Runner) Command(dir string) *exec.Cmd {
	cmd := exec.Command(ResolveShell())
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "CEREJA_SHELL=1")
	return cmd
}
