package ports

import "os/exec"

// ShellRunner opens interactive shells inside operation trees for conflict
// resolution. Command returns an unstarted command for front ends that
// manage the terminal themselves (Bubble Tea's ExecProcess); RunInteractive
// owns the terminal until the shell exits.
type ShellRunner interface {
	Command(dir string) *exec.Cmd
	RunInteractive(dir string) error
}
