//go:build !windows

package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/creack/pty"

	"github.com/renato0307/cereja/internal/logging"
)

// RunInteractive starts the shell on a pty wired to the current terminal
// and blocks until it exits. The terminal is restored afterwards.
func (r *Runner) RunInteractive(dir string) error {
	cmd := r.Command(dir)

	logging.Logger.Info("Opening resolve shell", "shell", cmd.Path, "dir", dir)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	// Track terminal size changes
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	go func() {
		for range winch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				logging.Logger.Warn("Failed to resize pty", "error", err)
			}
		}
	}()
	winch <- syscall.SIGWINCH
	defer func() { signal.Stop(winch); close(winch) }()

	oldState, err := term.MakeRaw(os.Stdin.Fd())
	if err != nil {
		return fmt.Errorf("failed to set terminal to raw mode: %w", err)
	}
	defer func() { _ = term.Restore(os.Stdin.Fd(), oldState) }()

	// Pump stdin to the shell and shell output to stdout
	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	_, _ = io.Copy(os.Stdout, ptmx)

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("shell exited with error: %w", err)
	}
	return nil
}
