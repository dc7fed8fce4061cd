package server

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ui"
)

// teaHandler builds the read-only dashboard for each SSH session. Every
// session polls the same status service; nothing here can mutate the record.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logging.Logger.Info("New SSH status session",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewReadOnlyModel(s.svc, s.repoPath, false)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}
