package ui

import (
	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/services"
)

// operationEventMsg carries one progress event from the handle's channel.
// ok is false once the channel is closed.
type operationEventMsg struct {
	event domain.Event
	ok    bool
}

// runDoneMsg reports that a mutating call on the handle returned.
type runDoneMsg struct {
	err     error
	outcome *services.Outcome
	verb    string
}

// statusLoadedMsg carries a fresh snapshot in read-only mode.
type statusLoadedMsg struct {
	err      error
	snapshot *domain.Snapshot
}

// pollTickMsg triggers the next read-only status poll.
type pollTickMsg struct{}

// shellDoneMsg reports that the resolve shell exited.
type shellDoneMsg struct {
	err error
}
