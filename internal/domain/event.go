package domain

import "time"

// EventKind identifies a progress event emitted while an operation runs
type EventKind string

const (
	EventPhaseChanged EventKind = "phase_changed"
	EventItemStarted  EventKind = "item_started"
	EventItemApplied  EventKind = "item_applied"
	EventItemFailed   EventKind = "item_failed"
	EventItemSkipped  EventKind = "item_skipped"
	EventConflict     EventKind = "conflict"
	EventTaskResult   EventKind = "task_result"
	EventFinished     EventKind = "finished"
	EventError        EventKind = "error"
)

// Event is one progress notification. The worker driving an operation emits
// events over a channel; the terminal UI and the ndjson writer consume them
// without ever touching the record themselves.
type Event struct {
	At              time.Time `json:"at"`
	ConflictedPaths []string  `json:"conflicted_paths,omitempty"`
	Detail          string    `json:"detail,omitempty"`
	Item            *Item     `json:"item,omitempty"`
	Kind            EventKind `json:"kind"`
	Phase           Phase     `json:"phase,omitempty"`
	Task            *PostTask `json:"task,omitempty"`
}

// NewPhaseEvent reports a phase change
func NewPhaseEvent(phase Phase, at time.Time) Event {
	return Event{At: at, Kind: EventPhaseChanged, Phase: phase}
}

// NewItemEvent reports progress on a single item
func NewItemEvent(kind EventKind, item Item, at time.Time) Event {
	return Event{At: at, Item: &item, Kind: kind}
}

// NewConflictEvent reports that picking stopped on a conflict
func NewConflictEvent(item Item, paths []string, at time.Time) Event {
	return Event{At: at, ConflictedPaths: paths, Item: &item, Kind: EventConflict}
}

// NewTaskEvent reports one completion task outcome
func NewTaskEvent(task PostTask, at time.Time) Event {
	return Event{At: at, Kind: EventTaskResult, Task: &task}
}

// NewFinishedEvent reports that the operation reached a terminal phase
func NewFinishedEvent(phase Phase, detail string, at time.Time) Event {
	return Event{At: at, Detail: detail, Kind: EventFinished, Phase: phase}
}

// NewErrorEvent reports a failure that stopped the run
func NewErrorEvent(err error, at time.Time) Event {
	return Event{At: at, Detail: err.Error(), Kind: EventError}
}
