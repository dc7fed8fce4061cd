package domain

import (
	"fmt"
	"time"
)

// SchemaVersion is the record layout written by this build. Records carrying
// any other version are rejected on load, never migrated in place.
const SchemaVersion = 1

// ItemStatus represents the outcome of a single pick item
type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemApplied  ItemStatus = "applied"
	ItemConflict ItemStatus = "conflict"
	ItemFailed   ItemStatus = "failed"
	ItemSkipped  ItemStatus = "skipped"
)

// Valid reports whether s is a known item status
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemApplied, ItemConflict, ItemFailed, ItemSkipped:
		return true
	}
	return false
}

// Final statuses recorded when an operation reaches a terminal phase
const (
	FinalAborted             = "aborted"
	FinalCompleted           = "completed"
	FinalCompletedWithErrors = "completed_with_errors"
)

// Item is one pull request queued for cherry-picking (domain entity)
type Item struct {
	FailureReason string     `json:"failure_reason,omitempty"`
	MergeCommit   string     `json:"merge_commit"`
	PullRequestID int64      `json:"pull_request_id"`
	Status        ItemStatus `json:"status"`
	Title         string     `json:"title"`
	WorkItemIDs   []int      `json:"work_item_ids,omitempty"`
}

// PostTask records the outcome of one completion task (PR tag or work item
// transition) so reruns and status views can show what already happened.
type PostTask struct {
	Detail        string `json:"detail,omitempty"`
	Kind          string `json:"kind"`
	OK            bool   `json:"ok"`
	PullRequestID int64  `json:"pull_request_id"`
}

// Kinds of completion tasks
const (
	TaskTag       = "tag"
	TaskWorkItems = "work_items"
)

// Operation is the persisted record of one cherry-pick run against one
// repository. It is the single source of truth shared by the interactive
// and non-interactive front ends; every mutation is persisted before
// control returns to the user.
type Operation struct {
	BaseRepoPath        string     `json:"base_repo_path,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	ConflictedPaths     []string   `json:"conflicted_paths,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	CurrentIndex        int        `json:"current_index"`
	FinalStatus         string     `json:"final_status,omitempty"`
	HooksEnabled        bool       `json:"hooks_enabled"`
	IsAuxiliaryCheckout bool       `json:"is_auxiliary_checkout"`
	Items               []Item     `json:"items"`
	MainlineParent      int        `json:"mainline_parent"`
	OperationID         string     `json:"operation_id"`
	Organization        string     `json:"organization"`
	Phase               Phase      `json:"phase"`
	PostTasks           []PostTask `json:"post_tasks,omitempty"`
	Project             string     `json:"project"`
	ReleaseName         string     `json:"release_name"`
	RepoPath            string     `json:"repo_path"`
	Repository          string     `json:"repository"`
	SchemaVersion       int        `json:"schema_version"`
	SourceBranch        string     `json:"source_branch"`
	TargetBranch        string     `json:"target_branch"`
	UpdatedAt           time.Time  `json:"updated_at"`
	WorkTreePath        string     `json:"work_tree_path,omitempty"`
}

// NewOperation creates a loading-phase record for the repository at repoPath
func NewOperation(id, repoPath string, now time.Time) *Operation {
	return &Operation{
		CreatedAt:      now,
		HooksEnabled:   true,
		MainlineParent: 1,
		OperationID:    id,
		Phase:          PhaseLoading,
		RepoPath:       repoPath,
		SchemaVersion:  SchemaVersion,
		UpdatedAt:      now,
	}
}

// Validate checks the structural invariants of a record. It is called on
// every load; a record that fails validation is reported, never repaired.
func (o *Operation) Validate() error {
	if o.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedSchema, o.SchemaVersion, SchemaVersion)
	}
	if o.OperationID == "" {
		return &ValidationError{Field: "operation_id", Reason: "empty"}
	}
	if o.RepoPath == "" {
		return &ValidationError{Field: "repo_path", Reason: "empty"}
	}
	if !o.Phase.Valid() {
		return &ValidationError{Field: "phase", Reason: fmt.Sprintf("unknown phase %q", o.Phase)}
	}
	if o.CurrentIndex < 0 || o.CurrentIndex > len(o.Items) {
		return &ValidationError{
			Field:  "current_index",
			Reason: fmt.Sprintf("%d outside [0, %d]", o.CurrentIndex, len(o.Items)),
		}
	}
	for i, item := range o.Items {
		if !item.Status.Valid() {
			return &ValidationError{
				Field:  "items",
				Reason: fmt.Sprintf("item %d has unknown status %q", i, item.Status),
			}
		}
		if i < o.CurrentIndex && item.Status == ItemPending {
			return &ValidationError{
				Field:  "items",
				Reason: fmt.Sprintf("item %d behind the cursor is still pending", i),
			}
		}
		if item.Status == ItemConflict {
			if i != o.CurrentIndex {
				return &ValidationError{
					Field:  "items",
					Reason: fmt.Sprintf("conflict on item %d but cursor is at %d", i, o.CurrentIndex),
				}
			}
			if o.Phase != PhaseAwaitingResolution {
				return &ValidationError{
					Field:  "items",
					Reason: fmt.Sprintf("conflict on item %d outside %s", i, PhaseAwaitingResolution),
				}
			}
		}
	}
	if o.Phase == PhaseAwaitingResolution {
		if len(o.ConflictedPaths) == 0 {
			return &ValidationError{Field: "conflicted_paths", Reason: "empty while awaiting resolution"}
		}
		current := o.CurrentItem()
		if current == nil || current.Status != ItemConflict {
			return &ValidationError{Field: "current_index", Reason: "awaiting resolution without a conflicted item"}
		}
	} else if len(o.ConflictedPaths) != 0 {
		return &ValidationError{
			Field:  "conflicted_paths",
			Reason: fmt.Sprintf("set while phase is %s", o.Phase),
		}
	}
	if o.Phase.Terminal() && o.FinalStatus == "" {
		return &ValidationError{Field: "final_status", Reason: fmt.Sprintf("empty in terminal phase %s", o.Phase)}
	}
	if !o.Phase.Terminal() && o.FinalStatus != "" {
		return &ValidationError{Field: "final_status", Reason: fmt.Sprintf("set while phase is %s", o.Phase)}
	}
	return nil
}

// TransitionTo moves the record to the given phase, enforcing the lifecycle
func (o *Operation) TransitionTo(phase Phase) error {
	if !ValidTransition(o.Phase, phase) {
		return &PhaseError{Actual: o.Phase, Attempted: phase}
	}
	o.Phase = phase
	return nil
}

// CurrentItem returns the item under the cursor, or nil when all items are done
func (o *Operation) CurrentItem() *Item {
	if o.CurrentIndex < 0 || o.CurrentIndex >= len(o.Items) {
		return nil
	}
	return &o.Items[o.CurrentIndex]
}

// Clone returns a deep copy. The orchestration engine works on clones so a
// failed step never leaves a half-mutated record behind.
func (o *Operation) Clone() *Operation {
	clone := *o
	if o.Items != nil {
		clone.Items = make([]Item, len(o.Items))
		copy(clone.Items, o.Items)
		for i, item := range o.Items {
			if item.WorkItemIDs != nil {
				clone.Items[i].WorkItemIDs = append([]int(nil), item.WorkItemIDs...)
			}
		}
	}
	if o.ConflictedPaths != nil {
		clone.ConflictedPaths = append([]string(nil), o.ConflictedPaths...)
	}
	if o.PostTasks != nil {
		clone.PostTasks = append([]PostTask(nil), o.PostTasks...)
	}
	if o.CompletedAt != nil {
		completed := *o.CompletedAt
		clone.CompletedAt = &completed
	}
	return &clone
}

// Progress summarizes item outcomes
type Progress struct {
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Progress tallies the items by status
func (o *Operation) Progress() Progress {
	p := Progress{Total: len(o.Items)}
	for _, item := range o.Items {
		switch item.Status {
		case ItemApplied:
			p.Applied++
		case ItemFailed:
			p.Failed++
		case ItemSkipped:
			p.Skipped++
		case ItemPending, ItemConflict:
			p.Pending++
		}
	}
	return p
}

// HasFailures reports whether any item failed or was skipped
func (o *Operation) HasFailures() bool {
	for _, item := range o.Items {
		if item.Status == ItemFailed || item.Status == ItemSkipped {
			return true
		}
	}
	return false
}

// Finalize stamps the terminal bookkeeping fields. The phase transition
// itself must already have happened.
func (o *Operation) Finalize(status string, now time.Time) {
	o.CompletedAt = &now
	o.FinalStatus = status
}

// Snapshot is a point-in-time view of an operation for presentation
type Snapshot struct {
	Operation Operation `json:"operation"`
	Progress  Progress  `json:"progress"`
}

// Snapshot captures the record and its derived progress for read-only views
func (o *Operation) Snapshot() Snapshot {
	return Snapshot{Operation: *o.Clone(), Progress: o.Progress()}
}
