package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/services"
)

// printer renders command results in the selected output mode. Text talks
// to humans and suggests the next command; json emits one final document;
// ndjson streams every progress event as a line before the final document.
type printer struct {
	encoder *json.Encoder
	mode    string
	out     io.Writer
}

func (c *CLI) printer() *printer {
	return newPrinter(os.Stdout, c.Output)
}

func newPrinter(out io.Writer, mode string) *printer {
	return &printer{
		encoder: json.NewEncoder(out),
		mode:    mode,
		out:     out,
	}
}

// event renders one progress event. JSON mode stays silent until the final
// document.
func (p *printer) event(event domain.Event) {
	switch p.mode {
	case "ndjson":
		if err := p.encoder.Encode(event); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to encode event: %v\n", err)
		}
	case "text":
		p.eventText(event)
	}
}

func (p *printer) eventText(event domain.Event) {
	switch event.Kind {
	case domain.EventItemStarted:
		fmt.Fprintf(p.out, "Picking PR %d: %s\n", event.Item.PullRequestID, event.Item.Title)
	case domain.EventItemApplied:
		fmt.Fprintf(p.out, "  applied\n")
	case domain.EventItemFailed:
		fmt.Fprintf(p.out, "  failed: %s\n", event.Item.FailureReason)
	case domain.EventItemSkipped:
		fmt.Fprintf(p.out, "  skipped\n")
	case domain.EventConflict:
		fmt.Fprintf(p.out, "  conflict in %d file(s)\n", len(event.ConflictedPaths))
	case domain.EventTaskResult:
		p.taskText(*event.Task)
	}
}

func (p *printer) taskText(task domain.PostTask) {
	status := "done"
	if !task.OK {
		status = "FAILED"
	}
	switch task.Kind {
	case domain.TaskTag:
		fmt.Fprintf(p.out, "Tag PR %d: %s\n", task.PullRequestID, status)
	case domain.TaskWorkItems:
		fmt.Fprintf(p.out, "Advance work items for PR %d: %s\n", task.PullRequestID, status)
	}
	if !task.OK && task.Detail != "" {
		fmt.Fprintf(p.out, "  %s\n", task.Detail)
	}
}

// outcome renders the final state of a mutating command
func (p *printer) outcome(outcome *services.Outcome) error {
	switch p.mode {
	case "json", "ndjson":
		return p.encoder.Encode(outcome)
	default:
		fmt.Fprintln(p.out)
		p.snapshotText(&outcome.Snapshot)
		return nil
	}
}

// snapshot renders a read-only status view
func (p *printer) snapshot(snap *domain.Snapshot) error {
	switch p.mode {
	case "json", "ndjson":
		return p.encoder.Encode(snap)
	default:
		p.snapshotText(snap)
		return nil
	}
}

func (p *printer) snapshotText(snap *domain.Snapshot) {
	op := snap.Operation

	fmt.Fprintf(p.out, "Release %s: %s into %s\n", op.ReleaseName, op.SourceBranch, op.TargetBranch)
	fmt.Fprintf(p.out, "Phase: %s\n", op.Phase)
	if op.WorkTreePath != "" {
		fmt.Fprintf(p.out, "Tree:  %s\n", op.WorkTreePath)
	}
	if len(op.Items) > 0 {
		fmt.Fprintln(p.out)
		for _, item := range op.Items {
			fmt.Fprintf(p.out, "  %s PR %-6d %s\n", statusGlyph(item.Status), item.PullRequestID, item.Title)
			if item.FailureReason != "" {
				fmt.Fprintf(p.out, "      %s\n", item.FailureReason)
			}
		}
		progress := snap.Progress
		fmt.Fprintf(p.out, "\n%d of %d applied", progress.Applied, progress.Total)
		if progress.Failed > 0 {
			fmt.Fprintf(p.out, ", %d failed", progress.Failed)
		}
		if progress.Skipped > 0 {
			fmt.Fprintf(p.out, ", %d skipped", progress.Skipped)
		}
		fmt.Fprintln(p.out)
	}
	if len(op.ConflictedPaths) > 0 {
		fmt.Fprintln(p.out, "\nConflicted paths:")
		for _, path := range op.ConflictedPaths {
			fmt.Fprintf(p.out, "  %s\n", path)
		}
	}
	if hint := remediation(&op); hint != "" {
		fmt.Fprintf(p.out, "\n%s\n", hint)
	}
}

// remediation tells the user what to do next in the current phase
func remediation(op *domain.Operation) string {
	switch op.Phase {
	case domain.PhaseAwaitingResolution:
		return "Resolve the listed files in the tree, stage them, then run 'cereja continue'.\n" +
			"To drop this item instead, run 'cereja continue --skip'."
	case domain.PhaseReadyToComplete:
		return "Run 'cereja complete' to tag the pull requests and advance their work items."
	case domain.PhaseCompleted:
		return "The picked commits are in the tree above; review and push them when satisfied."
	case domain.PhaseLoading, domain.PhaseSetup:
		return "The operation was interrupted before picking began; run 'cereja abort' and start again."
	default:
		return ""
	}
}

func statusGlyph(status domain.ItemStatus) string {
	switch status {
	case domain.ItemApplied:
		return "✓"
	case domain.ItemFailed:
		return "✗"
	case domain.ItemSkipped:
		return "⊘"
	case domain.ItemConflict:
		return "!"
	default:
		return "·"
	}
}

// runOperation opens a handle for the repository, runs one mutating command
// through it while relaying progress events, and renders the final outcome.
// The lock is held for exactly the duration of the command.
func (c *CLI) runOperation(ctx context.Context, fn func(context.Context, *services.OperationHandle) (*services.Outcome, error)) error {
	handle, err := c.Container.OperationService.Open(ctx, c.repoPath())
	if err != nil {
		return err
	}
	defer handle.Close()

	p := c.printer()

	type answer struct {
		outcome *services.Outcome
		err     error
	}
	done := make(chan answer, 1)
	go func() {
		outcome, err := fn(ctx, handle)
		done <- answer{outcome: outcome, err: err}
	}()

	var result answer
collect:
	for {
		select {
		case event := <-handle.Events():
			p.event(event)
		case result = <-done:
			break collect
		}
	}
	// The buffer may still hold events emitted just before the call returned
	for {
		select {
		case event := <-handle.Events():
			p.event(event)
			continue
		default:
		}
		break
	}

	if result.err != nil {
		return result.err
	}
	if err := p.outcome(result.outcome); err != nil {
		return err
	}
	return outcomeExit(result.outcome)
}
