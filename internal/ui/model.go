package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
	"github.com/renato0307/cereja/internal/services"
	"github.com/renato0307/cereja/internal/theme"
)

const errorClearDelay = 10 * time.Second

type uiState int

const (
	stateDashboard uiState = iota
	stateConfirmingAbort
	stateStarting
)

// Model is the operation dashboard. In interactive mode it owns an
// OperationHandle for the whole session: mutations run on the handle in
// command goroutines and the model repaints from the events they emit, so
// the model itself never touches the record. In read-only mode (the SSH
// status server) there is no handle and the model polls the status service.
type Model struct {
	abortConfirmed bool
	abortForm      *Dialog
	busy           bool
	devMode        bool
	errorManager   *ErrorManager
	handle         *services.OperationHandle
	height         int
	help           help.Model
	keys           KeyMap
	lastEvent      string
	list           list.Model
	readOnly       bool
	repoPath       string
	runner         ports.ShellRunner
	settings       *config.Settings
	snapshot       *domain.Snapshot
	spinner        spinner.Model
	startForm      *Dialog
	state          uiState
	svc            *services.OperationService
	width          int
}

// NewModel creates the interactive dashboard around an open handle. The
// handle's lock stays held until the caller closes it after the program
// exits.
func NewModel(handle *services.OperationHandle, runner ports.ShellRunner, settings *config.Settings, devMode bool) *Model {
	m := newModel(false, devMode)
	m.handle = handle
	m.repoPath = handle.Root()
	m.runner = runner
	m.settings = settings
	m.applySnapshot(handle.Snapshot())
	return m
}

// NewReadOnlyModel creates the dashboard served over SSH. It polls the
// status service and disables every mutating key binding.
func NewReadOnlyModel(svc *services.OperationService, repoPath string, devMode bool) *Model {
	m := newModel(true, devMode)
	m.repoPath = repoPath
	m.svc = svc
	return m
}

func newModel(readOnly, devMode bool) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorSpinner)

	return &Model{
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		help:         help.New(),
		keys:         NewKeyMap(readOnly),
		list:         newItemList(),
		readOnly:     readOnly,
		spinner:      sp,
		state:        stateDashboard,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.readOnly {
		return m.loadStatus()
	}
	return m.waitForEvent()
}

// waitForEvent blocks on the handle's event channel in a command goroutine.
// Exactly one of these is pending at a time: Init arms the first and every
// received event re-arms the next.
func (m *Model) waitForEvent() tea.Cmd {
	events := m.handle.Events()
	return func() tea.Msg {
		event, ok := <-events
		return operationEventMsg{event: event, ok: ok}
	}
}

func (m *Model) loadStatus() tea.Cmd {
	svc, repoPath := m.svc, m.repoPath
	return func() tea.Msg {
		snapshot, err := svc.Status(context.Background(), repoPath)
		return statusLoadedMsg{err: err, snapshot: snapshot}
	}
}

func (m *Model) schedulePoll() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m *Model) runVerb(verb string, call func(context.Context) (*services.Outcome, error)) tea.Cmd {
	return func() tea.Msg {
		outcome, err := call(context.Background())
		return runDoneMsg{err: err, outcome: outcome, verb: verb}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.height = size.Height
		m.width = size.Width
		m.help.Width = size.Width
		m.recalcLayout()
	}

	switch m.state {
	case stateConfirmingAbort:
		return m.updateConfirmingAbort(msg)
	case stateStarting:
		return m.updateStarting(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case operationEventMsg:
		if !msg.ok {
			return m, nil
		}
		m.lastEvent = eventLine(msg.event)
		m.applySnapshot(m.handle.Snapshot())
		return m, m.waitForEvent()

	case runDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errorManager.SetError(fmt.Errorf("%s: %w", msg.verb, msg.err))
			m.applySnapshot(m.handle.Snapshot())
			return m, m.errorManager.ClearAfterDelay()
		}
		m.applySnapshot(m.handle.Snapshot())
		return m, nil

	case statusLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, domain.ErrNoOperation) {
			m.errorManager.SetError(msg.err)
		} else {
			m.errorManager.ClearError()
			m.applySnapshot(msg.snapshot)
		}
		return m, m.schedulePoll()

	case pollTickMsg:
		return m, m.loadStatus()

	case shellDoneMsg:
		if msg.err != nil {
			m.errorManager.SetError(fmt.Errorf("resolve shell: %w", msg.err))
			return m, m.errorManager.ClearAfterDelay()
		}
		m.lastEvent = "shell closed, press c to continue picking"
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleDashboardKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.recalcLayout()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.readOnly {
			return m, m.loadStatus()
		}
		m.applySnapshot(m.handle.Snapshot())
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		if m.hasActiveOperation() {
			return m.reportError(domain.ErrOperationActive)
		}
		m.startForm = NewDialog("Start an operation", NewStartForm(m.settings), m.devMode)
		m.state = stateStarting
		return m, m.startForm.Init()

	case key.Matches(msg, m.keys.Continue):
		if !m.hasActiveOperation() {
			return m.reportError(domain.ErrNoOperation)
		}
		return m.dispatch("continue", m.handle.Resume)

	case key.Matches(msg, m.keys.Skip):
		if !m.inPhase(domain.PhaseAwaitingResolution) {
			return m.reportError(fmt.Errorf("nothing to skip: no item is waiting on a conflict"))
		}
		return m.dispatch("skip", m.handle.Skip)

	case key.Matches(msg, m.keys.Abort):
		if m.snapshot == nil || !m.snapshot.Operation.Phase.CanAbort() {
			return m.reportError(domain.ErrNoOperation)
		}
		m.abortConfirmed = false
		m.abortForm = m.newAbortDialog()
		m.state = stateConfirmingAbort
		return m, m.abortForm.Init()

	case key.Matches(msg, m.keys.Complete):
		if !m.inPhase(domain.PhaseReadyToComplete) {
			return m.reportError(fmt.Errorf("%w: complete needs phase %s", domain.ErrWrongPhase, domain.PhaseReadyToComplete))
		}
		state := m.workItemState()
		return m.dispatch("complete", func(ctx context.Context) (*services.Outcome, error) {
			return m.handle.Complete(ctx, state)
		})

	case key.Matches(msg, m.keys.Shell):
		return m.openShell()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// dispatch runs a handle call in a command goroutine and spins until its
// runDoneMsg comes back.
func (m *Model) dispatch(verb string, call func(context.Context) (*services.Outcome, error)) (tea.Model, tea.Cmd) {
	m.busy = true
	m.lastEvent = ""
	return m, tea.Batch(m.runVerb(verb, call), m.spinner.Tick)
}

func (m *Model) openShell() (tea.Model, tea.Cmd) {
	if m.snapshot == nil || m.snapshot.Operation.WorkTreePath == "" {
		return m.reportError(fmt.Errorf("the operation has no tree to open a shell in"))
	}
	tree := m.snapshot.Operation.WorkTreePath
	logging.Logger.Info("Opening resolve shell from dashboard", "path", tree)
	return m, tea.ExecProcess(m.runner.Command(tree), func(err error) tea.Msg {
		return shellDoneMsg{err: err}
	})
}

func (m *Model) updateStarting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.startForm == nil {
		m.state = stateDashboard
		return m, nil
	}

	dialog, cmd := m.startForm.Update(msg)
	if d, ok := dialog.(*Dialog); ok {
		m.startForm = d
	}

	form, ok := m.startForm.Content().(*StartForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.startForm = nil
	m.state = stateDashboard
	if form.Cancelled() {
		return m, nil
	}

	req, err := form.Request(m.settings, m.repoPath)
	if err != nil {
		return m.reportError(err)
	}
	logging.Logger.Info("Starting operation from dashboard",
		"release", req.ReleaseName,
		"source", req.SourceBranch,
		"target", req.TargetBranch)
	return m.dispatch("start", func(ctx context.Context) (*services.Outcome, error) {
		return m.handle.Start(ctx, req)
	})
}

func (m *Model) updateConfirmingAbort(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.abortForm = nil
			m.state = stateDashboard
			return m, nil
		}
	}

	if m.abortForm == nil {
		m.state = stateDashboard
		return m, nil
	}

	dialog, cmd := m.abortForm.Update(msg)
	if d, ok := dialog.(*Dialog); ok {
		m.abortForm = d
	}

	form, ok := m.abortForm.Content().(*huh.Form)
	if !ok || form.State != huh.StateCompleted {
		return m, cmd
	}

	m.abortForm = nil
	m.state = stateDashboard
	if !m.abortConfirmed {
		return m, nil
	}
	logging.Logger.Info("Aborting operation from dashboard", "repo_path", m.repoPath)
	return m.dispatch("abort", m.handle.Abort)
}

func (m *Model) newAbortDialog() *Dialog {
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Abort this operation?").
			Description("Applied picks stay on the target branch. The tree and the record are discarded.").
			Value(&m.abortConfirmed).
			Affirmative("Abort").
			Negative("Keep going"),
	))
	return NewDialog("Abort", form, m.devMode)
}

func (m *Model) reportError(err error) (tea.Model, tea.Cmd) {
	m.errorManager.SetError(err)
	return m, m.errorManager.ClearAfterDelay()
}

// applySnapshot repaints the list from a fresh snapshot. A nil snapshot
// means no record exists for the repository.
func (m *Model) applySnapshot(snapshot *domain.Snapshot) {
	m.snapshot = snapshot
	if snapshot == nil {
		m.list.SetItems(nil)
	} else {
		m.list.SetItems(buildItems(&snapshot.Operation))
	}
	m.recalcLayout()
}

func (m *Model) hasActiveOperation() bool {
	return m.snapshot != nil && !m.snapshot.Operation.Phase.Terminal()
}

func (m *Model) inPhase(phase domain.Phase) bool {
	return m.snapshot != nil && m.snapshot.Operation.Phase == phase
}

func (m *Model) workItemState() string {
	if m.settings != nil && m.settings.WorkItemState != "" {
		return m.settings.WorkItemState
	}
	return "Closed"
}

// recalcLayout sizes the list to whatever the header, panels and footer
// leave free.
func (m *Model) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	reserved := lipgloss.Height(m.headerView()) +
		lipgloss.Height(m.summaryView()) +
		lipgloss.Height(m.conflictView()) +
		lipgloss.Height(m.footerView())
	listHeight := m.height - reserved
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.SetSize(m.width, listHeight)
}

func (m *Model) View() string {
	switch m.state {
	case stateConfirmingAbort:
		if m.abortForm != nil {
			return m.abortForm.View()
		}
	case stateStarting:
		if m.startForm != nil {
			return m.startForm.View()
		}
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString(m.summaryView())
	if m.snapshot != nil {
		b.WriteString(m.list.View())
	}
	b.WriteString(m.conflictView())
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	subtitle := ""
	if m.readOnly {
		subtitle = "read-only status view"
	}
	return renderHeader(m.devMode, subtitle) + "\n"
}

func (m *Model) summaryView() string {
	if m.snapshot == nil {
		if m.readOnly {
			return theme.LabelStyle.Render("No operation in progress.") + "\n\n"
		}
		return theme.LabelStyle.Render("No operation in progress.") + "\n" +
			theme.NormalStyle.Render("Press s to start one.") + "\n\n"
	}

	op := m.snapshot.Operation
	progress := m.snapshot.Progress

	var b strings.Builder
	b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("Release %s: ", op.ReleaseName)))
	b.WriteString(theme.BranchStyle.Render(fmt.Sprintf("%s into %s", op.SourceBranch, op.TargetBranch)))
	b.WriteString("\n")

	b.WriteString(theme.LabelStyle.Render("Phase "))
	b.WriteString(phaseBadge(op.Phase))
	if m.busy {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	line := fmt.Sprintf("%d of %d applied", progress.Applied, progress.Total)
	if progress.Failed > 0 {
		line += fmt.Sprintf(", %d failed", progress.Failed)
	}
	if progress.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", progress.Skipped)
	}
	b.WriteString(theme.ProgressStyle.Render(line))
	b.WriteString("\n\n")
	return b.String()
}

func (m *Model) conflictView() string {
	if m.snapshot == nil || len(m.snapshot.Operation.ConflictedPaths) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.ConflictTitleStyle.Render("Conflicted paths"))
	for _, path := range m.snapshot.Operation.ConflictedPaths {
		b.WriteString("\n" + theme.ConflictPathStyle.Render(path))
	}
	if !m.readOnly {
		b.WriteString("\n" + theme.LabelStyle.Render("Resolve and stage them (o opens a shell), then press c. Press x to skip the item."))
	}
	return "\n" + theme.ConflictPanelStyle.Render(b.String()) + "\n"
}

func (m *Model) footerView() string {
	var notice string
	if m.errorManager.HasError() {
		notice = theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else if m.lastEvent != "" {
		notice = theme.LabelStyle.Render(m.lastEvent)
	} else {
		notice = " "
	}
	return "\n" + notice + "\n" + m.help.View(m.keys)
}

// phaseBadge renders a phase with its color
func phaseBadge(phase domain.Phase) string {
	switch phase {
	case domain.PhaseAwaitingResolution:
		return theme.PhaseBlockedStyle.Render(string(phase))
	case domain.PhasePicking, domain.PhaseCompleting:
		return theme.PhaseActiveStyle.Render(string(phase))
	case domain.PhaseCompleted, domain.PhaseAborted:
		return theme.PhaseDoneStyle.Render(string(phase))
	default:
		return theme.PhaseStartingStyle.Render(string(phase))
	}
}

// eventLine renders one progress event for the footer
func eventLine(event domain.Event) string {
	switch event.Kind {
	case domain.EventPhaseChanged:
		return fmt.Sprintf("entering %s", event.Phase)
	case domain.EventItemStarted:
		return fmt.Sprintf("picking PR %d: %s", event.Item.PullRequestID, event.Item.Title)
	case domain.EventItemApplied:
		return fmt.Sprintf("applied PR %d", event.Item.PullRequestID)
	case domain.EventItemFailed:
		return fmt.Sprintf("failed PR %d: %s", event.Item.PullRequestID, event.Item.FailureReason)
	case domain.EventItemSkipped:
		return fmt.Sprintf("skipped PR %d", event.Item.PullRequestID)
	case domain.EventConflict:
		return fmt.Sprintf("conflict on PR %d in %d file(s)", event.Item.PullRequestID, len(event.ConflictedPaths))
	case domain.EventTaskResult:
		return taskLine(event.Task)
	case domain.EventFinished:
		return fmt.Sprintf("operation %s", event.Detail)
	case domain.EventError:
		return fmt.Sprintf("error: %s", event.Detail)
	default:
		return ""
	}
}

func taskLine(task *domain.PostTask) string {
	what := fmt.Sprintf("tag PR %d", task.PullRequestID)
	if task.Kind == domain.TaskWorkItems {
		what = fmt.Sprintf("work items for PR %d", task.PullRequestID)
	}
	if !task.OK {
		return fmt.Sprintf("%s failed: %s", what, task.Detail)
	}
	return fmt.Sprintf("%s done", what)
}
