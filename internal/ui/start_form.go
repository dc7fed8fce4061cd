package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/services"
)

// startFormValues holds the raw field values while the form runs
type startFormValues struct {
	hooksEnabled bool
	labels       string
	pullRequests string
	releaseName  string
	since        string
	sourceBranch string
	targetBranch string
	useWorktree  bool
}

// StartForm collects the parameters for a new operation. The dashboard reads
// the result once Completed is set and drives the run itself.
type StartForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	form      *huh.Form
	raw       startFormValues
}

// NewStartForm creates the start dialog, prefilled from settings.
func NewStartForm(settings *config.Settings) *StartForm {
	sf := &StartForm{
		raw: startFormValues{
			hooksEnabled: true,
			useWorktree:  true,
		},
	}
	if settings != nil {
		if settings.HooksEnabled != nil {
			sf.raw.hooksEnabled = *settings.HooksEnabled
		}
		if settings.UseWorktree != nil {
			sf.raw.useWorktree = *settings.UseWorktree
		}
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Source branch").
			Description("Branch the pull requests were merged into.").
			Placeholder("develop").
			Value(&sf.raw.sourceBranch).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("source branch required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Target branch").
			Description("Branch the picks land on.").
			Placeholder("release/2025.11").
			Value(&sf.raw.targetBranch).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("target branch required")
				}
				if s == sf.raw.sourceBranch {
					return fmt.Errorf("target must differ from source")
				}
				return nil
			}),
		huh.NewInput().
			Title("Release name").
			Placeholder("2025.11.1").
			Value(&sf.raw.releaseName).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("release name required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Labels (optional)").
			Description("Comma-separated pull request labels to match.").
			Placeholder("release-candidate").
			Value(&sf.raw.labels),
		huh.NewInput().
			Title("Pull requests (optional)").
			Description("Comma-separated pull request ids to pick.").
			Placeholder("101, 104").
			Value(&sf.raw.pullRequests).
			Validate(func(s string) error {
				for _, token := range splitList(s) {
					if _, err := strconv.ParseInt(token, 10, 64); err != nil {
						return fmt.Errorf("%q is not a pull request id", token)
					}
				}
				return nil
			}),
		huh.NewInput().
			Title("Merged since (optional)").
			Description("Pick everything merged on or after this date.").
			Placeholder("2025-11-01").
			Value(&sf.raw.since).
			Validate(func(s string) error {
				if s != "" {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("want a YYYY-MM-DD date")
					}
				}
				if s == "" && sf.raw.labels == "" && sf.raw.pullRequests == "" {
					return fmt.Errorf("pick a selection: labels, pull request ids, or a date")
				}
				return nil
			}),
		huh.NewSelect[bool]().
			Title("Checkout").
			Description("Where the picks are applied.").
			Options(
				huh.NewOption("git worktree next to the repository", true),
				huh.NewOption("auxiliary clone", false),
			).
			Value(&sf.raw.useWorktree),
		huh.NewConfirm().
			Title("Run hooks?").
			Description("Execute the repository pick hooks after each item.").
			Value(&sf.raw.hooksEnabled).
			Affirmative("Yes").
			Negative("No"),
	}

	sf.form = huh.NewForm(huh.NewGroup(fields...))
	return sf
}

func (sf *StartForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *StartForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Completed = true
			sf.cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
	}
	return sf, cmd
}

func (sf *StartForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Cancelled reports whether the form was dismissed without submitting.
func (sf *StartForm) Cancelled() bool {
	return sf.cancelled
}

// Request builds the start request from the submitted values. Organization,
// project and repository come from settings, same as the command line.
func (sf *StartForm) Request(settings *config.Settings, repoPath string) (services.StartRequest, error) {
	req := services.StartRequest{
		HooksEnabled:   sf.raw.hooksEnabled,
		Labels:         splitList(sf.raw.labels),
		MainlineParent: 1,
		ReleaseName:    sf.raw.releaseName,
		RepoPath:       repoPath,
		SourceBranch:   sf.raw.sourceBranch,
		TargetBranch:   sf.raw.targetBranch,
		UseWorktree:    sf.raw.useWorktree,
	}
	if settings != nil {
		req.Organization = settings.Organization
		req.Project = settings.Project
		req.Repository = settings.Repository
		if settings.MainlineParent != nil {
			req.MainlineParent = *settings.MainlineParent
		}
	}
	if req.Organization == "" || req.Project == "" || req.Repository == "" {
		return req, fmt.Errorf("organization, project and repository must be set in settings.json")
	}

	for _, token := range splitList(sf.raw.pullRequests) {
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid pull request id %q", token)
		}
		req.PullRequestIDs = append(req.PullRequestIDs, id)
	}
	if sf.raw.since != "" {
		since, err := time.Parse("2006-01-02", sf.raw.since)
		if err != nil {
			return req, fmt.Errorf("invalid since date %q, want YYYY-MM-DD", sf.raw.since)
		}
		req.Since = since
	}
	return req, nil
}

// splitList splits a comma-separated field into trimmed non-empty tokens
func splitList(s string) []string {
	var out []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
