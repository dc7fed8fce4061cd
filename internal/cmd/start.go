package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/cereja/internal/services"
)

// StartCmd starts a cherry-pick operation for a release
type StartCmd struct {
	Source  string `help:"Branch the pull requests were completed into" required:""`
	Target  string `help:"Branch the picks land on" required:""`
	Release string `help:"Release name, used for pull request tags" required:""`

	Label []string `help:"Only pick pull requests carrying this label (repeatable)"`
	PR    []int64  `name:"pr" help:"Pick these pull request ids (repeatable)"`
	Since string   `help:"Only pick pull requests completed on or after this date (YYYY-MM-DD)"`

	Mainline    int  `help:"Parent number to pick merge commits against" default:"1"`
	NoHooks     bool `help:"Run git without repository hooks"`
	UseWorktree bool `help:"Pick in a linked worktree of the repository instead of a fresh clone"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	req, err := s.request(cli)
	if err != nil {
		return err
	}

	return cli.runOperation(context.Background(), func(ctx context.Context, handle *services.OperationHandle) (*services.Outcome, error) {
		return handle.Start(ctx, req)
	})
}

func (s *StartCmd) request(cli *CLI) (services.StartRequest, error) {
	req := services.StartRequest{
		HooksEnabled:   !s.NoHooks,
		Labels:         s.Label,
		MainlineParent: s.Mainline,
		PullRequestIDs: s.PR,
		ReleaseName:    s.Release,
		RepoPath:       cli.repoPath(),
		SourceBranch:   s.Source,
		TargetBranch:   s.Target,
		UseWorktree:    s.UseWorktree,
	}

	if s.Since != "" {
		since, err := time.Parse("2006-01-02", s.Since)
		if err != nil {
			return req, fmt.Errorf("invalid --since date %q, want YYYY-MM-DD: %w", s.Since, err)
		}
		req.Since = since
	}

	if cli.settings != nil {
		req.Organization = cli.settings.Organization
		req.Project = cli.settings.Project
		req.Repository = cli.settings.Repository

		// Flags win; settings fill the gaps
		if !s.NoHooks && cli.settings.HooksEnabled != nil {
			req.HooksEnabled = *cli.settings.HooksEnabled
		}
		if !s.UseWorktree && cli.settings.UseWorktree != nil {
			req.UseWorktree = *cli.settings.UseWorktree
		}
		if s.Mainline == 1 && cli.settings.MainlineParent != nil {
			req.MainlineParent = *cli.settings.MainlineParent
		}
	}

	if req.Organization == "" || req.Project == "" || req.Repository == "" {
		return req, fmt.Errorf("organization, project and repository must be set in %s", "settings.json")
	}

	return req, nil
}
