package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Repo        string           `help:"Repository path (discovered from the current directory when omitted)" placeholder:"PATH"`
	Output      string           `help:"Output format" short:"o" enum:"text,json,ndjson" default:"text"`

	Run      RunCmd      `cmd:"" help:"Start the cereja TUI (default)" default:"1"`
	Start    StartCmd    `cmd:"start" help:"Start a cherry-pick operation for a release"`
	Continue ContinueCmd `cmd:"continue" help:"Resume after resolving (or skipping) a conflict"`
	Abort    AbortCmd    `cmd:"abort" help:"Abort the operation and clean up its tree"`
	Status   StatusCmd   `cmd:"status" help:"Show the current operation"`
	Complete CompleteCmd `cmd:"complete" help:"Tag pull requests and advance work items"`
	Shell    ShellCmd    `cmd:"shell" help:"Open a shell inside the operation's tree"`
	History  HistoryCmd  `cmd:"history" help:"Inspect archived operations"`
	Cleanup  CleanupCmd  `cmd:"cleanup" help:"Remove old finished records and orphaned trees"`
	Migrate  MigrateCmd  `cmd:"migrate" help:"Move all state to another CEREJA_HOME"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve a read-only status view over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Show the settings file location and options"`
	Ver      VersionCmd  `cmd:"version" help:"Print version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("CEREJA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CEREJA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Output == "text" {
			if _, hasEnv := os.LookupEnv("CEREJA_OUTPUT"); !hasEnv {
				if c.settings.Output != "" {
					c.Output = c.settings.Output
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// (resolve shells, git hooks) inherit debug settings and append to the
	// same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CEREJA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CEREJA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("CEREJA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so adapter constructors
	// can log
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// repoPath is the repository the command operates on. An explicit --repo
// wins; otherwise the current directory is handed to root discovery.
func (c *CLI) repoPath() string {
	if c.Repo != "" {
		return config.ExpandPath(c.Repo)
	}
	cwd, err := os.Getwd()
	if err != nil {
		logging.Logger.Warn("Failed to resolve working directory", "error", err)
		return "."
	}
	return cwd
}
