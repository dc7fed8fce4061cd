package cmd

import (
	"os"
	"time"

	adaptergit "github.com/renato0307/cereja/internal/adapters/git"
	adaptershell "github.com/renato0307/cereja/internal/adapters/shell"
	adapterstorage "github.com/renato0307/cereja/internal/adapters/storage"
	"github.com/renato0307/cereja/internal/adapters/azdevops"
	"github.com/renato0307/cereja/internal/adapters/statefile"
	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/oplock"
	"github.com/renato0307/cereja/internal/ports"
	"github.com/renato0307/cereja/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CleanupService   *services.CleanupService
	MigrationService *services.MigrationService
	OperationService *services.OperationService
	ShellService     *services.ShellService

	// Collaborators commands reach for directly
	History ports.HistoryArchive
	Runner  ports.ShellRunner
	Store   ports.RecordStore
	VCS     ports.VersionControl

	// Internal - for cleanup only
	archive ports.HistoryArchive
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	archive, err := adapterstorage.NewSQLiteArchive(config.HistoryDBPath())
	if err != nil {
		return nil, err
	}

	store := statefile.NewStore(config.OperationsDir())
	locker := oplock.NewLocker(config.OperationsDir())
	vcs := adaptergit.NewClient(config.TreesDir())

	var organization, project, repository string
	if settings != nil {
		organization = settings.Organization
		project = settings.Project
		repository = settings.Repository
		if settings.BaseURL != "" {
			// A full URL wins over the dev.azure.com default
			organization = settings.BaseURL
		}
	}
	review := azdevops.NewClient(organization, project, repository, os.Getenv("CEREJA_AZDO_PAT"))
	runner := adaptershell.NewRunner()

	operationService := services.NewOperationService(store, locker, vcs, review, archive, time.Now)
	migrationService := services.NewMigrationService(func(dir string) ports.RecordStore {
		return statefile.NewStore(dir)
	})
	cleanupService := services.NewCleanupService(store, vcs, config.TreesDir(), time.Now)
	shellService := services.NewShellService(store, vcs, runner)

	return &Container{
		CleanupService:   cleanupService,
		MigrationService: migrationService,
		OperationService: operationService,
		ShellService:     shellService,
		History:          archive,
		Runner:           runner,
		Store:            store,
		VCS:              vcs,
		archive:          archive,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.archive != nil {
		err := c.archive.Close()
		c.archive = nil
		return err
	}
	return nil
}
