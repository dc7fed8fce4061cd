package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/cereja/internal/config"
	"github.com/renato0307/cereja/internal/services"
)

// MigrateCmd moves all cereja state to another home directory
type MigrateCmd struct {
	Dest string `arg:"" help:"Destination CEREJA_HOME directory"`
}

// Run executes the migrate command
func (m *MigrateCmd) Run(cli *CLI) error {
	// The history database moves too, so release our handle on it first
	if err := cli.Container.Close(); err != nil {
		return fmt.Errorf("failed to close history archive: %w", err)
	}

	result, err := cli.Container.MigrationService.MoveHome(context.Background(), services.MoveHomeParams{
		DestHome:   m.Dest,
		SourceHome: config.CerejaHome(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Moved %d record(s) to %s.\n", result.MovedRecords, config.ExpandPath(m.Dest))
	if result.MovedTrees {
		fmt.Println("Moved the trees directory.")
	}
	if result.MovedHistory {
		fmt.Println("Moved the history database.")
	}
	fmt.Printf("Set CEREJA_HOME=%s to use the new location.\n", config.ExpandPath(m.Dest))
	return nil
}
