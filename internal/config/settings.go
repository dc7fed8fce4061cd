package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of $CEREJA_HOME/settings.json
type Settings struct {
	BaseURL        string `json:"base_url,omitempty"`
	Debug          *bool  `json:"debug,omitempty"`
	HooksEnabled   *bool  `json:"hooks_enabled,omitempty"`
	MainlineParent *int   `json:"mainline_parent,omitempty"`
	MaxLogFiles    *int   `json:"max_log_files,omitempty"`
	Organization   string `json:"organization,omitempty"`
	Output         string `json:"output,omitempty"`
	Project        string `json:"project,omitempty"`
	Repository     string `json:"repository,omitempty"`
	UseWorktree    *bool  `json:"use_worktree,omitempty"`
	WorkItemState  string `json:"work_item_state,omitempty"`
}

// LoadSettings loads settings from $CEREJA_HOME/settings.json (or
// ~/.cereja/settings.json if not set).
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CEREJA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := SettingsPath()
	if err := os.MkdirAll(CerejaHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
