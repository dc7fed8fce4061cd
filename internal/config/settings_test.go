package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("CEREJA_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CEREJA_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("CEREJA_HOME", filepath.Join(t.TempDir(), "nested"))

	debug := true
	mainline := 2
	in := &Settings{
		Debug:          &debug,
		MainlineParent: &mainline,
		Organization:   "contoso",
		Project:        "payments",
		Repository:     "payments-api",
		WorkItemState:  "Closed",
	}
	require.NoError(t, SaveSettings(in))

	out, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCerejaHome_EnvOverride(t *testing.T) {
	t.Setenv("CEREJA_HOME", "/var/lib/cereja")

	assert.Equal(t, "/var/lib/cereja", CerejaHome())
	assert.Equal(t, "/var/lib/cereja/operations", OperationsDir())
	assert.Equal(t, "/var/lib/cereja/trees", TreesDir())
	assert.Equal(t, "/var/lib/cereja/history.db", HistoryDBPath())
	assert.Equal(t, "/var/lib/cereja/settings.json", SettingsPath())
}
