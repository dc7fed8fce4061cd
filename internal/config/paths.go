package config

import (
	"os"
	"path/filepath"
)

// CerejaHome returns CEREJA_HOME or the ~/.cereja default
func CerejaHome() string {
	home := os.Getenv("CEREJA_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".cereja"
		}
		return filepath.Join(homeDir, ".cereja")
	}
	return ExpandPath(home)
}

// OperationsDir returns $CEREJA_HOME/operations, where records and locks live
func OperationsDir() string {
	return OperationsDirIn(CerejaHome())
}

// OperationsDirIn returns the operations directory under an explicit home
func OperationsDirIn(home string) string {
	return filepath.Join(home, "operations")
}

// TreesDir returns $CEREJA_HOME/trees, where managed clones are created
func TreesDir() string {
	return TreesDirIn(CerejaHome())
}

// TreesDirIn returns the trees directory under an explicit home
func TreesDirIn(home string) string {
	return filepath.Join(home, "trees")
}

// HistoryDBPath returns $CEREJA_HOME/history.db
func HistoryDBPath() string {
	return HistoryDBPathIn(CerejaHome())
}

// HistoryDBPathIn returns the history database path under an explicit home
func HistoryDBPathIn(home string) string {
	return filepath.Join(home, "history.db")
}

// SettingsPath returns $CEREJA_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(CerejaHome(), "settings.json")
}

// ExpandPath expands ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
