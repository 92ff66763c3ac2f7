// Package paths resolves the configuration-file and database-file locations.
package paths

import (
	"os"
	"path/filepath"
)

// Default locations relative to the working directory.
const (
	DefaultConfigFile   = "config.json"
	DefaultDatabasePath = "data/movies.db"
)

// Environment variable names for location overrides.
const (
	EnvConfigFile   = "REELOG_CONFIG"
	EnvDatabasePath = "REELOG_DATABASE"
)

// ResolveConfigFile returns the configuration file path following the
// precedence chain: flag > REELOG_CONFIG env > $(CWD)/config.json.
func ResolveConfigFile(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultConfigFile)
}

// ResolveDatabasePath returns the database file path following the
// precedence chain: flag > config value > REELOG_DATABASE env >
// $(CWD)/data/movies.db.
func ResolveDatabasePath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDatabasePath); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultDatabasePath)
}
