// Shared helpers for reelog CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/reelog/internal/paths"
	"github.com/mesh-intelligence/reelog/internal/sqlite"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

// store is the process-wide store handle, opened by the root command's
// PersistentPreRunE and closed by PersistentPostRunE.
var store *sqlite.Store

// openStore resolves the config and database paths and opens the store.
func openStore() error {
	configPath, err := paths.ResolveConfigFile(flagConfigFile)
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	dbPath, err := paths.ResolveDatabasePath(flagDatabasePath, cfg.GetString(cfgKeyDatabasePath))
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	store, err = sqlite.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	return nil
}

// closeStore releases the store handle. Safe to call when no store was
// opened.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// parseSortFlags converts the --sort and --desc flag values into query
// parameters, restricting the sort key to the allowed set.
func parseSortFlags(sort string, desc bool, allowed ...types.SortKey) (types.SortKey, bool, error) {
	key, err := types.ParseSortKey(sort)
	if err != nil {
		return 0, false, fmt.Errorf("invalid --sort value %q", sort)
	}
	for _, a := range allowed {
		if key == a {
			return key, !desc, nil
		}
	}
	return 0, false, fmt.Errorf("--sort %q is not valid for this listing", sort)
}
