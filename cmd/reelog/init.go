package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the movie database",
	Long: `Init opens the configured database file, creating it and its tables
if they do not exist. Safe to run on an existing database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already opened by PersistentPreRunE.
		fmt.Printf("Initialized movie database at %s (library %s)\n", store.Path(), store.LibraryID())
		return nil
	},
}
