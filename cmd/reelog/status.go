package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database location and row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.Counts()
		if err != nil {
			return fmt.Errorf("read counts: %w", err)
		}
		fmt.Printf("Database: %s\n", store.Path())
		fmt.Printf("Library:  %s\n", store.LibraryID())
		fmt.Printf("Users:         %d\n", stats.Users)
		fmt.Printf("Movies:        %d\n", stats.Movies)
		fmt.Printf("Watch entries: %d\n", stats.WatchEntries)
		return nil
	},
}
