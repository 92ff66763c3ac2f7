// Root command for the reelog CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigFile   string
	flagDatabasePath string
)

// location is the timezone used to interpret and render release dates.
var location = time.Local

var rootCmd = &cobra.Command{
	Use:   "reelog",
	Short: "reelog tracks movies you want to watch and have watched",
	Long: `Reelog is a personal movie watchlist tracker. It records movies,
marks them watched per user, and lists all, upcoming, or watched movies
from a local SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The version command works without a usable store.
		if cmd.Name() == "version" {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: $(CWD)/config.json)")
	rootCmd.PersistentFlags().StringVar(&flagDatabasePath, "database", "", "database file (default: from config, else data/movies.db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(watchedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statusCmd)
}
