package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

var (
	watchedSort string
	watchedDesc bool
)

var watchedCmd = &cobra.Command{
	Use:   "watched <username>",
	Short: "List the movies a user has watched",
	Long: `Watched lists the movies the given user has recorded watch entries
for. An unknown user simply has no entries; nothing is printed.

Example:
  reelog watched alice
  reelog watched alice --sort date`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, asc, err := parseSortFlags(watchedSort, watchedDesc, types.SortByTitle, types.SortByDate)
		if err != nil {
			return err
		}
		movies, err := store.WatchedMovies(args[0], key, asc)
		if err != nil {
			return fmt.Errorf("list watched movies: %w", err)
		}
		printMovies(movies)
		return nil
	},
}

func init() {
	watchedCmd.Flags().StringVar(&watchedSort, "sort", "title", "sort key (title, date)")
	watchedCmd.Flags().BoolVar(&watchedDesc, "desc", false, "sort descending")
}
