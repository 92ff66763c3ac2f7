package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

var (
	searchSort string
	searchDesc bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search movies by title",
	Long: `Search lists movies whose title contains the term, compared case
insensitively.

Example:
  reelog search ar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, asc, err := parseSortFlags(searchSort, searchDesc, types.SortByTitle, types.SortByDate)
		if err != nil {
			return err
		}
		movies, err := store.SearchMovies(args[0], key, asc)
		if err != nil {
			return fmt.Errorf("search movies: %w", err)
		}
		printMovies(movies)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSort, "sort", "title", "sort key (title, date)")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
}
