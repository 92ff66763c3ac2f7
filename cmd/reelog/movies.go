package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/clock"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

var (
	moviesUpcoming bool
	moviesSort     string
	moviesDesc     bool
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies",
	Long: `Movies lists every recorded movie with its release date. With
--upcoming, only movies released strictly after now are listed, soonest
first.

Example:
  reelog movies
  reelog movies --upcoming
  reelog movies --sort date --desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := types.MovieQuery{
			Filter:    types.MovieFilter{Kind: types.FilterAll},
			OrderBy:   types.SortByTitle,
			Ascending: true,
		}
		if moviesUpcoming {
			query.Filter = types.MovieFilter{Kind: types.FilterUpcoming, After: clock.NowTimestamp()}
			query.OrderBy = types.SortByDate
		}
		if cmd.Flags().Changed("sort") || cmd.Flags().Changed("desc") {
			key, asc, err := parseSortFlags(moviesSort, moviesDesc,
				types.SortByTitle, types.SortByDate, types.SortByID)
			if err != nil {
				return err
			}
			query.OrderBy = key
			query.Ascending = asc
		}

		movies, err := store.ListMovies(query)
		if err != nil {
			return fmt.Errorf("list movies: %w", err)
		}
		printMovies(movies)
		return nil
	},
}

func init() {
	moviesCmd.Flags().BoolVar(&moviesUpcoming, "upcoming", false, "only movies released after now")
	moviesCmd.Flags().StringVar(&moviesSort, "sort", "title", "sort key (title, date, id)")
	moviesCmd.Flags().BoolVar(&moviesDesc, "desc", false, "sort descending")
}
