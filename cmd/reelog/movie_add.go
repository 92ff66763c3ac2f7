// Movie commands: adding movies with a day-month-year release date.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/clock"
	"github.com/mesh-intelligence/reelog/internal/menu"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Manage movies",
}

var movieAddCmd = &cobra.Command{
	Use:   "add <title> <dd-mm-yyyy>",
	Short: "Add a movie",
	Long: `Add records a movie with its release date, interpreted in the local
timezone. A movie with the same title and effectively the same release
instant reports a notice and changes nothing.

Example:
  reelog movie add "Arrival" 11-11-2016`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, dateText := args[0], args[1]

		releaseTS, err := clock.ParseReleaseDate(dateText, location)
		if err != nil {
			return fmt.Errorf("invalid release date %q; expected day-month-year", dateText)
		}

		outcome, err := store.AddMovie(title, releaseTS)
		if err != nil {
			return fmt.Errorf("add movie: %w", err)
		}
		fmt.Println(menu.AddMovieNotice(outcome, title))
		return nil
	},
}

func init() {
	movieCmd.AddCommand(movieAddCmd)
}
