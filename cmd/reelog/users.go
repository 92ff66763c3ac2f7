package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/clock"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

var (
	usersSort string
	usersDesc bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	Long: `Users lists every registered user.

Example:
  reelog users
  reelog users --sort id --desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, asc, err := parseSortFlags(usersSort, usersDesc, types.SortByUsername, types.SortByID)
		if err != nil {
			return err
		}
		users, err := store.ListUsers(types.UserQuery{OrderBy: key, Ascending: asc})
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		printUsers(users)
		return nil
	},
}

func init() {
	usersCmd.Flags().StringVar(&usersSort, "sort", "username", "sort key (username, id)")
	usersCmd.Flags().BoolVar(&usersDesc, "desc", false, "sort descending")
}

// printUsers writes one user per line; empty listings print nothing.
func printUsers(users []types.User) {
	for _, u := range users {
		fmt.Fprintf(os.Stdout, "%d\t%s\n", u.ID, u.Username)
	}
}

// printMovies writes one movie per line with its release date; empty
// listings print nothing.
func printMovies(movies []types.Movie) {
	for _, m := range movies {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", m.Title, clock.FormatReleaseDate(m.ReleaseTimestamp, location))
	}
}
