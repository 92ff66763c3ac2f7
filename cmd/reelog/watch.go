package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/menu"
)

var watchCmd = &cobra.Command{
	Use:   "watch <username> <title>",
	Short: "Record that a user watched a movie",
	Long: `Watch records a watch entry for the given user and movie. Unknown
usernames or titles report a notice and change nothing, as does a pair
already recorded.

Example:
  reelog watch alice "Arrival"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, title := args[0], args[1]

		outcome, err := store.RecordWatch(username, title)
		if err != nil {
			return fmt.Errorf("record watch: %w", err)
		}
		fmt.Println(menu.WatchNotice(outcome, username, title))
		return nil
	},
}
