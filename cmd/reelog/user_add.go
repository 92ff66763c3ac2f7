// User commands: adding watchers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/menu"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a user",
	Long: `Add registers a new user. Usernames are unique; adding an existing
username reports a notice and changes nothing.

Example:
  reelog user add alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, err := store.AddUser(args[0])
		if err != nil {
			return fmt.Errorf("add user: %w", err)
		}
		fmt.Println(menu.AddUserNotice(outcome, args[0]))
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
}
