package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/reelog/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Menu starts the numbered interactive loop: add users and movies,
record watches, and browse listings until the exit option is chosen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return menu.New(store, os.Stdin, os.Stdout, location).Run()
	},
}
