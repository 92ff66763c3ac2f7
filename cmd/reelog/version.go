package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the release version, overridable at build time with
// -ldflags "-X main.version=...".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reelog v%s\n", version)
	},
}
