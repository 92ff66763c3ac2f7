// Package main provides the reelog CLI, a personal movie watchlist tracker
// backed by a SQLite file store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
