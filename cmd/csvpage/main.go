// Csvpage is a terminal pager for CSV files.
//
// It prints a CSV file one terminal-sized page at a time and waits between
// pages: press Enter for the next page or type "q" to quit.
//
// Usage:
//
//	csvpage <file.csv> [flags]
//	csvpage probe
//	csvpage config init|show|path
//
// See 'csvpage --help' for available flags.
package main

import (
	"os"

	"github.com/muurk/csvpage/internal/logging"
	"github.com/muurk/csvpage/internal/ui"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
