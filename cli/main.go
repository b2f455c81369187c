// ABOUTME: Entry point for the vdb CLI
// ABOUTME: Command-line tool and TUI for the VDB benchmark calculator

package main

import (
	"fmt"
	"os"

	"github.com/chrisspier/vdb-benchmark-app/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
