// Command typedconfig reads typed values from YAML, JSON, .env and
// environment configuration, and records configuration snapshots.
package main

import (
	"fmt"
	"os"
)

// Build-time variables
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
