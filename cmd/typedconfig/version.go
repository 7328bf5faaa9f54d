package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "typedconfig version %s\n", version)

			if global.verbose {
				fmt.Fprintf(out, "  Build time: %s\n", buildTime)
				fmt.Fprintf(out, "  Git commit: %s\n", gitCommit)
				fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			}
		},
	}
}
