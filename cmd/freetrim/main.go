//go:build cgo

// Command freetrim exercises the freetrim layer against the process's C heap.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "freetrim",
		Short:        "Exercise periodic heap trimming on the C heap",
		SilenceUsage: true,
	}

	root.AddCommand(newChurnCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
