package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/dragline"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dragline version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.printf("dragline %s\n", versionLabel())
		},
	}
}

// versionLabel is the tag for a SemVer VERSION file and "(devel)" for
// anything else, such as an unstamped build.
func versionLabel() string {
	if !dragline.IsSemver(dragline.Version()) {
		return "(devel)"
	}
	return dragline.VersionTag()
}
