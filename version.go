package main

import (
	"fmt"
	"runtime"

	"jvmfind/internal/theme"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "%s %s %s\n",
				theme.Subtitle.Render("jvmfind"),
				theme.Faint.Render("version"),
				theme.VersionStyle.Render(Version))
			fmt.Fprintf(a.stdout, "commit %s, built %s, %s/%s, host arch %s\n",
				Commit, BuildDate, runtime.GOOS, runtime.GOARCH, a.host)
		},
	}
}
