package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCmd(ctx context.Context, build BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Long:  "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image-transform %s\n", build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", build.GitCommit)
		},
	}
	return cmd
}
