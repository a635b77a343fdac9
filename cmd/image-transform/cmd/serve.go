package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-transform/internal/imaging"
	"github.com/ironsheep/image-transform/internal/server"
)

// NewServeCmd runs the MCP server on stdin/stdout.
func NewServeCmd(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve transforms to MCP clients over stdio",
		Long: "serve transforms to MCP clients over stdio. Requests are read from stdin and\n" +
			"responses written to stdout, so logs always go to stderr or --log-file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("max-results")
			srv := server.New(
				server.WithConfig(a.cfg),
				server.WithLogger(a.logger),
				server.WithVersion(a.build.Version),
				server.WithResultLimit(limit),
			)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("max-results", imaging.DefaultResultLimit, "transform results kept in memory")
	return cmd
}
