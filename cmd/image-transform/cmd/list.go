package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-transform/internal/transform"
)

func NewListCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list available transforms",
		Long:  "list available transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range transform.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, k.Description())
			}
			return w.Flush()
		},
	}
	return cmd
}
