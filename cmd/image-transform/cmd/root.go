package cmd

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-transform/internal/config"
	"github.com/ironsheep/image-transform/internal/logging"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app is the state shared by all subcommands, filled in by the root
// command's PersistentPreRunE.
type app struct {
	build  BuildInfo
	cfg    config.Config
	logger *logrus.Logger
	closer io.Closer
}

func NewRoot(ctx context.Context, build BuildInfo) *cobra.Command {
	a := &app{build: build}

	cmd := &cobra.Command{
		Use:   "image-transform",
		Short: "apply pixel transforms to images",
		Long: "image-transform applies one of seven pixel transforms (grayscale, sepia, negative,\n" +
			"noise, brightness_change, monochrome, detail) to an image file, or serves them\n" +
			"to MCP clients over stdio.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			pf := cmd.Flags()
			if pf.Changed("log-level") {
				cfg.LogLevel, _ = pf.GetString("log-level")
			}
			if pf.Changed("log-file") {
				cfg.LogFile, _ = pf.GetString("log-file")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				File:   cfg.LogFile,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.closer = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}
	cmd.AddCommand(
		NewApplyCmd(ctx, a),
		NewListCmd(ctx),
		NewServeCmd(ctx, a),
		NewVersionCmd(ctx, build),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-file", "", "Write logs to this file, rotated by size")
	return cmd
}
