package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/image-transform/cmd/image-transform/cmd"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// register sigterm for graceful shutdown
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()

	root := cmd.NewRoot(ctx, cmd.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
		cnc()
		os.Exit(1)
	}
}
