package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/samuli/dirlist/internal/cmd"
	"github.com/samuli/dirlist/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := cmd.NewRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		report.NewDiagnostics(os.Stderr).Error(err)
		os.Exit(1)
	}
}
