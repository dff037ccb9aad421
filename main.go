// Package main is the entry point for the jira-changelog CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielolaszy/jira-changelog/cmd"
	"github.com/danielolaszy/jira-changelog/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logging.Debug("starting jira-changelog", "version", version, "log_level", logging.LevelFromEnv())

	if err := cmd.Execute(ctx); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
