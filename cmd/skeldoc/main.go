// Package main is the entry point for the skeldoc CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/skeldoc/internal/cli"
	"github.com/yaklabco/skeldoc/internal/configloader"
	"github.com/yaklabco/skeldoc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrExtractionFailed - the per-file errors were
		// already reported; it's just a signal for the exit code.
		if errors.Is(err, cli.ErrExtractionFailed) {
			return cli.ExitExtractionErrors
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)

		if errors.Is(err, configloader.ErrInvalidConfig) {
			return cli.ExitConfigError
		}
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
