// Package cli provides the Cobra command structure for skeldoc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/skeldoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root skeldoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "skeldoc",
		Short: "Extract documentation skeletons from indentation-structured source",
		Long: `skeldoc reads Python-like, indentation-structured source files and
extracts their declaration skeleton: modules, classes, functions, and
top-level assignments, arranged as a tree.

It works at the lexical level, so it tolerates files that do not parse,
and it can render the skeleton as a terminal tree, JSON, Markdown, or HTML,
with docstring summaries included.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newOutlineCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
