package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/skeldoc/internal/configloader"
	"github.com/yaklabco/skeldoc/internal/logging"
	"github.com/yaklabco/skeldoc/pkg/config"
	"github.com/yaklabco/skeldoc/pkg/fsutil"
	"github.com/yaklabco/skeldoc/pkg/reporter"
	"github.com/yaklabco/skeldoc/pkg/runner"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// ErrExtractionFailed is returned when one or more files failed to extract.
var ErrExtractionFailed = errors.New("extraction failed for one or more files")

type outlineFlags struct {
	format        string
	output        string
	title         string
	ignore        []string
	extensions    []string
	maxDepth      int
	noDocstrings  bool
	noLineNumbers bool
	noSummary     bool
}

func newOutlineCommand() *cobra.Command {
	var cfg config.Config
	flags := &outlineFlags{}

	cmd := &cobra.Command{
		Use:   "outline [paths...]",
		Short: "Extract and print the declaration skeleton of source files",
		Long:  outlineLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args, &cfg, flags)
		},
	}

	addOutlineFlags(cmd, &cfg, flags)

	return cmd
}

const outlineLongDescription = `Extract the declaration skeleton of indentation-structured source files.

By default, scans the current directory and subdirectories for supported
source files. Specify paths to outline specific files or directories.

Examples:
  skeldoc outline                     # Outline current directory
  skeldoc outline src/                # Outline a directory
  skeldoc outline app.py              # Outline a single file
  skeldoc outline --format json       # Output as JSON for tooling
  skeldoc outline --format markdown   # Output as a Markdown document
  skeldoc outline -o SKELETON.md --format markdown
  skeldoc outline --max-depth 2       # Limit outline depth`

func runOutline(cmd *cobra.Command, args []string, cfg *config.Config, flags *outlineFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Output = flags.output
	cfg.Ignore = flags.ignore
	cfg.Extensions = flags.extensions
	cfg.MaxDepth = flags.maxDepth
	if flags.noDocstrings {
		off := false
		cfg.Docstrings = &off
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
		"max_depth", finalCfg.MaxDepth,
		"docstrings", finalCfg.IncludeDocstrings(),
	)

	// Create the runner around a fresh extractor.
	run := runner.New(skeleton.NewExtractor())

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting extraction run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := run.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("extraction run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	repOpts := reporter.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          format,
		Color:           colorMode,
		ShowDocstrings:  finalCfg.IncludeDocstrings(),
		ShowLineNumbers: !flags.noLineNumbers,
		ShowSummary:     !flags.noSummary,
		MaxDepth:        finalCfg.MaxDepth,
		Title:           flags.title,
		WorkingDir:      workDir,
	}

	// When writing to a file, render into a buffer without color and
	// persist it atomically.
	var outBuf *bytes.Buffer
	if finalCfg.Output != "" {
		outBuf = &bytes.Buffer{}
		repOpts.Writer = outBuf
		repOpts.Color = "never"
	}

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if outBuf != nil {
		if err := fsutil.WriteAtomic(ctx, finalCfg.Output, outBuf.Bytes(), fsutil.DefaultFileMode); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("wrote outline", logging.FieldOutput, finalCfg.Output)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrExtractionFailed
	}

	return nil
}

func addOutlineFlags(cmd *cobra.Command, cfg *config.Config, flags *outlineFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, markdown, html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().StringVar(&flags.title, "title", "Code skeleton", "document title for markdown and HTML output")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "additional file extensions to scan")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "maximum outline depth (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.noDocstrings, "no-docstrings", false, "omit docstring summaries")
	cmd.Flags().BoolVar(&flags.noLineNumbers, "no-line-numbers", false, "omit source line numbers")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the aggregate summary line")
}
