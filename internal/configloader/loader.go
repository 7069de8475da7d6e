package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/skeldoc/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to start project config discovery
	// from. Empty means the process working directory.
	WorkingDir string

	// ExplicitPath is a config file given via --config. When set it
	// replaces project and user config discovery.
	ExplicitPath string

	// CLIConfig holds flag-level overrides applied last.
	CLIConfig *config.Config
}

// LoadResult is the outcome of configuration loading.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (SKELDOC_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.skeldoc.yaml upward search)
//  5. User config ($XDG_CONFIG_HOME/skeldoc/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	if opts.ExplicitPath != "" {
		loaded, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}
		cfg = merge(cfg, loaded)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		for _, path := range []string{paths.User, paths.Project} {
			if path == "" {
				continue
			}
			loaded, err := loadConfigFile(path)
			if err != nil {
				return nil, err
			}
			cfg = merge(cfg, loaded)
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}

	cfg = merge(cfg, opts.CLIConfig)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
