package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/skeldoc/pkg/config"
)

// ErrInvalidConfig marks configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the merged configuration for values skeldoc cannot
// work with.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("%w: jobs must be >= 0, got %d", ErrInvalidConfig, cfg.Jobs)
	}

	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidConfig, cfg.MaxDepth)
	}

	for _, ext := range cfg.Extensions {
		if strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("%w: extension %q must not contain path separators", ErrInvalidConfig, ext)
		}
	}

	return nil
}
