package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/skeldoc/pkg/config"
)

// envVarPrefix is the prefix for all skeldoc environment variables.
const envVarPrefix = "SKELDOC_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with SKELDOC_
// (e.g. SKELDOC_FORMAT=json).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		format := config.OutputFormat(strings.ToLower(v))
		if !format.IsValid() {
			return fmt.Errorf("invalid %sFORMAT: %q", envVarPrefix, v)
		}
		cfg.Format = format
	}

	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = jobs
	}

	if v := os.Getenv(envVarPrefix + "MAX_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_DEPTH: %q", envVarPrefix, v)
		}
		cfg.MaxDepth = depth
	}

	if v := os.Getenv(envVarPrefix + "DOCSTRINGS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDOCSTRINGS: %q", envVarPrefix, v)
		}
		cfg.Docstrings = &enabled
	}

	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		parts := strings.Split(v, ",")
		patterns := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		cfg.Ignore = patterns
	}

	return nil
}
