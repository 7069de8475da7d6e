package configloader

import "github.com/yaklabco/skeldoc/pkg/config"

// merge combines two configurations, with override taking precedence
// over base. Scalars overwrite when set; slices replace base entirely
// when non-nil; unset values in override leave base alone.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}

	if override.Docstrings != nil {
		result.Docstrings = override.Docstrings
	}

	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return &result
}
