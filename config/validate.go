package config

import (
	"fmt"
	"strings"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if err := validateNames("gate.additional_names", cfg.Gate.AdditionalNames); err != nil {
		return err
	}
	if err := validateNames("gate.ignored_names", cfg.Gate.IgnoredNames); err != nil {
		return err
	}

	return nil
}

// validateNames enforces the exact-match policy on configured entries:
// bare filenames only, no path separators and no pattern metacharacters.
func validateNames(key string, names []string) error {
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s[%d]: name must not be empty", key, i)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s[%d]: %q must be a bare filename, not a path", key, i, name)
		}
		if strings.ContainsAny(name, "*?[") {
			return fmt.Errorf("%s[%d]: %q must be an exact filename, not a pattern", key, i, name)
		}
	}
	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
