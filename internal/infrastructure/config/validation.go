package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/wmiitile/internal/domain/validation"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateScreen(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.BorderWidth < 0 {
		validationErrors = append(validationErrors, "layout.border_width must be non-negative")
	}
	if config.Layout.Margin < 0 {
		validationErrors = append(validationErrors, "layout.margin must be non-negative")
	}
	validationErrors = append(validationErrors, domainvalidation.ValidateHexColor("layout.border_focus", config.Layout.BorderFocus)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateHexColor("layout.border_normal", config.Layout.BorderNormal)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateHexColor("layout.border_stack", config.Layout.BorderStack)...)
	if !config.Layout.RemovePolicy.IsValid() {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.remove_policy must be one of: structural, focused_only (got: %s)",
			config.Layout.RemovePolicy,
		))
	}
	return validationErrors
}

func validateScreen(config *Config) []string {
	var validationErrors []string
	if config.Screen.Width <= 0 {
		validationErrors = append(validationErrors, "screen.width must be positive")
	}
	if config.Screen.Height <= 0 {
		validationErrors = append(validationErrors, "screen.height must be positive")
	}
	// Borders must leave room for at least one pixel in a full-screen window.
	if config.Screen.Width > 0 && config.Screen.Height > 0 {
		minSide := min(config.Screen.Width, config.Screen.Height)
		if 2*config.Layout.BorderWidth >= minSide {
			validationErrors = append(validationErrors, "layout.border_width is too large for the screen size")
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	if config.Logging.Level == "" {
		return nil
	}
	for _, level := range validLogLevels {
		if config.Logging.Level == level {
			return nil
		}
	}
	return []string{fmt.Sprintf(
		"logging.level must be one of: %s (got: %s)",
		strings.Join(validLogLevels, ", "),
		config.Logging.Level,
	)}
}
