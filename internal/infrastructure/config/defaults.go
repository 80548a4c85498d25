package config

import "github.com/bnema/wmiitile/internal/domain/entity"

// Default configuration constants
const (
	// Layout defaults
	defaultLayoutName   = "wmii"
	defaultBorderWidth  = 1
	defaultMargin       = 0
	defaultBorderFocus  = "#ff5555"
	defaultBorderNormal = "#000000"
	defaultBorderStack  = "#ff00ff"

	// Screen defaults
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Name:         defaultLayoutName,
			BorderWidth:  defaultBorderWidth,
			Margin:       defaultMargin,
			BorderFocus:  defaultBorderFocus,
			BorderNormal: defaultBorderNormal,
			BorderStack:  defaultBorderStack,
			RemovePolicy: entity.RemoveStructural,
		},
		Screen: ScreenConfig{
			Width:  defaultScreenWidth,
			Height: defaultScreenHeight,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
