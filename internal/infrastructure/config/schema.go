// Package config provides configuration management for wmiitile with Viper integration.
package config

import (
	"github.com/bnema/wmiitile/internal/domain/entity"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for wmiitile.
type Config struct {
	// Layout holds the column layout options and border colors.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Screen is the rectangle the CLI hosts project onto.
	Screen ScreenConfig `mapstructure:"screen" yaml:"screen" toml:"screen" json:"screen"`
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig mirrors the options of the wmii column layout.
type LayoutConfig struct {
	Name         string              `mapstructure:"name" yaml:"name" toml:"name" json:"name" jsonschema:"description=Name reported by layout info,default=wmii"`
	BorderWidth  int                 `mapstructure:"border_width" yaml:"border_width" toml:"border_width" json:"border_width" jsonschema:"minimum=0,default=1"`
	Margin       int                 `mapstructure:"margin" yaml:"margin" toml:"margin" json:"margin" jsonschema:"minimum=0,default=0"`
	BorderFocus  string              `mapstructure:"border_focus" yaml:"border_focus" toml:"border_focus" json:"border_focus" jsonschema:"pattern=^#[0-9a-fA-F]{6}$,default=#ff5555"`
	BorderNormal string              `mapstructure:"border_normal" yaml:"border_normal" toml:"border_normal" json:"border_normal" jsonschema:"pattern=^#[0-9a-fA-F]{6}$,default=#000000"`
	BorderStack  string              `mapstructure:"border_stack" yaml:"border_stack" toml:"border_stack" json:"border_stack" jsonschema:"pattern=^#[0-9a-fA-F]{6}$,default=#ff00ff"`
	RemovePolicy entity.RemovePolicy `mapstructure:"remove_policy" yaml:"remove_policy" toml:"remove_policy" json:"remove_policy" jsonschema:"enum=structural,enum=focused_only,default=structural"`
}

// ScreenConfig is the default screen rectangle.
type ScreenConfig struct {
	X      int `mapstructure:"x" yaml:"x" toml:"x" json:"x"`
	Y      int `mapstructure:"y" yaml:"y" toml:"y" json:"y"`
	Width  int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1,default=1920"`
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1,default=1080"`
}

// Rect returns the screen as an entity rectangle.
func (s ScreenConfig) Rect() entity.Rect {
	return entity.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,default=info"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// ProjectionOptions returns the decoration sizes handed to the projector.
func (c *Config) ProjectionOptions() entity.ProjectionOptions {
	return entity.ProjectionOptions{
		BorderWidth: c.Layout.BorderWidth,
		Margin:      c.Layout.Margin,
	}
}

// BorderColor maps a border category to the configured color.
func (c *Config) BorderColor(style entity.BorderStyle) string {
	switch style {
	case entity.BorderFocus:
		return c.Layout.BorderFocus
	case entity.BorderStack:
		return c.Layout.BorderStack
	default:
		return c.Layout.BorderNormal
	}
}
