package config

import (
	"strconv"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout  = "Layout"
	SectionScreen  = "Screen"
	SectionLogging = "Logging"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getScreenKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.name",
			Type:        "string",
			Default:     defaults.Layout.Name,
			Description: "Name reported by layout info",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.border_width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.BorderWidth),
			Description: "Border width in pixels, subtracted twice from every window size",
			Range:       ">=0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.margin",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.Margin),
			Description: "Margin passed to the host with every placement",
			Range:       ">=0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.border_focus",
			Type:        "string",
			Default:     defaults.Layout.BorderFocus,
			Description: "Border color of the focused window",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.border_normal",
			Type:        "string",
			Default:     defaults.Layout.BorderNormal,
			Description: "Border color of unfocused windows",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.border_stack",
			Type:        "string",
			Default:     defaults.Layout.BorderStack,
			Description: "Border color of unfocused windows in a stacked column",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.remove_policy",
			Type:        "string",
			Default:     string(defaults.Layout.RemovePolicy),
			Description: "What happens to the row of a window closed while another one is focused",
			Values:      []string{string(entity.RemoveStructural), string(entity.RemoveFocusedOnly)},
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getScreenKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "screen.x",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Screen.X),
			Description: "Screen origin X used by run and play",
			Section:     SectionScreen,
		},
		{
			Key:         "screen.y",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Screen.Y),
			Description: "Screen origin Y used by run and play",
			Section:     SectionScreen,
		},
		{
			Key:         "screen.width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Screen.Width),
			Description: "Screen width in pixels",
			Range:       ">=1",
			Section:     SectionScreen,
		},
		{
			Key:         "screen.height",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Screen.Height),
			Description: "Screen height in pixels",
			Range:       ">=1",
			Section:     SectionScreen,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      validLogLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}
