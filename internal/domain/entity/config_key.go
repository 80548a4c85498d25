package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path (e.g., "layout.border_width")
	Key string `json:"key" yaml:"key"`

	// Type is the Go type name (e.g., "string", "int")
	Type string `json:"type" yaml:"type"`

	// Default is the default value as a string
	Default string `json:"default" yaml:"default"`

	Description string `json:"description" yaml:"description"`

	// Values lists the accepted values of string enums
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Range describes numeric constraints (e.g., ">=0")
	Range string `json:"range,omitempty" yaml:"range,omitempty"`

	// Section groups related keys (e.g., "Layout")
	Section string `json:"section" yaml:"section"`
}
