package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file, for
// editors that validate TOML against JSON schemas.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/wmiitile/config.schema.json"
	schema.Title = "wmiitile Configuration"
	schema.Description = "Configuration schema for wmiitile, a wmii-style column tiling layout"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
