package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// GetConfigSchemaUseCase lists the configuration keys a user can set.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section restricts the output to one section, matched case-insensitively.
	// Empty returns every key.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string // in first-seen order
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(ctx context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	log := logging.FromContext(ctx)

	all := uc.provider.GetSchema()
	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKeyInfo, 0, len(all))}
	seen := make(map[string]bool)

	for _, key := range all {
		if input.Section != "" && !strings.EqualFold(key.Section, input.Section) {
			continue
		}
		out.Keys = append(out.Keys, key)
		if !seen[key.Section] {
			seen[key.Section] = true
			out.Sections = append(out.Sections, key.Section)
		}
	}

	if input.Section != "" && len(out.Keys) == 0 {
		return nil, fmt.Errorf("unknown config section %q", input.Section)
	}

	log.Debug().Int("keys", len(out.Keys)).Str("section", input.Section).Msg("config schema listed")
	return out, nil
}
