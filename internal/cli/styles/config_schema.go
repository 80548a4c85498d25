package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format. Sections are
// shown in the order given; an empty order falls back to first-seen order.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo, order []string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)
	if len(order) == 0 {
		order = sectionOrder(keys)
	}

	parts := []string{r.renderHeader(), ""}
	for _, section := range order {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference"))
	return title
}

func sectionOrder(keys []entity.ConfigKeyInfo) []string {
	var order []string
	seen := make(map[string]bool)
	for _, key := range keys {
		if !seen[key.Section] {
			seen[key.Section] = true
			order = append(order, key.Section)
		}
	}
	return order
}

func groupBySection(keys []entity.ConfigKeyInfo) map[string][]entity.ConfigKeyInfo {
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, r.theme.Highlight.Render(name))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			keyStyle.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			defaultStyle.Render(key.Default),
		),
		"  " + r.theme.Subtle.Render(key.Description),
	}
	if len(key.Values) > 0 {
		lines = append(lines, "  "+r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", ")))
	}
	if key.Range != "" {
		lines = append(lines, "  "+r.theme.Normal.Render("Range: "+key.Range))
	}
	return strings.Join(lines, "\n")
}
