package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wmiitile/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderEffective renders the effective configuration with color swatches.
func (r *ConfigRenderer) RenderEffective(path string, cfg *config.Config) string {
	keyStyle := r.theme.Subtle.Width(16)
	valStyle := r.theme.Normal

	swatch := func(color string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " " + valStyle.Render(color)
	}

	row := func(k, v string) string {
		return "  " + keyStyle.Render(k) + v
	}

	lines := []string{
		r.theme.Highlight.Render("Layout"),
		row("name", valStyle.Render(cfg.Layout.Name)),
		row("border_width", valStyle.Render(fmt.Sprint(cfg.Layout.BorderWidth))),
		row("margin", valStyle.Render(fmt.Sprint(cfg.Layout.Margin))),
		row("border_focus", swatch(cfg.Layout.BorderFocus)),
		row("border_normal", swatch(cfg.Layout.BorderNormal)),
		row("border_stack", swatch(cfg.Layout.BorderStack)),
		row("remove_policy", valStyle.Render(string(cfg.Layout.RemovePolicy))),
		"",
		r.theme.Highlight.Render("Screen"),
		row("origin", valStyle.Render(fmt.Sprintf("%d,%d", cfg.Screen.X, cfg.Screen.Y))),
		row("size", valStyle.Render(fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))),
		"",
		r.theme.Highlight.Render("Logging"),
		row("level", valStyle.Render(cfg.Logging.Level)),
		row("format", valStyle.Render(cfg.Logging.Format)),
	}

	return r.RenderConfigInfo(path) + "\n" + r.theme.Box.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
