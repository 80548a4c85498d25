package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wmiitile/internal/domain/build"
)

// VersionRenderer renders build info next to a small column logo.
type VersionRenderer struct {
	theme *Theme
}

func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render lays the logo out to the left of the build info.
func (r *VersionRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

// renderLogo draws two columns, the right one stacked with a gap where the
// collapsed window would be.
func (r *VersionRenderer) renderLogo() string {
	focus := lipgloss.NewStyle().Foreground(r.theme.WindowFocus).Bold(true)
	stack := lipgloss.NewStyle().Foreground(r.theme.WindowStack).Bold(true)

	left := focus.Render("██\n██\n██\n██\n██")
	right := stack.Render("██\n██\n  \n██\n██")
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(2).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
}

func (r *VersionRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		r.theme.Title.Render("wmiitile"),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		"",
		// links
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}
