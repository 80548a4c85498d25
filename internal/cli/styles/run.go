package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// ScenarioSummary is what the run renderer needs from a scenario result.
type ScenarioSummary struct {
	Name         string
	Steps        int
	Expectations int
	Err          error
	Snapshot     *entity.LayoutSnapshot
	Placements   []entity.Placement
}

// RunRenderer renders scenario results for the run command.
type RunRenderer struct {
	theme   *Theme
	preview *PreviewRenderer
}

// NewRunRenderer creates a run renderer with the given theme.
func NewRunRenderer(theme *Theme) *RunRenderer {
	return &RunRenderer{theme: theme, preview: NewPreviewRenderer(theme)}
}

// Render renders one scenario. previewWidth <= 0 disables the preview.
func (r *RunRenderer) Render(s ScenarioSummary, previewWidth, previewHeight int) string {
	var sb strings.Builder

	sb.WriteString(r.renderHeader(s))
	sb.WriteString("\n")
	if s.Err != nil {
		sb.WriteString("  " + r.theme.ErrorStyle.Render(s.Err.Error()) + "\n")
	}
	if s.Snapshot != nil {
		sb.WriteString(r.renderColumns(s.Snapshot))
		sb.WriteString("\n")
	}
	if len(s.Placements) > 0 {
		sb.WriteString(r.renderPlacements(s.Placements))
		sb.WriteString("\n")
	}
	if previewWidth > 0 && s.Snapshot != nil {
		sb.WriteString(r.preview.Render(s.Snapshot, previewWidth, previewHeight))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *RunRenderer) renderHeader(s ScenarioSummary) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	if s.Err != nil {
		icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	}
	focus := "none"
	if s.Snapshot != nil && s.Snapshot.CurrentWindow != "" {
		focus = string(s.Snapshot.CurrentWindow)
	}
	return fmt.Sprintf("%s %s  %s %s %s",
		icon,
		r.theme.Title.Render(s.Name),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d steps", s.Steps)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d checks", s.Expectations)),
		r.theme.Badge.Render("focus "+focus),
	)
}

func (r *RunRenderer) renderColumns(snap *entity.LayoutSnapshot) string {
	rows := make([][]string, 0, len(snap.Columns))
	for i, c := range snap.Columns {
		ids := make([]string, len(c.Rows))
		for j, id := range c.Rows {
			ids[j] = string(id)
			if c.Mode == entity.ModeStacked && j == c.Active {
				ids[j] = "*" + ids[j]
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(c.Mode),
			strconv.Itoa(c.Width) + "%",
			strings.Join(ids, " "),
		})
	}
	return r.table([]string{"Column", "Mode", "Width", "Rows"}, rows)
}

func (r *RunRenderer) renderPlacements(placements []entity.Placement) string {
	rows := make([][]string, 0, len(placements))
	for _, p := range placements {
		visible := "yes"
		if !p.Visible {
			visible = "no"
		}
		rows = append(rows, []string{
			string(p.ClientID),
			fmt.Sprintf("%d,%d", p.X, p.Y),
			fmt.Sprintf("%dx%d", p.Width, p.Height),
			string(p.Border),
			visible,
		})
	}
	return r.table([]string{"Window", "Position", "Size", "Border", "Visible"}, rows)
}

func (r *RunRenderer) table(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
