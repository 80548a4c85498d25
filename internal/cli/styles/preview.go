package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

const (
	minBoxWidth  = 3
	minBoxHeight = 3
)

// PreviewRenderer draws a layout snapshot as bordered boxes, one per
// visible window, scaled to a terminal area.
type PreviewRenderer struct {
	theme *Theme
}

// NewPreviewRenderer creates a preview renderer with the given theme.
func NewPreviewRenderer(theme *Theme) *PreviewRenderer {
	return &PreviewRenderer{theme: theme}
}

// Render draws snap into a width x height cell area.
func (r *PreviewRenderer) Render(snap *entity.LayoutSnapshot, width, height int) string {
	if snap == nil || len(snap.Columns) == 0 || width < minBoxWidth || height < minBoxHeight {
		return ""
	}

	widths := columnCells(snap.Columns, width)
	cols := make([]string, 0, len(snap.Columns))
	for i, c := range snap.Columns {
		cols = append(cols, r.renderColumn(snap, c, widths[i], height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// columnCells converts width percentages to cell counts. The last column
// absorbs the rounding remainder so the preview fills the area.
func columnCells(columns []entity.ColumnSnapshot, width int) []int {
	out := make([]int, len(columns))
	used := 0
	for i, c := range columns {
		out[i] = c.Width * width / entity.FullWidth
		used += out[i]
	}
	out[len(out)-1] += width - used
	return out
}

func (r *PreviewRenderer) renderColumn(snap *entity.LayoutSnapshot, c entity.ColumnSnapshot, width, height int) string {
	switch {
	case len(c.Rows) == 0:
		return r.box("empty", r.theme.Border, false, width, height)
	case c.Mode == entity.ModeStacked:
		id := c.Rows[c.Active]
		label := fmt.Sprintf("%s %s [%d/%d]", IconStack, id, c.Active+1, len(c.Rows))
		style := entity.BorderStack
		if id == snap.CurrentWindow {
			style = entity.BorderFocus
		}
		return r.box(label, r.theme.WindowColor(style), style == entity.BorderFocus, width, height)
	}

	boxes := make([]string, 0, len(c.Rows))
	rowHeight := height / len(c.Rows)
	for i, id := range c.Rows {
		h := rowHeight
		if i == len(c.Rows)-1 {
			h = height - rowHeight*(len(c.Rows)-1)
		}
		style := entity.BorderNormal
		if id == snap.CurrentWindow {
			style = entity.BorderFocus
		}
		boxes = append(boxes, r.box(string(id), r.theme.WindowColor(style), style == entity.BorderFocus, width, h))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (r *PreviewRenderer) box(label string, color lipgloss.Color, focused bool, width, height int) string {
	if width < minBoxWidth || height < minBoxHeight {
		return lipgloss.NewStyle().Width(max(width, 0)).Height(max(height, 0)).Render("")
	}

	border := lipgloss.RoundedBorder()
	if focused {
		border = lipgloss.ThickBorder()
	}
	text := r.theme.Normal
	if focused {
		text = text.Bold(true)
	}

	return lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(color).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text.Render(truncate(label, width-2)))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
