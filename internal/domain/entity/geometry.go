package entity

// Rect is an absolute screen rectangle.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// BorderStyle is the border category of a placed client. The host maps it
// to a color.
type BorderStyle string

const (
	BorderFocus  BorderStyle = "focus"  // Focused client
	BorderStack  BorderStyle = "stack"  // Unfocused client in a stacked column
	BorderNormal BorderStyle = "normal" // Any other client
)

// Placement is the target geometry of one client after a reconfiguration.
type Placement struct {
	ClientID    ClientID    `json:"client_id" yaml:"client_id"`
	X           int         `json:"x" yaml:"x"`
	Y           int         `json:"y" yaml:"y"`
	Width       int         `json:"width" yaml:"width"`
	Height      int         `json:"height" yaml:"height"`
	BorderWidth int         `json:"border_width" yaml:"border_width"`
	Border      BorderStyle `json:"border" yaml:"border"`
	Margin      int         `json:"margin" yaml:"margin"`
	Visible     bool        `json:"visible" yaml:"visible"`
}

// ProjectionOptions carries the decoration sizes used by Project.
type ProjectionOptions struct {
	BorderWidth int
	Margin      int
}

// Project computes where the client goes on the given screen.
// Returns false if the client is not registered or has no row.
func (l *Layout) Project(id ClientID, screen Rect, opts ProjectionOptions) (Placement, bool) {
	if !l.IsRegistered(id) {
		return Placement{}, false
	}
	col, row, ok := l.Locate(id)
	if !ok {
		return Placement{}, false
	}

	x := screen.X
	for _, c := range l.Columns[:col] {
		x += c.Width * screen.Width / FullWidth
	}

	c := l.Columns[col]
	border := BorderNormal
	switch {
	case id == l.Current:
		border = BorderFocus
	case c.IsStacked():
		border = BorderStack
	}

	bw := opts.BorderWidth
	p := Placement{
		ClientID:    id,
		X:           x,
		Width:       c.Width*screen.Width/FullWidth - 2*bw,
		BorderWidth: bw,
		Border:      border,
		Margin:      opts.Margin,
		Visible:     true,
	}

	if c.IsStacked() {
		p.Y = screen.Y
		p.Height = screen.Height - 2*bw
		p.Visible = row == c.Active
	} else {
		rowHeight := float64(screen.Height) / float64(len(c.Rows))
		p.Y = int(float64(screen.Y) + rowHeight*float64(row))
		p.Height = int(rowHeight - float64(2*bw))
	}
	return p, true
}

// ProjectAll returns the placement of every registered client with a row, in
// column-major order.
func (l *Layout) ProjectAll(screen Rect, opts ProjectionOptions) []Placement {
	var out []Placement
	for _, id := range l.Order() {
		if p, ok := l.Project(id, screen, opts); ok {
			out = append(out, p)
		}
	}
	return out
}
