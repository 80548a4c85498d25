package entity

import "slices"

// ColumnMode indicates how a column arranges its rows.
type ColumnMode string

const (
	ModeSplit   ColumnMode = "split" // Rows share the column height evenly
	ModeStacked ColumnMode = "stack" // Only the active row is visible
)

// Toggled returns the opposite mode.
func (m ColumnMode) Toggled() ColumnMode {
	if m == ModeStacked {
		return ModeSplit
	}
	return ModeStacked
}

// FullWidth is the width percentage of a column that spans the whole screen.
const FullWidth = 100

// Column is a vertical strip of the screen holding an ordered stack of rows.
type Column struct {
	Rows   []ClientID
	Mode   ColumnMode
	Width  int // Percentage of the screen width
	Active int // Row shown when the column is stacked
}

// NewColumn creates a split column with the given width and rows.
func NewColumn(width int, rows ...ClientID) *Column {
	return &Column{
		Rows:  slices.Clone(rows),
		Mode:  ModeSplit,
		Width: width,
	}
}

// IsStacked returns true if only the active row is shown.
func (c *Column) IsStacked() bool {
	return c.Mode == ModeStacked
}

// IsEmpty returns true if the column holds no rows.
func (c *Column) IsEmpty() bool {
	return len(c.Rows) == 0
}

// Len returns the number of rows.
func (c *Column) Len() int {
	return len(c.Rows)
}

// ActiveClient returns the client of the active row.
func (c *Column) ActiveClient() (ClientID, bool) {
	if c.Active < 0 || c.Active >= len(c.Rows) {
		return "", false
	}
	return c.Rows[c.Active], true
}

func (c *Column) indexOf(id ClientID) int {
	return slices.Index(c.Rows, id)
}

// removeAt drops the row at index i and keeps Active on the same client
// when possible.
func (c *Column) removeAt(i int) ClientID {
	id := c.Rows[i]
	c.Rows = slices.Delete(c.Rows, i, i+1)

	switch {
	case len(c.Rows) == 0:
		c.Active = 0
	case c.Active > i:
		c.Active--
	case c.Active >= len(c.Rows):
		c.Active = len(c.Rows) - 1
	}
	return id
}

func (c *Column) clone() *Column {
	cp := *c
	cp.Rows = slices.Clone(c.Rows)
	return &cp
}
