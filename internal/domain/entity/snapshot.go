package entity

import "slices"

// LayoutSnapshot captures the introspectable state of a layout.
type LayoutSnapshot struct {
	Name          string           `json:"name" yaml:"name"`
	CurrentWindow ClientID         `json:"current_window,omitempty" yaml:"current_window,omitempty"`
	Clients       []ClientID       `json:"clients" yaml:"clients"`
	Columns       []ColumnSnapshot `json:"columns" yaml:"columns"`
}

// ColumnSnapshot captures a single column.
type ColumnSnapshot struct {
	Mode   ColumnMode `json:"mode" yaml:"mode"`
	Width  int        `json:"width" yaml:"width"`
	Active int        `json:"active" yaml:"active"`
	Rows   []ClientID `json:"rows" yaml:"rows"`
}

// SnapshotFromLayout creates a LayoutSnapshot from a live Layout.
func SnapshotFromLayout(name string, l *Layout) *LayoutSnapshot {
	snap := &LayoutSnapshot{
		Name:    name,
		Clients: []ClientID{},
		Columns: []ColumnSnapshot{},
	}
	if l == nil {
		return snap
	}

	snap.CurrentWindow = l.Current
	if len(l.Clients) > 0 {
		snap.Clients = slices.Clone(l.Clients)
	}
	for _, c := range l.Columns {
		rows := []ClientID{}
		if len(c.Rows) > 0 {
			rows = slices.Clone(c.Rows)
		}
		snap.Columns = append(snap.Columns, ColumnSnapshot{
			Mode:   c.Mode,
			Width:  c.Width,
			Active: c.Active,
			Rows:   rows,
		})
	}
	return snap
}
