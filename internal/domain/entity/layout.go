package entity

import (
	"fmt"
	"slices"
)

// position locates a client inside the column grid.
type position struct {
	column int
	row    int
}

// Layout is the column state of one workspace: ordered columns, the registry
// of managed clients and the focus pointer.
// A Layout is owned by a single workspace and is not safe for concurrent use.
type Layout struct {
	Columns      []*Column
	Clients      []ClientID // Registered clients, in insertion order
	Current      ClientID   // Focused client, empty when nothing is focused
	RemovePolicy RemovePolicy

	index map[ClientID]position
}

// NewLayout creates an empty layout holding a single full-width column.
func NewLayout() *Layout {
	l := &Layout{RemovePolicy: RemoveStructural}
	l.Reset()
	return l
}

// Reset drops every client and column and restores the initial placeholder.
func (l *Layout) Reset() {
	l.Columns = []*Column{NewColumn(FullWidth)}
	l.Clients = nil
	l.Current = ""
	l.index = make(map[ClientID]position)
}

// HasFocus returns true if a client is focused.
func (l *Layout) HasFocus() bool {
	return l.Current != ""
}

// IsRegistered returns true if the client is managed by the layout.
func (l *Layout) IsRegistered(id ClientID) bool {
	return slices.Contains(l.Clients, id)
}

// Register adds the client to the registry. Returns false if it was already
// registered.
func (l *Layout) Register(id ClientID) bool {
	if l.IsRegistered(id) {
		return false
	}
	l.Clients = append(l.Clients, id)
	return true
}

// Unregister removes the client from the registry. Returns false if it was
// not registered.
func (l *Layout) Unregister(id ClientID) bool {
	i := slices.Index(l.Clients, id)
	if i < 0 {
		return false
	}
	l.Clients = slices.Delete(l.Clients, i, i+1)
	return true
}

// Locate returns the column and row indices holding the client.
func (l *Layout) Locate(id ClientID) (col, row int, ok bool) {
	if l.index == nil {
		l.Reindex()
	}
	p, ok := l.index[id]
	if !ok {
		return -1, -1, false
	}
	return p.column, p.row, true
}

// CurrentColumn returns the index of the column holding the focused client.
func (l *Layout) CurrentColumn() (int, bool) {
	if !l.HasFocus() {
		return -1, false
	}
	col, _, ok := l.Locate(l.Current)
	return col, ok
}

// SetFocus points the focus at the client and makes its row the active row
// of its column. A client without a row only moves the focus pointer.
func (l *Layout) SetFocus(id ClientID) {
	l.Current = id
	if col, row, ok := l.Locate(id); ok {
		l.Columns[col].Active = row
	}
}

// ClearFocus unsets the focus pointer.
func (l *Layout) ClearFocus() {
	l.Current = ""
}

// AppendRow adds the client at the bottom of the column.
func (l *Layout) AppendRow(col int, id ClientID) {
	c := l.Columns[col]
	c.Rows = append(c.Rows, id)
	if l.index == nil {
		l.Reindex()
		return
	}
	l.index[id] = position{column: col, row: len(c.Rows) - 1}
}

// RemoveRow drops the row at the given position.
func (l *Layout) RemoveRow(col, row int) ClientID {
	id := l.Columns[col].removeAt(row)
	l.Reindex()
	return id
}

// SwapRows exchanges two rows of the same column.
func (l *Layout) SwapRows(col, a, b int) {
	rows := l.Columns[col].Rows
	rows[a], rows[b] = rows[b], rows[a]
	l.Reindex()
}

// RemoveColumn drops the column at index i and rebalances the remaining
// widths. The last column is replaced by an empty placeholder.
func (l *Layout) RemoveColumn(i int) {
	l.Columns = slices.Delete(l.Columns, i, i+1)
	if len(l.Columns) == 0 {
		l.Columns = []*Column{NewColumn(FullWidth)}
	}
	l.Rebalance()
	l.Reindex()
}

// InsertColumn shrinks every column to 100/(n+1) percent and inserts a new
// split column holding the client at the front or the back. It returns the
// index of the new column.
func (l *Layout) InsertColumn(prepend bool, id ClientID) int {
	width := FullWidth / (len(l.Columns) + 1)
	for _, c := range l.Columns {
		c.Width = width
	}

	c := NewColumn(width, id)
	idx := len(l.Columns)
	if prepend {
		idx = 0
	}
	l.Columns = slices.Insert(l.Columns, idx, c)
	l.Reindex()
	return idx
}

// Rebalance gives every column the same width.
func (l *Layout) Rebalance() {
	width := FullWidth / len(l.Columns)
	for _, c := range l.Columns {
		c.Width = width
	}
}

// IsPlaceholder returns true if the layout holds a single empty column.
func (l *Layout) IsPlaceholder() bool {
	return len(l.Columns) == 1 && l.Columns[0].IsEmpty()
}

// Order returns every row in column-major order.
func (l *Layout) Order() []ClientID {
	var out []ClientID
	for _, c := range l.Columns {
		out = append(out, c.Rows...)
	}
	return out
}

// Reindex rebuilds the client to position index from the columns.
func (l *Layout) Reindex() {
	l.index = make(map[ClientID]position, len(l.Clients))
	for ci, c := range l.Columns {
		for ri, id := range c.Rows {
			if _, dup := l.index[id]; !dup {
				l.index[id] = position{column: ci, row: ri}
			}
		}
	}
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	cp := &Layout{
		Columns:      make([]*Column, len(l.Columns)),
		Clients:      slices.Clone(l.Clients),
		Current:      l.Current,
		RemovePolicy: l.RemovePolicy,
	}
	for i, c := range l.Columns {
		cp.Columns[i] = c.clone()
	}
	cp.Reindex()
	return cp
}

// Validate checks the structural invariants of the layout. Registry and row
// membership are only compared under RemoveStructural; RemoveFocusedOnly
// leaves rows of unregistered clients behind.
func (l *Layout) Validate() error {
	if len(l.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvariantViolated)
	}

	seen := make(map[ClientID]int)
	sum := 0
	for ci, c := range l.Columns {
		if c == nil {
			return fmt.Errorf("%w: column %d is nil", ErrInvariantViolated, ci)
		}
		if c.Width <= 0 || c.Width > FullWidth {
			return fmt.Errorf("%w: column %d width %d out of range", ErrInvariantViolated, ci, c.Width)
		}
		if c.Mode != ModeSplit && c.Mode != ModeStacked {
			return fmt.Errorf("%w: column %d has unknown mode %q", ErrInvariantViolated, ci, c.Mode)
		}
		if len(c.Rows) > 0 && (c.Active < 0 || c.Active >= len(c.Rows)) {
			return fmt.Errorf("%w: column %d active row %d of %d", ErrInvariantViolated, ci, c.Active, len(c.Rows))
		}
		for _, id := range c.Rows {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: client %s in columns %d and %d", ErrInvariantViolated, id, prev, ci)
			}
			seen[id] = ci
		}
		sum += c.Width
	}
	if sum > FullWidth || sum < FullWidth-(len(l.Columns)-1) {
		return fmt.Errorf("%w: column widths sum to %d", ErrInvariantViolated, sum)
	}

	if l.RemovePolicy == RemoveFocusedOnly {
		return nil
	}

	for _, id := range l.Clients {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: registered client %s has no row", ErrInvariantViolated, id)
		}
	}
	if len(seen) != len(l.Clients) {
		return fmt.Errorf("%w: %d rows for %d registered clients", ErrInvariantViolated, len(seen), len(l.Clients))
	}
	if l.HasFocus() {
		if _, ok := seen[l.Current]; !ok {
			return fmt.Errorf("%w: focused client %s has no row", ErrInvariantViolated, l.Current)
		}
	}
	return nil
}
