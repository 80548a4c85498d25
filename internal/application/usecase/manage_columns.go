package usecase

import (
	"context"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// NavigateDirection indicates the direction for focus navigation and shuffles.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// ManageColumnsUseCase handles the column layout state machine.
// It owns no state: every call operates on the Layout it is given.
type ManageColumnsUseCase struct {
	focus port.FocusDelegate
}

// NewManageColumnsUseCase creates a new column management use case.
// A nil delegate disables host focus notifications.
func NewManageColumnsUseCase(focus port.FocusDelegate) *ManageColumnsUseCase {
	return &ManageColumnsUseCase{
		focus: focus,
	}
}

// Add registers the client, appends it to the focused column (or the first
// column when nothing is focused) and focuses it.
func (uc *ManageColumnsUseCase) Add(ctx context.Context, l *entity.Layout, id entity.ClientID) {
	log := logging.FromContext(ctx)

	if !l.Register(id) {
		log.Debug().Str("client_id", string(id)).Msg("client already managed")
		return
	}

	// A focused-only remove may have left this client's row behind.
	if col, row, ok := l.Locate(id); ok {
		l.RemoveRow(col, row)
		if l.Columns[col].IsEmpty() && len(l.Columns) > 1 {
			l.RemoveColumn(col)
		}
	}

	target, ok := l.CurrentColumn()
	if !ok {
		target = 0
	}
	l.AppendRow(target, id)
	l.SetFocus(id)

	log.Info().
		Str("client_id", string(id)).
		Int("column", target).
		Int("rows", l.Columns[target].Len()).
		Msg("client added")
}

// Remove unregisters the client and detaches it from the columns.
// Returns the client that received the focus, if any.
//
// When the focused client was alone in its column the column is dropped.
// With one column left nothing is focused; otherwise the first row of the
// left neighbor takes the focus and the host is notified.
func (uc *ManageColumnsUseCase) Remove(ctx context.Context, l *entity.Layout, id entity.ClientID) (entity.ClientID, bool) {
	log := logging.FromContext(ctx)

	if !l.Unregister(id) {
		log.Debug().Str("client_id", string(id)).Msg("remove ignored, client not managed")
		return "", false
	}

	if l.Current != id {
		uc.removeUnfocused(ctx, l, id)
		return "", false
	}

	l.ClearFocus()
	col, row, ok := l.Locate(id)
	if !ok {
		log.Debug().Str("client_id", string(id)).Msg("focused client had no row")
		return "", false
	}

	l.RemoveRow(col, row)
	c := l.Columns[col]
	if !c.IsEmpty() {
		next := c.Rows[max(row-1, 0)]
		l.SetFocus(next)
		log.Info().
			Str("client_id", string(id)).
			Str("focused", string(next)).
			Int("column", col).
			Msg("client removed")
		return next, true
	}

	l.RemoveColumn(col)
	if len(l.Columns) == 1 {
		log.Info().
			Str("client_id", string(id)).
			Int("rows", l.Columns[0].Len()).
			Msg("column removed, nothing focused")
		return "", false
	}

	target := max(col-1, 0)
	rows := l.Columns[target].Rows
	if len(rows) == 0 {
		log.Debug().Int("column", target).Msg("neighbor column is empty")
		return "", false
	}
	next := rows[0]
	uc.moveFocus(ctx, l, next)

	log.Info().
		Str("client_id", string(id)).
		Str("focused", string(next)).
		Int("columns", len(l.Columns)).
		Msg("client removed with its column")
	return next, true
}

// removeUnfocused applies the layout's remove policy to a client that does
// not hold the focus.
func (uc *ManageColumnsUseCase) removeUnfocused(ctx context.Context, l *entity.Layout, id entity.ClientID) {
	log := logging.FromContext(ctx)

	if l.RemovePolicy == entity.RemoveFocusedOnly {
		log.Debug().
			Str("client_id", string(id)).
			Msg("unfocused client unregistered, row kept")
		return
	}

	col, row, ok := l.Locate(id)
	if !ok {
		return
	}
	l.RemoveRow(col, row)
	if l.Columns[col].IsEmpty() {
		l.RemoveColumn(col)
	}

	log.Info().
		Str("client_id", string(id)).
		Int("column", col).
		Int("columns", len(l.Columns)).
		Msg("unfocused client removed")
}

// Focus moves the layout focus to the client without notifying the host.
// The host calls this when focus changed on its side.
func (uc *ManageColumnsUseCase) Focus(ctx context.Context, l *entity.Layout, id entity.ClientID) {
	l.SetFocus(id)

	logging.FromContext(ctx).Debug().
		Str("client_id", string(id)).
		Msg("focus set")
}

// AddColumn shrinks the existing columns and inserts a new one holding the
// client at the front or the back.
func (uc *ManageColumnsUseCase) AddColumn(ctx context.Context, l *entity.Layout, prepend bool, id entity.ClientID) int {
	idx := l.InsertColumn(prepend, id)

	logging.FromContext(ctx).Info().
		Str("client_id", string(id)).
		Bool("prepend", prepend).
		Int("columns", len(l.Columns)).
		Int("width", l.Columns[idx].Width).
		Msg("column added")
	return idx
}

// moveFocus updates the layout focus then notifies the host.
func (uc *ManageColumnsUseCase) moveFocus(ctx context.Context, l *entity.Layout, id entity.ClientID) {
	l.SetFocus(id)
	if uc.focus != nil {
		uc.focus.Focus(ctx, id)
	}
}
