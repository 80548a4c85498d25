package usecase

import (
	"context"
	"slices"

	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// Navigate moves the focus one step in the given direction.
// Returns the newly focused client, or false when the move is a no-op.
func (uc *ManageColumnsUseCase) Navigate(
	ctx context.Context,
	l *entity.Layout,
	direction NavigateDirection,
) (entity.ClientID, bool) {
	log := logging.FromContext(ctx)

	col, row, ok := l.Locate(l.Current)
	if !l.HasFocus() || !ok {
		log.Debug().Str("direction", string(direction)).Msg("navigate ignored, nothing focused")
		return "", false
	}

	log.Debug().
		Str("direction", string(direction)).
		Int("column", col).
		Int("row", row).
		Msg("navigating")

	var target entity.ClientID
	switch direction {
	case NavLeft, NavRight:
		next := col - 1
		if direction == NavRight {
			next = col + 1
		}
		if next < 0 || next >= len(l.Columns) || l.Columns[next].IsEmpty() {
			return "", false
		}
		target = l.Columns[next].Rows[0]

	case NavUp, NavDown:
		c := l.Columns[col]
		count := c.Len()
		next := row - 1
		if direction == NavDown {
			next = row + 1
		}
		if next < 0 || next >= count {
			if !c.IsStacked() {
				return "", false
			}
			next = (next + count) % count
		}
		target = c.Rows[next]

	default:
		log.Debug().Str("direction", string(direction)).Msg("unknown direction")
		return "", false
	}

	if target == l.Current {
		return "", false
	}
	uc.moveFocus(ctx, l, target)

	log.Info().
		Str("direction", string(direction)).
		Str("client_id", string(target)).
		Msg("focus moved")
	return target, true
}

// Left focuses the first row of the previous column.
func (uc *ManageColumnsUseCase) Left(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Navigate(ctx, l, NavLeft)
}

// Right focuses the first row of the next column.
func (uc *ManageColumnsUseCase) Right(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Navigate(ctx, l, NavRight)
}

// Up focuses the row above. Stacked columns wrap around.
func (uc *ManageColumnsUseCase) Up(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Navigate(ctx, l, NavUp)
}

// Down focuses the row below. Stacked columns wrap around.
func (uc *ManageColumnsUseCase) Down(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Navigate(ctx, l, NavDown)
}

// Next is an alias of Down.
func (uc *ManageColumnsUseCase) Next(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Down(ctx, l)
}

// Previous is an alias of Up.
func (uc *ManageColumnsUseCase) Previous(ctx context.Context, l *entity.Layout) (entity.ClientID, bool) {
	return uc.Up(ctx, l)
}

// ToggleSplit flips the focused column between split and stacked mode.
// Returns false when nothing is focused.
func (uc *ManageColumnsUseCase) ToggleSplit(ctx context.Context, l *entity.Layout) (entity.ColumnMode, bool) {
	log := logging.FromContext(ctx)

	col, ok := l.CurrentColumn()
	if !ok {
		log.Debug().Msg("toggle split ignored, nothing focused")
		return "", false
	}

	c := l.Columns[col]
	c.Mode = c.Mode.Toggled()

	log.Info().
		Int("column", col).
		Str("mode", string(c.Mode)).
		Msg("column mode toggled")
	return c.Mode, true
}

// FocusFirst returns the first row of the first column.
func (uc *ManageColumnsUseCase) FocusFirst(l *entity.Layout) (entity.ClientID, bool) {
	rows := l.Columns[0].Rows
	if len(rows) == 0 {
		return "", false
	}
	return rows[0], true
}

// FocusLast returns the last row of the last column.
func (uc *ManageColumnsUseCase) FocusLast(l *entity.Layout) (entity.ClientID, bool) {
	rows := l.Columns[len(l.Columns)-1].Rows
	if len(rows) == 0 {
		return "", false
	}
	return rows[len(rows)-1], true
}

// FocusNext returns the client after id in column-major order, without
// wrapping around.
func (uc *ManageColumnsUseCase) FocusNext(l *entity.Layout, id entity.ClientID) (entity.ClientID, bool) {
	order := l.Order()
	i := slices.Index(order, id)
	if i < 0 || i+1 >= len(order) {
		return "", false
	}
	return order[i+1], true
}

// FocusPrevious returns the client before id in column-major order, without
// wrapping around.
func (uc *ManageColumnsUseCase) FocusPrevious(l *entity.Layout, id entity.ClientID) (entity.ClientID, bool) {
	order := l.Order()
	i := slices.Index(order, id)
	if i <= 0 {
		return "", false
	}
	return order[i-1], true
}
