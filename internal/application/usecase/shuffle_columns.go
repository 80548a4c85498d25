package usecase

import (
	"context"

	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// Shuffle moves the focused client one step in the given direction.
// Horizontal moves carry the client into the neighbor column, or into a
// new column when it sits at the edge. Vertical moves swap it with its
// neighbor row. Returns false when the move is a no-op.
func (uc *ManageColumnsUseCase) Shuffle(
	ctx context.Context,
	l *entity.Layout,
	direction NavigateDirection,
) bool {
	log := logging.FromContext(ctx)

	cur := l.Current
	col, row, ok := l.Locate(cur)
	if !l.HasFocus() || !ok {
		log.Debug().Str("direction", string(direction)).Msg("shuffle ignored, nothing focused")
		return false
	}

	log.Debug().
		Str("direction", string(direction)).
		Str("client_id", string(cur)).
		Int("column", col).
		Int("row", row).
		Msg("shuffling client")

	switch direction {
	case NavLeft, NavRight:
		if !uc.shuffleHorizontal(ctx, l, col, row, direction == NavLeft) {
			return false
		}
	case NavUp:
		if row == 0 {
			return false
		}
		l.SwapRows(col, row-1, row)
	case NavDown:
		if row >= l.Columns[col].Len()-1 {
			return false
		}
		l.SwapRows(col, row, row+1)
	default:
		log.Debug().Str("direction", string(direction)).Msg("unknown direction")
		return false
	}

	uc.moveFocus(ctx, l, cur)

	newCol, newRow, _ := l.Locate(cur)
	log.Info().
		Str("direction", string(direction)).
		Str("client_id", string(cur)).
		Int("column", newCol).
		Int("row", newRow).
		Int("columns", len(l.Columns)).
		Msg("client shuffled")
	return true
}

func (uc *ManageColumnsUseCase) shuffleHorizontal(
	ctx context.Context,
	l *entity.Layout,
	col, row int,
	toLeft bool,
) bool {
	src := l.Columns[col]
	atEdge := col == len(l.Columns)-1
	if toLeft {
		atEdge = col == 0
	}

	if atEdge && src.Len() == 1 {
		return false
	}

	id := l.RemoveRow(col, row)
	if atEdge {
		if uc.AddColumn(ctx, l, toLeft, id) == 0 {
			// The source column shifted right by one.
			col++
		}
	} else {
		dst := col + 1
		if toLeft {
			dst = col - 1
		}
		l.AppendRow(dst, id)
	}

	if src.IsEmpty() {
		l.RemoveColumn(col)
	}
	return true
}

// ShuffleLeft moves the focused client into the previous column.
func (uc *ManageColumnsUseCase) ShuffleLeft(ctx context.Context, l *entity.Layout) bool {
	return uc.Shuffle(ctx, l, NavLeft)
}

// ShuffleRight moves the focused client into the next column.
func (uc *ManageColumnsUseCase) ShuffleRight(ctx context.Context, l *entity.Layout) bool {
	return uc.Shuffle(ctx, l, NavRight)
}

// ShuffleUp swaps the focused client with the row above.
func (uc *ManageColumnsUseCase) ShuffleUp(ctx context.Context, l *entity.Layout) bool {
	return uc.Shuffle(ctx, l, NavUp)
}

// ShuffleDown swaps the focused client with the row below.
func (uc *ManageColumnsUseCase) ShuffleDown(ctx context.Context, l *entity.Layout) bool {
	return uc.Shuffle(ctx, l, NavDown)
}
