package usecase_test

import (
	"context"

	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// columns builds a layout with one evenly sized split column per argument.
// Each argument is a list of client IDs; the first client is focused.
func columns(cols ...[]entity.ClientID) *entity.Layout {
	l := entity.NewLayout()
	l.Columns = nil
	for _, rows := range cols {
		l.Columns = append(l.Columns, entity.NewColumn(0, rows...))
		l.Clients = append(l.Clients, rows...)
	}
	l.Rebalance()
	l.Reindex()
	if len(l.Clients) > 0 {
		l.SetFocus(l.Clients[0])
	}
	return l
}

func col(s ...string) []entity.ClientID {
	out := make([]entity.ClientID, len(s))
	for i, v := range s {
		out[i] = entity.ClientID(v)
	}
	return out
}

func rowsOf(l *entity.Layout) [][]entity.ClientID {
	out := make([][]entity.ClientID, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = append([]entity.ClientID{}, c.Rows...)
	}
	return out
}

func widthsOf(l *entity.Layout) []int {
	out := make([]int, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Width
	}
	return out
}
