package wmii_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/infrastructure/host"
	"github.com/bnema/wmiitile/pkg/wmii"
)

func newLayout(t *testing.T, ids ...wmii.ClientID) (*wmii.Layout, *host.Group) {
	t.Helper()
	group := host.NewGroup()
	l := wmii.New(wmii.DefaultOptions(), group)
	for _, id := range ids {
		_, err := group.Attach(id)
		require.NoError(t, err)
		l.Add(context.Background(), id)
	}
	return l, group
}

func rows(l *wmii.Layout) [][]wmii.ClientID {
	info := l.Info()
	out := make([][]wmii.ClientID, len(info.Columns))
	for i, c := range info.Columns {
		out[i] = c.Rows
	}
	return out
}

func TestNew_NormalizesOptions(t *testing.T) {
	l := wmii.New(wmii.Options{BorderWidth: -2, RemovePolicy: "bogus"}, nil)

	opts := l.Options()
	assert.Equal(t, "wmii", opts.Name)
	assert.Equal(t, 0, opts.BorderWidth)
	assert.Equal(t, wmii.RemoveStructural, opts.RemovePolicy)

	info := l.Info()
	assert.Equal(t, "wmii", info.Name)
	require.Len(t, info.Columns, 1)
	assert.Equal(t, 100, info.Columns[0].Width)
	assert.Empty(t, info.Clients)
}

func TestShuffleRight_SplitsIntoTwoColumns(t *testing.T) {
	ctx := context.Background()
	l, group := newLayout(t, "A", "B")

	assert.True(t, l.ShuffleRight(ctx))

	info := l.Info()
	assert.Equal(t, [][]wmii.ClientID{{"A"}, {"B"}}, rows(l))
	assert.Equal(t, 50, info.Columns[0].Width)
	assert.Equal(t, 50, info.Columns[1].Width)
	assert.Equal(t, wmii.ClientID("B"), info.CurrentWindow)

	focused, ok := group.Focused()
	assert.True(t, ok)
	assert.Equal(t, wmii.ClientID("B"), focused)
}

func TestLeft_StopsAtFirstColumn(t *testing.T) {
	ctx := context.Background()
	l, _ := newLayout(t, "A", "B")
	l.ShuffleRight(ctx)
	l.Add(ctx, "C")
	l.ShuffleRight(ctx)
	require.Equal(t, [][]wmii.ClientID{{"A"}, {"B"}, {"C"}}, rows(l))

	l.Focus(ctx, "B")
	got, ok := l.Left(ctx)
	assert.True(t, ok)
	assert.Equal(t, wmii.ClientID("A"), got)

	_, ok = l.Left(ctx)
	assert.False(t, ok)
	focused, _ := l.Focused()
	assert.Equal(t, wmii.ClientID("A"), focused)
}

func TestUp_WrapsInStackedColumn(t *testing.T) {
	ctx := context.Background()
	l, _ := newLayout(t, "X", "Y", "Z")

	mode, ok := l.ToggleSplit(ctx)
	require.True(t, ok)
	assert.Equal(t, wmii.ModeStacked, mode)

	l.Focus(ctx, "X")
	got, ok := l.Up(ctx)
	assert.True(t, ok)
	assert.Equal(t, wmii.ClientID("Z"), got)
	assert.Equal(t, 2, l.Info().Columns[0].Active)

	got, ok = l.Next(ctx)
	assert.True(t, ok)
	assert.Equal(t, wmii.ClientID("X"), got)
}

func TestRemoveAll_LeavesPlaceholder(t *testing.T) {
	ctx := context.Background()
	l, _ := newLayout(t, "A", "B", "C")
	l.ShuffleLeft(ctx)

	for _, id := range []wmii.ClientID{"B", "A", "C"} {
		l.Remove(ctx, id)
		require.NoError(t, l.Validate())
	}

	info := l.Info()
	assert.Empty(t, info.Clients)
	assert.Empty(t, info.CurrentWindow)
	require.Len(t, info.Columns, 1)
	assert.Empty(t, info.Columns[0].Rows)
	assert.Equal(t, 100, info.Columns[0].Width)
}

func TestRemove_CollapseToOneColumnLeavesNoFocus(t *testing.T) {
	ctx := context.Background()
	l, _ := newLayout(t, "A", "B")
	require.True(t, l.ShuffleRight(ctx))

	next, ok := l.Remove(ctx, "B")

	assert.False(t, ok)
	assert.Empty(t, next)
	_, focused := l.Focused()
	assert.False(t, focused)
	assert.Equal(t, [][]wmii.ClientID{{"A"}}, rows(l))
}

func TestRemove_DroppedColumnNotifiesHost(t *testing.T) {
	ctx := context.Background()
	l, group := newLayout(t, "A", "B")
	require.True(t, l.ShuffleRight(ctx))
	_, err := group.Attach("C")
	require.NoError(t, err)
	l.Add(ctx, "C")
	require.True(t, l.ShuffleRight(ctx))
	require.Equal(t, [][]wmii.ClientID{{"A"}, {"B"}, {"C"}}, rows(l))

	next, ok := l.Remove(ctx, "C")

	require.True(t, ok)
	assert.Equal(t, wmii.ClientID("B"), next)
	focused, _ := group.Focused()
	assert.Equal(t, wmii.ClientID("B"), focused)
	assert.Equal(t, []wmii.ClientID{"B", "C", "B"}, group.FocusHistory())
}

func TestFocusedOnlyPolicy_KeepsRows(t *testing.T) {
	ctx := context.Background()
	opts := wmii.DefaultOptions()
	opts.RemovePolicy = wmii.RemoveFocusedOnly
	l := wmii.New(opts, nil)
	l.Add(ctx, "A")
	l.Add(ctx, "B")

	_, ok := l.Remove(ctx, "A")

	assert.False(t, ok)
	assert.Equal(t, []wmii.ClientID{"B"}, l.Info().Clients)
	assert.Equal(t, [][]wmii.ClientID{{"A", "B"}}, rows(l))
}

func TestConfigureAll_PlacesWindows(t *testing.T) {
	ctx := context.Background()
	l, group := newLayout(t, "A", "B")
	screen := wmii.Rect{Width: 1000, Height: 800}

	placements := l.ConfigureAll(ctx, group.Clients(), screen)
	require.Len(t, placements, 2)

	a, _ := group.Get("A")
	p, placed := a.Placement()
	require.True(t, placed)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 998, p.Width)
	assert.Equal(t, 398, p.Height)
	assert.Equal(t, wmii.BorderNormal, p.Border)

	b, _ := group.Get("B")
	p, _ = b.Placement()
	assert.Equal(t, 400, p.Y)
	assert.Equal(t, wmii.BorderFocus, p.Border)

	l.ToggleSplit(ctx)
	l.ConfigureAll(ctx, group.Clients(), screen)
	assert.True(t, a.Hidden())
	assert.False(t, b.Hidden())
	assert.Equal(t, l.Placements(screen)[1], mustPlacement(t, b))
}

func mustPlacement(t *testing.T, w *host.Window) wmii.Placement {
	t.Helper()
	p, ok := w.Placement()
	require.True(t, ok)
	return p
}

func TestSetDecorations(t *testing.T) {
	l, _ := newLayout(t, "A")
	l.SetDecorations(3, -1)

	p := l.Placements(wmii.Rect{Width: 100, Height: 100})
	require.Len(t, p, 1)
	assert.Equal(t, 94, p[0].Width)
	assert.Equal(t, 3, p[0].BorderWidth)
	assert.Equal(t, 0, p[0].Margin)
}

func TestClone_IsEmptyWithSameOptions(t *testing.T) {
	opts := wmii.Options{Name: "tall", BorderWidth: 2, RemovePolicy: wmii.RemoveFocusedOnly}
	l := wmii.New(opts, nil)
	l.Add(context.Background(), "A")

	clone := l.Clone()

	assert.Equal(t, l.Options(), clone.Options())
	assert.Equal(t, 0, clone.Len())
	assert.Equal(t, 1, l.Len())
}

func TestFocusQueries(t *testing.T) {
	ctx := context.Background()
	l, _ := newLayout(t, "A", "B", "C")
	l.ShuffleRight(ctx)
	require.Equal(t, [][]wmii.ClientID{{"A", "B"}, {"C"}}, rows(l))

	first, _ := l.FocusFirst()
	last, _ := l.FocusLast()
	next, _ := l.FocusNext("B")
	prev, _ := l.FocusPrevious("C")
	_, ok := l.FocusNext("C")

	assert.Equal(t, wmii.ClientID("A"), first)
	assert.Equal(t, wmii.ClientID("C"), last)
	assert.Equal(t, wmii.ClientID("C"), next)
	assert.Equal(t, wmii.ClientID("B"), prev)
	assert.False(t, ok)
}

func TestAddColumn(t *testing.T) {
	l, _ := newLayout(t, "A")

	idx := l.AddColumn(context.Background(), true, "B")

	assert.Equal(t, 0, idx)
	assert.Equal(t, [][]wmii.ClientID{{"B"}, {"A"}}, rows(l))
}
