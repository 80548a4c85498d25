package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/infrastructure/host"
)

var (
	_ port.Client        = (*host.Window)(nil)
	_ port.FocusDelegate = (*host.Group)(nil)
)

func sequence(ids ...string) entity.IDGenerator {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestWindow_RecordsPlacement(t *testing.T) {
	w := host.NewWindow("a", "")
	_, placed := w.Placement()
	assert.False(t, placed)
	assert.Equal(t, "a", w.Title())

	p := entity.Placement{ClientID: "a", Width: 10, Height: 20, Visible: true}
	w.Place(p)
	w.Place(p)
	w.Hide()

	got, placed := w.Placement()
	assert.True(t, placed)
	assert.Equal(t, p, got)
	assert.Equal(t, 2, w.PlaceCount())
	assert.True(t, w.Hidden())

	w.Unhide()
	assert.False(t, w.Hidden())
}

func TestGroup_OpenSkipsTakenIDs(t *testing.T) {
	g := host.NewGroup(host.WithIDGenerator(sequence("x", "x", "y")))

	first := g.Open("term")
	second := g.Open("editor")

	assert.Equal(t, entity.ClientID("x"), first.ID())
	assert.Equal(t, entity.ClientID("y"), second.ID())
	assert.Equal(t, "editor", second.Title())
	assert.Equal(t, 2, g.Len())
}

func TestGroup_AttachAndClose(t *testing.T) {
	g := host.NewGroup()

	_, err := g.Attach("a")
	require.NoError(t, err)
	_, err = g.Attach("b")
	require.NoError(t, err)

	_, err = g.Attach("a")
	assert.Error(t, err)
	_, err = g.Attach("")
	assert.Error(t, err)

	g.Focus(context.Background(), "a")
	assert.True(t, g.Close("a"))
	assert.False(t, g.Close("a"))

	_, focused := g.Focused()
	assert.False(t, focused)
	require.Len(t, g.Clients(), 1)
	assert.Equal(t, entity.ClientID("b"), g.Clients()[0].ID())
}

func TestGroup_FocusHistory(t *testing.T) {
	g := host.NewGroup()
	_, _ = g.Attach("a")
	_, _ = g.Attach("b")
	ctx := context.Background()

	g.Focus(ctx, "b")
	g.Focus(ctx, "ghost")
	g.Focus(ctx, "a")
	g.Focus(ctx, "a")

	assert.Equal(t, []entity.ClientID{"b", "a"}, g.FocusHistory())
	focused, ok := g.Focused()
	assert.True(t, ok)
	assert.Equal(t, entity.ClientID("a"), focused)
}

func TestShortID(t *testing.T) {
	id := host.ShortID()

	assert.Len(t, id, 8)
	assert.NotEqual(t, id, host.ShortID())
}
