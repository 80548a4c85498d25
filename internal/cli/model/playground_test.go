package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/cli/styles"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/infrastructure/config"
	"github.com/bnema/wmiitile/internal/infrastructure/host"
	"github.com/bnema/wmiitile/pkg/wmii"
)

func sequentialIDs() entity.IDGenerator {
	n := 0
	return func() string {
		id := string(rune('a' + n))
		n++
		return id
	}
}

func newTestModel(t *testing.T, updates <-chan *config.Config) PlaygroundModel {
	t.Helper()
	theme := styles.NewTheme(config.DefaultConfig())
	m := NewPlaygroundModel(context.Background(), theme, PlaygroundConfig{
		Options: wmii.DefaultOptions(),
		Updates: updates,
		Group:   host.NewGroup(host.WithIDGenerator(sequentialIDs())),
	})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(t *testing.T, m PlaygroundModel, msg tea.Msg) PlaygroundModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PlaygroundModel)
	require.True(t, ok)
	return pm
}

func press(t *testing.T, m PlaygroundModel, keys ...string) PlaygroundModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = send(t, m, msg)
	}
	return m
}

func TestPlaygroundModel_OpenPlacesWindows(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "n", "n")

	snap := m.Layout().Info()
	require.Len(t, snap.Columns, 1)
	assert.Equal(t, []entity.ClientID{"a", "b"}, snap.Columns[0].Rows)
	assert.Equal(t, entity.ClientID("b"), snap.CurrentWindow)

	focused, ok := m.group.Focused()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID("b"), focused)

	for _, w := range m.group.Windows() {
		p, placed := w.Placement()
		require.True(t, placed, "window %s should be placed", w.ID())
		assert.Positive(t, p.Width)
	}
	assert.Contains(t, m.status, "opened b")
}

func TestPlaygroundModel_ShuffleAndNavigate(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "n", "n", "L")

	snap := m.Layout().Info()
	require.Len(t, snap.Columns, 2)
	assert.Equal(t, []entity.ClientID{"a"}, snap.Columns[0].Rows)
	assert.Equal(t, []entity.ClientID{"b"}, snap.Columns[1].Rows)

	m = press(t, m, "h")
	focused, _ := m.Layout().Focused()
	assert.Equal(t, entity.ClientID("a"), focused)
	assert.Equal(t, "focus a", m.status)

	m = press(t, m, "G")
	focused, _ = m.Layout().Focused()
	assert.Equal(t, entity.ClientID("b"), focused)
	hostFocus, _ := m.group.Focused()
	assert.Equal(t, entity.ClientID("b"), hostFocus)
}

func TestPlaygroundModel_CloseFocusesNext(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "n", "n", "x")

	assert.Equal(t, 1, m.Layout().Len())
	assert.Equal(t, 1, m.group.Len())
	_, exists := m.group.Get("b")
	assert.False(t, exists)

	focused, ok := m.group.Focused()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID("a"), focused)

	m = press(t, m, "x", "x")
	assert.Equal(t, 0, m.Layout().Len())
	assert.Equal(t, "nothing to close", m.status)
}

func TestPlaygroundModel_ToggleSplitHidesInactiveRows(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "n", "n", "s")

	snap := m.Layout().Info()
	assert.Equal(t, entity.ModeStacked, snap.Columns[0].Mode)

	a, _ := m.group.Get("a")
	b, _ := m.group.Get("b")
	assert.True(t, a.Hidden())
	assert.False(t, b.Hidden())
}

func TestPlaygroundModel_ConfigReload(t *testing.T) {
	updates := make(chan *config.Config, 1)
	m := newTestModel(t, updates)
	m = press(t, m, "n")

	cfg := config.DefaultConfig()
	cfg.Layout.BorderWidth = 3
	cfg.Layout.BorderFocus = "#ff0000"
	updates <- cfg

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(configChangedMsg)
	require.True(t, ok)

	next, rearm := m.Update(changed)
	m = next.(PlaygroundModel)
	assert.NotNil(t, rearm)
	assert.Equal(t, 3, m.Layout().Options().BorderWidth)
	assert.Equal(t, "config reloaded", m.status)

	a, _ := m.group.Get("a")
	p, _ := a.Placement()
	assert.Equal(t, 3, p.BorderWidth)
}

func TestPlaygroundModel_InitWithoutUpdates(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Nil(t, m.Init())
}

func TestPlaygroundModel_Quit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlaygroundModel_View(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Contains(t, m.View(), "press n to open a window")

	m = press(t, m, "n")
	view := m.View()
	assert.Contains(t, view, "1 windows")
	assert.Contains(t, view, "term 1")
	assert.NotContains(t, view, "press n")

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "1 columns")
}
