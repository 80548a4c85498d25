// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wmiitile/internal/cli/styles"
	"github.com/bnema/wmiitile/internal/infrastructure/config"
	"github.com/bnema/wmiitile/internal/infrastructure/host"
	"github.com/bnema/wmiitile/internal/logging"
	"github.com/bnema/wmiitile/pkg/wmii"
)

// PlaygroundModel is the Bubble Tea model driving a layout from the keyboard.
// Windows are simulated; the terminal stands in for the screen.
type PlaygroundModel struct {
	// UI components
	help    help.Model
	keys    styles.PlaygroundKeyMap
	preview *styles.PreviewRenderer
	theme   *styles.Theme

	// State
	layout *wmii.Layout
	group  *host.Group
	opened int
	width  int
	height int
	status string

	// Dependencies
	ctx     context.Context
	updates <-chan *config.Config
}

// PlaygroundConfig holds configuration for the playground model.
type PlaygroundConfig struct {
	Options wmii.Options
	// Updates delivers reloaded configurations; nil disables live reload.
	Updates <-chan *config.Config
	// Group overrides the simulated host, mostly for tests.
	Group *host.Group
}

// configChangedMsg is sent when the config file was reloaded.
type configChangedMsg struct {
	cfg *config.Config
}

// NewPlaygroundModel creates a new playground model.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) PlaygroundModel {
	group := cfg.Group
	if group == nil {
		group = host.NewGroup()
	}

	return PlaygroundModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPlaygroundKeyMap(),
		preview: styles.NewPreviewRenderer(theme),
		theme:   theme,
		layout:  wmii.New(cfg.Options, group),
		group:   group,
		width:   80,
		height:  24,
		ctx:     logging.WithComponent(ctx, "playground"),
		updates: cfg.Updates,
	}
}

// Layout returns the layout driven by the model.
func (m PlaygroundModel) Layout() *wmii.Layout { return m.layout }

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return m.waitForConfig()
}

func (m PlaygroundModel) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: cfg}
	}
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reconfigure()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case configChangedMsg:
		m.theme.SetWindowColors(msg.cfg)
		m.layout.SetDecorations(msg.cfg.Layout.BorderWidth, msg.cfg.Layout.Margin)
		m.reconfigure()
		m.status = "config reloaded"
		logging.FromContext(m.ctx).Info().
			Int("border_width", msg.cfg.Layout.BorderWidth).
			Msg("playground picked up config change")
		return m, m.waitForConfig()
	}

	return m, nil
}

func (m PlaygroundModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	l := m.layout

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.opened++
		w := m.group.Open(fmt.Sprintf("term %d", m.opened))
		l.Add(ctx, w.ID())
		m.group.Focus(ctx, w.ID())
		m.status = "opened " + string(w.ID())

	case key.Matches(msg, m.keys.Close):
		id, ok := l.Focused()
		if !ok {
			m.status = "nothing to close"
			return m, nil
		}
		if next, ok := l.Remove(ctx, id); ok {
			m.group.Focus(ctx, next)
		}
		m.group.Close(id)
		m.status = "closed " + string(id)

	case key.Matches(msg, m.keys.Left):
		m.navigated(l.Left(ctx))
	case key.Matches(msg, m.keys.Right):
		m.navigated(l.Right(ctx))
	case key.Matches(msg, m.keys.Up):
		m.navigated(l.Up(ctx))
	case key.Matches(msg, m.keys.Down):
		m.navigated(l.Down(ctx))
	case key.Matches(msg, m.keys.Next):
		m.navigated(l.Next(ctx))
	case key.Matches(msg, m.keys.Previous):
		m.navigated(l.Previous(ctx))

	case key.Matches(msg, m.keys.First):
		m.jump(l.FocusFirst())
	case key.Matches(msg, m.keys.Last):
		m.jump(l.FocusLast())

	case key.Matches(msg, m.keys.ShuffleLeft):
		m.shuffled(l.ShuffleLeft(ctx))
	case key.Matches(msg, m.keys.ShuffleRight):
		m.shuffled(l.ShuffleRight(ctx))
	case key.Matches(msg, m.keys.ShuffleUp):
		m.shuffled(l.ShuffleUp(ctx))
	case key.Matches(msg, m.keys.ShuffleDown):
		m.shuffled(l.ShuffleDown(ctx))

	case key.Matches(msg, m.keys.ToggleSplit):
		if mode, ok := l.ToggleSplit(ctx); ok {
			m.status = "column mode " + string(mode)
		}

	default:
		return m, nil
	}

	m.reconfigure()
	return m, nil
}

func (m *PlaygroundModel) navigated(id wmii.ClientID, ok bool) {
	if ok {
		m.status = "focus " + string(id)
	} else {
		m.status = ""
	}
}

func (m *PlaygroundModel) jump(id wmii.ClientID, ok bool) {
	if !ok {
		return
	}
	m.layout.Focus(m.ctx, id)
	m.group.Focus(m.ctx, id)
	m.status = "focus " + string(id)
}

func (m *PlaygroundModel) shuffled(ok bool) {
	if ok {
		focused, _ := m.layout.Focused()
		m.status = "moved " + string(focused)
	}
}

// screen is the terminal area reserved for windows.
func (m PlaygroundModel) screen() wmii.Rect {
	return wmii.Rect{Width: max(m.width, 1), Height: max(m.height-m.chromeHeight(), 1)}
}

func (m PlaygroundModel) chromeHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// reconfigure runs the host reconfiguration pass after a change.
func (m PlaygroundModel) reconfigure() {
	m.layout.ConfigureAll(m.ctx, m.group.Clients(), m.screen())
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	screen := m.screen()
	body := m.preview.Render(m.layout.Info(), screen.Width, screen.Height)
	if m.layout.Len() == 0 {
		hint := m.theme.Subtle.Render("press n to open a window")
		body = lipgloss.Place(screen.Width, screen.Height, lipgloss.Center, lipgloss.Center, hint)
	}

	return strings.Join([]string{body, m.renderStatus(), m.help.View(m.keys)}, "\n")
}

func (m PlaygroundModel) renderStatus() string {
	info := m.layout.Info()
	parts := []string{
		fmt.Sprintf("%s %s", styles.IconColumns, info.Name),
		fmt.Sprintf("%d columns", len(info.Columns)),
		fmt.Sprintf("%d windows", len(info.Clients)),
	}
	if id, ok := m.layout.Focused(); ok {
		if w, found := m.group.Get(id); found {
			if p, placed := w.Placement(); placed {
				parts = append(parts, fmt.Sprintf("%s %s %d,%d %dx%d", styles.IconWindow, w.Title(), p.X, p.Y, p.Width, p.Height))
			}
		}
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.theme.StatusBar.Width(max(m.width, 1)).Render(strings.Join(parts, " · "))
}
