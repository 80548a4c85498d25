// Package wmii is the public entry point of the wmii-style column tiling
// layout. A Layout arranges client windows into vertical columns; each
// column either splits its height evenly between its rows or stacks them
// and shows only the active one.
//
// A Layout is not safe for concurrent use. The host serializes calls and
// runs a reconfiguration pass (ConfigureAll) after every mutation.
package wmii

import (
	"context"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/application/usecase"
	"github.com/bnema/wmiitile/internal/domain/entity"
)

type (
	ClientID      = entity.ClientID
	Rect          = entity.Rect
	Placement     = entity.Placement
	BorderStyle   = entity.BorderStyle
	ColumnMode    = entity.ColumnMode
	RemovePolicy  = entity.RemovePolicy
	Snapshot      = entity.LayoutSnapshot
	Client        = port.Client
	FocusDelegate = port.FocusDelegate
)

const (
	BorderFocus  = entity.BorderFocus
	BorderStack  = entity.BorderStack
	BorderNormal = entity.BorderNormal

	ModeSplit   = entity.ModeSplit
	ModeStacked = entity.ModeStacked

	RemoveStructural  = entity.RemoveStructural
	RemoveFocusedOnly = entity.RemoveFocusedOnly
)

const defaultName = "wmii"

// Options configures a Layout.
type Options struct {
	Name         string
	BorderWidth  int
	Margin       int
	RemovePolicy RemovePolicy
}

// DefaultOptions returns the stock wmii options.
func DefaultOptions() Options {
	return Options{
		Name:         defaultName,
		BorderWidth:  1,
		RemovePolicy: RemoveStructural,
	}
}

func (o Options) normalized() Options {
	if o.Name == "" {
		o.Name = defaultName
	}
	if o.BorderWidth < 0 {
		o.BorderWidth = 0
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if !o.RemovePolicy.IsValid() {
		o.RemovePolicy = RemoveStructural
	}
	return o
}

func (o Options) projection() entity.ProjectionOptions {
	return entity.ProjectionOptions{BorderWidth: o.BorderWidth, Margin: o.Margin}
}

// Layout is one workspace's column layout.
type Layout struct {
	opts  Options
	state *entity.Layout
	focus FocusDelegate
	uc    *usecase.ManageColumnsUseCase
}

// New creates an empty layout. focus receives host-level focus requests
// from navigation and shuffles and may be nil.
func New(opts Options, focus FocusDelegate) *Layout {
	opts = opts.normalized()
	state := entity.NewLayout()
	state.RemovePolicy = opts.RemovePolicy
	return &Layout{
		opts:  opts,
		state: state,
		focus: focus,
		uc:    usecase.NewManageColumnsUseCase(focus),
	}
}

// Options returns the options the layout was built with.
func (l *Layout) Options() Options { return l.opts }

// SetDecorations changes border width and margin for later configure passes.
func (l *Layout) SetDecorations(borderWidth, margin int) {
	l.opts.BorderWidth = max(borderWidth, 0)
	l.opts.Margin = max(margin, 0)
}

// Clone returns a fresh, empty layout with the same options and delegate.
func (l *Layout) Clone() *Layout {
	return New(l.opts, l.focus)
}

// Info returns a snapshot of focus, managed clients and columns.
func (l *Layout) Info() *Snapshot {
	return entity.SnapshotFromLayout(l.opts.Name, l.state)
}

// Validate checks the structural invariants of the layout.
func (l *Layout) Validate() error { return l.state.Validate() }

// Len returns the number of managed clients.
func (l *Layout) Len() int { return len(l.state.Clients) }

// Focused returns the focused client.
func (l *Layout) Focused() (ClientID, bool) {
	return l.state.Current, l.state.HasFocus()
}

// Add starts managing id in the focused column and focuses it.
func (l *Layout) Add(ctx context.Context, id ClientID) {
	l.uc.Add(ctx, l.state, id)
}

// Remove stops managing id. It returns the client that should receive
// focus next, if any. The delegate only hears about it when a column was
// dropped; hosts focus the returned client themselves.
func (l *Layout) Remove(ctx context.Context, id ClientID) (ClientID, bool) {
	return l.uc.Remove(ctx, l.state, id)
}

// Focus marks id as the focused client without notifying the delegate.
func (l *Layout) Focus(ctx context.Context, id ClientID) {
	l.uc.Focus(ctx, l.state, id)
}

// Configure places or hides a single client on screen.
func (l *Layout) Configure(ctx context.Context, client Client, screen Rect) (Placement, bool) {
	return l.uc.Configure(ctx, l.state, client, screen, l.opts.projection())
}

// ConfigureAll runs a reconfiguration pass over clients.
func (l *Layout) ConfigureAll(ctx context.Context, clients []Client, screen Rect) []Placement {
	return l.uc.ConfigureAll(ctx, l.state, clients, screen, l.opts.projection())
}

// Placements projects every managed client without touching any window.
func (l *Layout) Placements(screen Rect) []Placement {
	return l.state.ProjectAll(screen, l.opts.projection())
}

func (l *Layout) Left(ctx context.Context) (ClientID, bool)     { return l.uc.Left(ctx, l.state) }
func (l *Layout) Right(ctx context.Context) (ClientID, bool)    { return l.uc.Right(ctx, l.state) }
func (l *Layout) Up(ctx context.Context) (ClientID, bool)       { return l.uc.Up(ctx, l.state) }
func (l *Layout) Down(ctx context.Context) (ClientID, bool)     { return l.uc.Down(ctx, l.state) }
func (l *Layout) Next(ctx context.Context) (ClientID, bool)     { return l.uc.Next(ctx, l.state) }
func (l *Layout) Previous(ctx context.Context) (ClientID, bool) { return l.uc.Previous(ctx, l.state) }

// ToggleSplit flips the focused column between split and stacked.
func (l *Layout) ToggleSplit(ctx context.Context) (ColumnMode, bool) {
	return l.uc.ToggleSplit(ctx, l.state)
}

func (l *Layout) ShuffleLeft(ctx context.Context) bool  { return l.uc.ShuffleLeft(ctx, l.state) }
func (l *Layout) ShuffleRight(ctx context.Context) bool { return l.uc.ShuffleRight(ctx, l.state) }
func (l *Layout) ShuffleUp(ctx context.Context) bool    { return l.uc.ShuffleUp(ctx, l.state) }
func (l *Layout) ShuffleDown(ctx context.Context) bool  { return l.uc.ShuffleDown(ctx, l.state) }

// AddColumn inserts a new column holding only id and rebalances widths.
// It returns the index of the new column.
func (l *Layout) AddColumn(ctx context.Context, prepend bool, id ClientID) int {
	return l.uc.AddColumn(ctx, l.state, prepend, id)
}

// FocusFirst returns the first row of the first column.
func (l *Layout) FocusFirst() (ClientID, bool) { return l.uc.FocusFirst(l.state) }

// FocusLast returns the last row of the last column.
func (l *Layout) FocusLast() (ClientID, bool) { return l.uc.FocusLast(l.state) }

// FocusNext returns the client after id in column-major order.
func (l *Layout) FocusNext(id ClientID) (ClientID, bool) { return l.uc.FocusNext(l.state, id) }

// FocusPrevious returns the client before id in column-major order.
func (l *Layout) FocusPrevious(id ClientID) (ClientID, bool) {
	return l.uc.FocusPrevious(l.state, id)
}
