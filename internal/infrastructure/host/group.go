package host

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// Group owns the windows of one workspace. It implements port.FocusDelegate.
type Group struct {
	mu      sync.Mutex
	windows []*Window
	byID    map[entity.ClientID]*Window
	focused entity.ClientID
	history []entity.ClientID
	newID   entity.IDGenerator
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithIDGenerator overrides the generator used by Open.
func WithIDGenerator(gen entity.IDGenerator) GroupOption {
	return func(g *Group) {
		if gen != nil {
			g.newID = gen
		}
	}
}

// NewGroup creates an empty group.
func NewGroup(opts ...GroupOption) *Group {
	g := &Group{
		byID:  make(map[entity.ClientID]*Window),
		newID: ShortID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShortID returns the first segment of a random UUID.
func ShortID() string {
	id := uuid.NewString()
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Open creates a window with a generated ID.
func (g *Group) Open(title string) *Window {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := entity.ClientID(g.newID())
	for g.byID[id] != nil {
		id = entity.ClientID(g.newID())
	}
	w := NewWindow(id, title)
	g.attachLocked(w)
	return w
}

// Attach adds a window with a caller-chosen ID.
func (g *Group) Attach(id entity.ClientID) (*Window, error) {
	if id == "" {
		return nil, fmt.Errorf("window id is empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.byID[id] != nil {
		return nil, fmt.Errorf("window %s already exists", id)
	}
	w := NewWindow(id, "")
	g.attachLocked(w)
	return w, nil
}

func (g *Group) attachLocked(w *Window) {
	g.windows = append(g.windows, w)
	g.byID[w.ID()] = w
}

// Close forgets a window. It returns false for unknown IDs.
func (g *Group) Close(id entity.ClientID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.byID[id] == nil {
		return false
	}
	delete(g.byID, id)
	for i, w := range g.windows {
		if w.ID() == id {
			g.windows = append(g.windows[:i], g.windows[i+1:]...)
			break
		}
	}
	if g.focused == id {
		g.focused = ""
	}
	return true
}

// Get returns the window with the given ID.
func (g *Group) Get(id entity.ClientID) (*Window, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.byID[id]
	return w, ok
}

// Windows returns the windows in open order.
func (g *Group) Windows() []*Window {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*Window, len(g.windows))
	copy(out, g.windows)
	return out
}

// Clients returns the windows as placement sinks, in open order.
func (g *Group) Clients() []port.Client {
	windows := g.Windows()
	out := make([]port.Client, len(windows))
	for i, w := range windows {
		out[i] = w
	}
	return out
}

// Len returns the number of open windows.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.windows)
}

// Focus records a focus request from the layout. Repeated requests for
// the focused window are not recorded again.
func (g *Group) Focus(ctx context.Context, id entity.ClientID) {
	log := logging.FromContext(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.byID[id] == nil {
		log.Debug().Str("client_id", id.String()).Msg("focus request for unknown window ignored")
		return
	}
	if g.focused == id {
		return
	}
	g.focused = id
	g.history = append(g.history, id)
	log.Debug().Str("client_id", id.String()).Msg("host focus moved")
}

// Focused returns the window the host last focused.
func (g *Group) Focused() (entity.ClientID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.focused, g.focused != ""
}

// FocusHistory returns every focus request in order.
func (g *Group) FocusHistory() []entity.ClientID {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entity.ClientID, len(g.history))
	copy(out, g.history)
	return out
}
