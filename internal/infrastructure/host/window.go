// Package host provides an in-memory window host for the layout engine.
// It stands in for a display server: windows record the placements they
// receive and a group records the focus requests of the layout.
package host

import (
	"sync"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// Window is a simulated client window. It implements port.Client.
type Window struct {
	mu         sync.RWMutex
	id         entity.ClientID
	title      string
	placement  entity.Placement
	placed     bool
	hidden     bool
	placeCount int
}

// NewWindow creates a window that has never been placed.
func NewWindow(id entity.ClientID, title string) *Window {
	if title == "" {
		title = string(id)
	}
	return &Window{id: id, title: title}
}

func (w *Window) ID() entity.ClientID { return w.id }

func (w *Window) Title() string { return w.title }

// Place records the geometry and border the layout assigned.
func (w *Window) Place(p entity.Placement) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.placement = p
	w.placed = true
	w.placeCount++
}

func (w *Window) Hide() {
	w.mu.Lock()
	w.hidden = true
	w.mu.Unlock()
}

func (w *Window) Unhide() {
	w.mu.Lock()
	w.hidden = false
	w.mu.Unlock()
}

// Placement returns the last placement and whether one was ever received.
func (w *Window) Placement() (entity.Placement, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.placement, w.placed
}

// Hidden reports whether the window is currently unmapped.
func (w *Window) Hidden() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hidden
}

// PlaceCount returns how many times Place was called.
func (w *Window) PlaceCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.placeCount
}
