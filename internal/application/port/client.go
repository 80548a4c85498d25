package port

import "github.com/bnema/wmiitile/internal/domain/entity"

// Client is the placement sink of a host-owned window.
// The layout only calls it from a reconfiguration pass.
type Client interface {
	// ID returns the identity the layout keys the client by.
	ID() entity.ClientID

	// Place moves and resizes the window and applies its border.
	Place(placement entity.Placement)

	// Hide unmaps the window without forgetting it.
	Hide()

	// Unhide maps the window again.
	Unhide()
}
