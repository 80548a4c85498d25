// Package entity contains the column layout state and its geometry projection.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "errors"

// ClientID identifies a host-owned window. The layout only keeps IDs,
// never the window itself.
type ClientID string

// String returns the ID as a plain string.
func (id ClientID) String() string {
	return string(id)
}

// IDGenerator is a function that generates unique client IDs.
type IDGenerator func() string

// ErrInvariantViolated is returned by Layout.Validate when the column
// structure is inconsistent.
var ErrInvariantViolated = errors.New("layout invariant violated")

// RemovePolicy decides what happens to the row of a client that is removed
// while another client holds the focus.
type RemovePolicy string

const (
	// RemoveStructural drops the row and collapses an emptied column.
	RemoveStructural RemovePolicy = "structural"
	// RemoveFocusedOnly only unregisters the client and leaves its row in place.
	RemoveFocusedOnly RemovePolicy = "focused_only"
)

// IsValid reports whether the policy is one of the known values.
func (p RemovePolicy) IsValid() bool {
	return p == RemoveStructural || p == RemoveFocusedOnly
}
