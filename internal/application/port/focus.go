package port

import (
	"context"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// FocusDelegate performs host-level focus bookkeeping after the layout has
// moved its own focus pointer (input focus, stacking order, hooks).
type FocusDelegate interface {
	Focus(ctx context.Context, id entity.ClientID)
}

// FocusDelegateFunc adapts a plain function to FocusDelegate.
type FocusDelegateFunc func(ctx context.Context, id entity.ClientID)

// Focus calls f(ctx, id).
func (f FocusDelegateFunc) Focus(ctx context.Context, id entity.ClientID) {
	f(ctx, id)
}
