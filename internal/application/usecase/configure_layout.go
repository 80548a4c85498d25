package usecase

import (
	"context"

	"github.com/bnema/wmiitile/internal/application/port"
	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
)

// Configure projects the client onto the screen and applies the result to
// it: visible clients are placed then unhidden, hidden ones are only hidden.
// Unmanaged clients are left untouched and reported with false.
func (uc *ManageColumnsUseCase) Configure(
	ctx context.Context,
	l *entity.Layout,
	client port.Client,
	screen entity.Rect,
	opts entity.ProjectionOptions,
) (entity.Placement, bool) {
	log := logging.FromContext(ctx)

	id := client.ID()
	p, ok := l.Project(id, screen, opts)
	if !ok {
		log.Debug().Str("client_id", string(id)).Msg("configure ignored, client not placed")
		return entity.Placement{}, false
	}

	if !p.Visible {
		client.Hide()
		log.Debug().Str("client_id", string(id)).Msg("client hidden")
		return p, true
	}

	client.Place(p)
	client.Unhide()

	log.Debug().
		Str("client_id", string(id)).
		Int("x", p.X).
		Int("y", p.Y).
		Int("width", p.Width).
		Int("height", p.Height).
		Str("border", string(p.Border)).
		Msg("client placed")
	return p, true
}

// ConfigureAll runs Configure for every client, in the given order.
func (uc *ManageColumnsUseCase) ConfigureAll(
	ctx context.Context,
	l *entity.Layout,
	clients []port.Client,
	screen entity.Rect,
	opts entity.ProjectionOptions,
) []entity.Placement {
	out := make([]entity.Placement, 0, len(clients))
	for _, c := range clients {
		if p, ok := uc.Configure(ctx, l, c, screen, opts); ok {
			out = append(out, p)
		}
	}
	return out
}
