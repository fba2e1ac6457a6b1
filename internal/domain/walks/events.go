package walks

import (
	"context"
	"errors"
	"time"
)

type EventType string

const (
	EventApplicationAccepted EventType = "walk.application_accepted"
	EventCompleted           EventType = "walk.completed"
	EventCancelled           EventType = "walk.cancelled"
	EventRated               EventType = "walk.rated"
)

// Event se publica después del commit. Rating solo viene en walk.rated.
type Event struct {
	ID   string
	Type EventType

	RequestID     int64
	ApplicationID int64
	WalkerID      int64
	Rating        int

	OccurredAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type PublisherFunc func(ctx context.Context, e Event) error

func (f PublisherFunc) Publish(ctx context.Context, e Event) error { return f(ctx, e) }

// Publishers entrega el evento a todos y junta los errores.
type Publishers []Publisher

func (ps Publishers) Publish(ctx context.Context, e Event) error {
	var all []error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, e); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}
