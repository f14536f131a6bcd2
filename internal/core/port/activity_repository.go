package port

import (
	"context"

	"emerald-console/internal/core/domain"
)

// ActivityRepository stores the journal of mutations made through the
// console. Implementations must be safe for concurrent use.
type ActivityRepository interface {
	// Record appends an entry. CreatedAt is set by the repository when zero.
	Record(ctx context.Context, activity domain.Activity) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// EventSink receives the events console components emit.
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ctx context.Context, event domain.Event)

func (f EventSinkFunc) Emit(ctx context.Context, event domain.Event) { f(ctx, event) }
