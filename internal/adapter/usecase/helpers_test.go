package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"emerald-console/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// eventRecorder is a port.EventSink collecting everything emitted.
type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *eventRecorder) Emit(_ context.Context, e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) got() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

func seller(id int64, name, balance string) domain.Seller {
	return domain.Seller{ID: id, Name: name, EmeraldBalance: domain.NewBalance(domain.MustAmount(balance))}
}
