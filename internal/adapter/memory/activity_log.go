// Package memory holds in-process adapters used when no database is
// configured.
package memory

import (
	"context"
	"sync"
	"time"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

// DefaultActivityCapacity bounds ActivityLog when no capacity is given.
const DefaultActivityCapacity = 500

// ActivityLog is a bounded port.ActivityRepository. Once full, each new
// entry evicts the oldest one.
type ActivityLog struct {
	now func() time.Time

	mu      sync.Mutex
	entries []domain.Activity
	next    int
	full    bool
	lastID  int64
}

var _ port.ActivityRepository = (*ActivityLog)(nil)

// NewActivityLog returns a log keeping at most capacity entries.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLog{now: time.Now, entries: make([]domain.Activity, capacity)}
}

// Record stores a, assigning its ID and, when zero, its CreatedAt.
func (l *ActivityLog) Record(_ context.Context, a domain.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastID++
	a.ID = l.lastID
	if a.CreatedAt.IsZero() {
		a.CreatedAt = l.now().UTC()
	}
	l.entries[l.next] = a
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *ActivityLog) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = len(l.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]domain.Activity, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (l.next - i + len(l.entries)) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out, nil
}
