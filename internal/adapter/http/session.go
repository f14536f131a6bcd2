package httpadapter

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"emerald-console/internal/adapter/usecase"
)

const (
	defaultSessionTTL      = 12 * time.Hour
	sessionCleanupInterval = time.Minute
)

// ShellFactory builds the shell of a new session. ctx is cancelled when the
// session expires or the store is closed.
type ShellFactory func(ctx context.Context) *usecase.Shell

type session struct {
	shell     *usecase.Shell
	cancel    context.CancelFunc
	expiresAt time.Time
}

// SessionStore keeps one shell per browser session. Sessions expire after
// ttl without activity.
type SessionStore struct {
	base    context.Context
	ttl     time.Duration
	factory ShellFactory
	now     func() time.Time

	mu          sync.Mutex
	sessions    map[string]*session
	lastCleanup time.Time
}

// NewSessionStore returns an empty store. Shells are created with contexts
// derived from ctx.
func NewSessionStore(ctx context.Context, ttl time.Duration, factory ShellFactory) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{
		base:     ctx,
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the shell of session id and extends its lifetime.
func (s *SessionStore) Get(id string) (*usecase.Shell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.cleanupLocked(now)
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if now.After(sess.expiresAt) {
		s.dropLocked(id, sess)
		return nil, false
	}
	sess.expiresAt = now.Add(s.ttl)
	return sess.shell, true
}

// Create starts a new session and returns its id.
func (s *SessionStore) Create() (string, *usecase.Shell) {
	ctx, cancel := context.WithCancel(s.base)
	shell := s.factory(ctx)
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.cleanupLocked(now)
	s.sessions[id] = &session{shell: shell, cancel: cancel, expiresAt: now.Add(s.ttl)}
	return id, shell
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// TTL returns the idle lifetime of a session.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Close ends every session.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		s.dropLocked(id, sess)
	}
}

func (s *SessionStore) cleanupLocked(now time.Time) {
	if now.Sub(s.lastCleanup) < sessionCleanupInterval {
		return
	}
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			s.dropLocked(id, sess)
		}
	}
	s.lastCleanup = now
}

func (s *SessionStore) dropLocked(id string, sess *session) {
	delete(s.sessions, id)
	sess.shell.Close()
	sess.cancel()
}
