package quiz

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultSessionTTL is the time after which unfinished sessions are forgotten.
const DefaultSessionTTL = 2 * time.Hour

// ErrSessionNotFound is returned by SessionStore when there is no session with
// a given ID. Expired sessions are not found either.
var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStore keeps quiz sessions between requests. Sessions returned by Get are
// copies. Changes to them are kept only after calling Save.
type SessionStore interface {
	// Get returns the session with `id`.
	Get(ctx context.Context, id string) (*Session, error)

	// Save stores `session` under its ID, replacing any previous version.
	Save(ctx context.Context, session *Session) error

	// Delete removes the session with `id`. Deleting a missing session is not
	// an error.
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a SessionStore which keeps sessions in the process memory. It
// is safe for concurrent use.
type MemoryStore struct {
	sync.Mutex

	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryStoreEntry
}

type memoryStoreEntry struct {
	session *Session
	expires time.Time
}

// NewMemoryStore returns a MemoryStore which forgets sessions `ttl` after they
// were last saved. Non-positive `ttl` means DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryStoreEntry),
	}
}

// Get implements SessionStore.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.Lock()
	defer m.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if !m.now().Before(entry.expires) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}

	return entry.session.clone(), nil
}

// Save implements SessionStore. Expired sessions of other users are removed
// while at it.
func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return errors.New("cannot save a session without an ID")
	}

	m.Lock()
	defer m.Unlock()

	now := m.now()
	for id, entry := range m.sessions {
		if !now.Before(entry.expires) {
			delete(m.sessions, id)
		}
	}

	m.sessions[session.ID] = memoryStoreEntry{
		session: session.clone(),
		expires: now.Add(m.ttl),
	}
	return nil
}

// Delete implements SessionStore.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.Lock()
	defer m.Unlock()

	delete(m.sessions, id)
	return nil
}

// Len returns the number of sessions currently stored, including expired ones
// which have not been cleaned up yet.
func (m *MemoryStore) Len() int {
	m.Lock()
	defer m.Unlock()

	return len(m.sessions)
}
