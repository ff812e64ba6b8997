package repository

import (
	"context"
	"sync"
	"time"

	"ippt-coach/internal/domain"
)

type memoryEntry struct {
	session domain.Session
	expires time.Time
}

// MemoryStore is a process-local session store for the CLI and local runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty store. A non-positive ttl uses DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryStore{entries: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		return domain.Session{}, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, sessionID)
		return domain.Session{}, nil
	}
	return e.session.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = memoryEntry{session: s.Clone(), expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}

// Len reports how many sessions are held, including expired ones not yet reaped.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
