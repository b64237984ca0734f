package memory

import (
	"sync"
	"time"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// sessionEntry pairs a session with the time it was last touched.
// lastAccess is only read or written under MemorySessionStore.mu.
type sessionEntry struct {
	session    *domain.ConversationSession
	lastAccess time.Time
}

// MemorySessionStore struct - Output adapter for in-memory session storage
// The store owns session expiry, so the purge sweep never touches a session
// the conversation engine may be changing.
// Sessions do not survive a restart; every flow can be started again by its command.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	timeout  time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates a new in-memory session store.
// timeout: Duration after which idle sessions expire, zero keeps them until cleared
func NewMemorySessionStore(timeout time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
		timeout:  timeout,
		now:      time.Now,
	}
}

// GetTimeout returns the configured session timeout duration
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetSession retrieves a conversation session by LINE user ID.
// Returns nil if the session does not exist or has expired. Expired sessions
// are deleted (lazy cleanup), valid ones get their access time refreshed.
func (m *MemorySessionStore) GetSession(userID string) (*domain.ConversationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.sessions[userID]
	if !exists {
		return nil, nil
	}

	now := m.now()
	if m.expiredLocked(entry, now) {
		delete(m.sessions, userID)
		return nil, nil
	}

	entry.lastAccess = now
	return entry.session, nil
}

// UpdateSession creates or updates a conversation session and refreshes its access time
func (m *MemorySessionStore) UpdateSession(session *domain.ConversationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.UserID] = &sessionEntry{
		session:    session,
		lastAccess: m.now(),
	}
	return nil
}

// DeleteSession removes a conversation session by LINE user ID.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}

// PurgeExpired drops every expired session and returns how many were removed.
// Sessions nobody reads again are only reclaimed here.
func (m *MemorySessionStore) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for userID, entry := range m.sessions {
		if m.expiredLocked(entry, now) {
			delete(m.sessions, userID)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemorySessionStore) expiredLocked(entry *sessionEntry, now time.Time) bool {
	if m.timeout <= 0 {
		return false
	}
	return now.Sub(entry.lastAccess) > m.timeout
}
