package output

import "currency-assistant/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for keeping conversation state.
// Sessions hold the flow position of one LINE user. Implementations must be
// thread-safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves a conversation session by LINE user ID.
	// Returns nil if the session does not exist or has expired.
	GetSession(userID string) (*domain.ConversationSession, error)

	// UpdateSession creates or updates a conversation session and restarts
	// its idle timeout.
	UpdateSession(session *domain.ConversationSession) error

	// DeleteSession removes a conversation session by LINE user ID.
	// Deleting a non-existent session is not an error.
	DeleteSession(userID string) error
}
