package input

import (
	"context"

	"currency-assistant/internal/domain"
)

// ConversationEngine interface - Input port (use case)
// Drives the per-user currency dialogue independent of the chat platform
type ConversationEngine interface {
	// HandleMessage feeds one text message of a user into its flow and returns the answer
	HandleMessage(ctx context.Context, userID, text string) domain.Reply
	// Greeting returns the command overview shown to a user
	Greeting(userID string) domain.Reply
	// Reset drops any flow in progress for the user
	Reset(userID string) error
}
