package domain

// ConversationState is the position of a user inside a currency flow
type ConversationState string

const (
	// StateIdle - no flow in progress
	StateIdle ConversationState = "idle"
	// StateMenu - management menu shown, waiting for an action button
	StateMenu ConversationState = "menu"
	// StateAddName - add flow, waiting for the currency name
	StateAddName ConversationState = "add_name"
	// StateAddRate - add flow, waiting for the rate
	StateAddRate ConversationState = "add_rate"
	// StateDeleteName - delete flow, waiting for the currency name
	StateDeleteName ConversationState = "delete_name"
	// StateUpdateName - update flow, waiting for the currency name
	StateUpdateName ConversationState = "update_name"
	// StateUpdateRate - update flow, waiting for the new rate
	StateUpdateRate ConversationState = "update_rate"
	// StateConvertName - convert flow, waiting for the currency name
	StateConvertName ConversationState = "convert_name"
	// StateConvertAmount - convert flow, waiting for the amount
	StateConvertAmount ConversationState = "convert_amount"
)

// SessionKey names a value collected during a flow
type SessionKey string

const (
	// SessionKeyCurrencyName - validated, normalized currency identifier
	SessionKeyCurrencyName SessionKey = "currency_name"
)

// ConversationSession represents the flow state of a single chat user.
// Expiry is tracked by the session store, not by the session.
type ConversationSession struct {
	UserID string                // LINE user identifier
	State  ConversationState     // Current state tag
	Data   map[SessionKey]string // Partial input collected so far
}

// NewConversationSession creates an idle session for a user
func NewConversationSession(userID string) *ConversationSession {
	return &ConversationSession{
		UserID: userID,
		State:  StateIdle,
		Data:   make(map[SessionKey]string),
	}
}

// Enter moves the session into the first state of a flow and drops any
// input collected by a previous flow
func (s *ConversationSession) Enter(state ConversationState) {
	s.State = state
	s.Data = make(map[SessionKey]string)
}

// Advance stores a validated value and moves to the next state of the flow
func (s *ConversationSession) Advance(state ConversationState, key SessionKey, value string) {
	if s.Data == nil {
		s.Data = make(map[SessionKey]string)
	}
	s.Data[key] = value
	s.State = state
}

// Clear ends the current flow
func (s *ConversationSession) Clear() {
	s.Enter(StateIdle)
}

// IsIdle reports whether no flow is in progress
func (s *ConversationSession) IsIdle() bool {
	return s.State == "" || s.State == StateIdle
}

// Value returns a collected value
func (s *ConversationSession) Value(key SessionKey) string {
	return s.Data[key]
}
