package domain

// Reply is the engine's answer to one user message, independent of the chat platform
type Reply struct {
	Text         string
	QuickReplies []string // Suggested inputs rendered as buttons when the platform supports it
}

// NewReply func
func NewReply(text string, quickReplies ...string) Reply {
	return Reply{Text: text, QuickReplies: quickReplies}
}
