package entities

// MessageRole identifies who produced a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single turn in an estimator conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Conversation is the per-session message history kept by the session store.
type Conversation struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// CanGenerateEstimate reports whether enough back-and-forth has happened for
// an estimate request to be offered (more than four messages exchanged).
func (c Conversation) CanGenerateEstimate() bool {
	return len(c.Messages) > 4
}
