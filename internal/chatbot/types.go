package chatbot

// Role identifies who produced a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable entry in a session's conversation history.
// Ordering within a session is chronological and significant.
type Message struct {
	Role    Role
	Content string
}

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply     string
	SessionID string
}

type StatusOutput struct {
	Service        string
	Status         string
	Version        string
	ActiveSessions int
	APIConfigured  bool
}
