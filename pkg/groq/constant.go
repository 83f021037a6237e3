package groq

import "time"

const (
	// DefaultBaseURL is the default Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTemperature keeps portfolio answers factual and stable
	DefaultTemperature = 0.3

	// DefaultMaxRetries bounds attempts per call; retry is owned by this
	// client, not by callers
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the pause between attempts
	DefaultRetryDelay = 500 * time.Millisecond
)

// Chat roles accepted by the chat-completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
