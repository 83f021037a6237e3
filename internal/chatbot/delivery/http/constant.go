package http

// Client-facing messages. The model's real failure cause is logged
// server-side and never included in a response.
const (
	MsgInvalidMessage  = "Valid message is required"
	MsgAPIKeyMissing   = "API key not configured. Please set GROQ_API_KEY in .env file"
	MsgModelFailure    = "I'm having trouble responding right now. Please try again."
	MsgHistoryCleared  = "Chat history cleared"
	MsgHistoryNotFound = "No chat history found"
)
