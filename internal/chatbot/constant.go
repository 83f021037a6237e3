package chatbot

// Service identity reported by the status endpoint.
const (
	ServiceName       = "Ayub Khan Portfolio Chatbot"
	ServiceVersion    = "1.0.0"
	StatusOperational = "operational"
)

// History window configuration.
const (
	// MaxSessionHistory is the number of non-system messages retained per
	// session. Together with the pinned system preamble a history never
	// exceeds MaxSessionHistory+1 entries.
	MaxSessionHistory = 20

	// DefaultSessionID is used when a client omits sessionId. Visitors that
	// share it share one conversation; the widget always sends its own id.
	DefaultSessionID = "default"
)
