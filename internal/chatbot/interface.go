package chatbot

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat appends the user's message to the session history, asks the model
	// for a reply with the full history, and returns the reply.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Status reports service identity and operational counters.
	Status(ctx context.Context) StatusOutput

	// ClearHistory removes the session entirely; reports whether it existed.
	ClearHistory(ctx context.Context, sessionID string) bool

	// Configured reports whether a model credential is available.
	Configured() bool
}
