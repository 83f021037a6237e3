package usecase

import (
	"context"

	"portfolio-chatbot/internal/chatbot"
)

// Status reports service identity and operational counters. Always succeeds.
func (uc *implUseCase) Status(_ context.Context) chatbot.StatusOutput {
	return chatbot.StatusOutput{
		Service:        chatbot.ServiceName,
		Status:         chatbot.StatusOperational,
		Version:        chatbot.ServiceVersion,
		ActiveSessions: uc.store.Size(),
		APIConfigured:  uc.Configured(),
	}
}

// ClearHistory removes the session entirely; reports whether it existed.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) bool {
	existed := uc.store.Clear(sessionID)
	uc.l.Infof(ctx, "uc.ClearHistory session=%s existed=%t", sessionID, existed)
	return existed
}
