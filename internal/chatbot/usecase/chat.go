package usecase

import (
	"context"
	"fmt"

	"portfolio-chatbot/internal/chatbot"
	"portfolio-chatbot/pkg/groq"
)

// Chat runs one conversation turn: append the user's message, ask the
// model with the full session history, append and return the reply.
//
// On model failure no synthetic assistant message is appended; the
// user's message stays in history so a retry continues from there.
func (uc *implUseCase) Chat(ctx context.Context, input chatbot.ChatInput) (chatbot.ChatOutput, error) {
	if !uc.Configured() {
		return chatbot.ChatOutput{}, chatbot.ErrNotConfigured
	}

	release := uc.store.Acquire(input.SessionID)
	defer release()

	uc.store.Append(input.SessionID, chatbot.Message{Role: chatbot.RoleUser, Content: input.Message})

	history, _ := uc.store.History(input.SessionID)

	resp, err := uc.llm.ChatCompletion(ctx, &groq.Request{Messages: toGroqMessages(history)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat ChatCompletion session=%s: %v", input.SessionID, err)
		return chatbot.ChatOutput{}, fmt.Errorf("%w: %v", chatbot.ErrModelInvocation, err)
	}

	reply := resp.Choices[0].Message.Content
	uc.store.Append(input.SessionID, chatbot.Message{Role: chatbot.RoleAssistant, Content: reply})

	return chatbot.ChatOutput{
		Reply:     reply,
		SessionID: input.SessionID,
	}, nil
}
