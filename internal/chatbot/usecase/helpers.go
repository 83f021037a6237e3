package usecase

import (
	"portfolio-chatbot/internal/chatbot"
	"portfolio-chatbot/pkg/groq"
)

// toGroqMessages maps a session history onto the wire format.
func toGroqMessages(history []chatbot.Message) []groq.Message {
	msgs := make([]groq.Message, len(history))
	for i, m := range history {
		msgs[i] = groq.Message{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return msgs
}
