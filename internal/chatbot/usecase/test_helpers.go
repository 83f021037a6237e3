package usecase

import (
	"context"

	"portfolio-chatbot/pkg/groq"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Groq client for testing
type mockGroqClient struct {
	response *groq.Response
	err      error

	calls   int
	lastReq *groq.Request
}

func (m *mockGroqClient) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func replyResponse(content string) *groq.Response {
	return &groq.Response{
		Choices: []groq.Choice{
			{Message: groq.Message{Role: groq.RoleAssistant, Content: content}},
		},
	}
}
