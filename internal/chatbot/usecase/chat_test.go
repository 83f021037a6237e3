package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portfolio-chatbot/internal/chatbot"
	"portfolio-chatbot/internal/chatbot/store"
	"portfolio-chatbot/pkg/groq"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New("preamble", 10)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return s
}

func TestChat_Success(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{response: replyResponse("Nice to meet you!")}
	uc := New(&mockLogger{}, st, llm)

	out, err := uc.Chat(context.Background(), chatbot.ChatInput{SessionID: "s1", Message: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "Nice to meet you!" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if out.SessionID != "s1" {
		t.Errorf("session id not echoed: %q", out.SessionID)
	}

	history, _ := st.History("s1")
	if len(history) != 3 {
		t.Fatalf("expected [system,user,assistant], got %d messages", len(history))
	}
	if history[1].Role != chatbot.RoleUser || history[1].Content != "hello" {
		t.Errorf("user message not appended: %+v", history[1])
	}
	if history[2].Role != chatbot.RoleAssistant || history[2].Content != "Nice to meet you!" {
		t.Errorf("assistant reply not appended: %+v", history[2])
	}
}

func TestChat_SendsFullHistoryToModel(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{response: replyResponse("ok")}
	uc := New(&mockLogger{}, st, llm)

	ctx := context.Background()
	if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: "first"}); err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: "second"}); err != nil {
		t.Fatalf("second turn: %v", err)
	}

	// Second call carries system + first turn + new user message.
	if got := len(llm.lastReq.Messages); got != 4 {
		t.Fatalf("expected 4 messages in model request, got %d", got)
	}
	if llm.lastReq.Messages[0].Role != groq.RoleSystem {
		t.Errorf("request must lead with the system preamble, got %q", llm.lastReq.Messages[0].Role)
	}
	if llm.lastReq.Messages[3].Content != "second" {
		t.Errorf("request must end with the new user message, got %q", llm.lastReq.Messages[3].Content)
	}
}

func TestChat_ModelFailureKeepsUserMessage(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{err: errors.New("network down")}
	uc := New(&mockLogger{}, st, llm)

	_, err := uc.Chat(context.Background(), chatbot.ChatInput{SessionID: "s1", Message: "hello"})
	if !errors.Is(err, chatbot.ErrModelInvocation) {
		t.Fatalf("expected ErrModelInvocation, got %v", err)
	}

	// The user's message stays so a retry continues from here; no
	// synthetic assistant message is appended.
	history, _ := st.History("s1")
	if len(history) != 2 {
		t.Fatalf("expected [system,user], got %d messages", len(history))
	}
	if history[1].Role != chatbot.RoleUser {
		t.Errorf("expected trailing user message, got %q", history[1].Role)
	}
}

func TestChat_NotConfigured(t *testing.T) {
	st := newTestStore(t)
	uc := New(&mockLogger{}, st, nil)

	if uc.Configured() {
		t.Error("nil client must report unconfigured")
	}

	_, err := uc.Chat(context.Background(), chatbot.ChatInput{SessionID: "s1", Message: "hello"})
	if !errors.Is(err, chatbot.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	// The store must never be touched for that session id.
	if st.Size() != 0 {
		t.Errorf("expected untouched store, got %d sessions", st.Size())
	}
}

func TestChat_LongConversationTruncates(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{response: replyResponse("ack")}
	uc := New(&mockLogger{}, st, llm)

	ctx := context.Background()
	for i := 0; i < 25; i++ {
		if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: fmt.Sprintf("turn-%d", i)}); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	history, _ := st.History("s1")
	if len(history) != chatbot.MaxSessionHistory+1 {
		t.Fatalf("expected %d messages, got %d", chatbot.MaxSessionHistory+1, len(history))
	}
	if history[0].Role != chatbot.RoleSystem {
		t.Errorf("system preamble must survive truncation, got %q", history[0].Role)
	}
}

func TestStatus(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{response: replyResponse("hi")}
	uc := New(&mockLogger{}, st, llm)

	out := uc.Status(context.Background())
	if out.Service != chatbot.ServiceName {
		t.Errorf("unexpected service name: %q", out.Service)
	}
	if out.Status != chatbot.StatusOperational {
		t.Errorf("unexpected status: %q", out.Status)
	}
	if out.Version != chatbot.ServiceVersion {
		t.Errorf("unexpected version: %q", out.Version)
	}
	if !out.APIConfigured {
		t.Error("expected apiConfigured=true")
	}
	if out.ActiveSessions != 0 {
		t.Errorf("expected 0 sessions, got %d", out.ActiveSessions)
	}

	// First message of a new session bumps the count by exactly one.
	ctx := context.Background()
	if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: "hello"}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got := uc.Status(ctx).ActiveSessions; got != 1 {
		t.Errorf("expected 1 session, got %d", got)
	}

	// Subsequent messages on the same id do not.
	if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: "again"}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got := uc.Status(ctx).ActiveSessions; got != 1 {
		t.Errorf("expected stable count 1, got %d", got)
	}
}

func TestClearHistory(t *testing.T) {
	st := newTestStore(t)
	llm := &mockGroqClient{response: replyResponse("hi")}
	uc := New(&mockLogger{}, st, llm)

	ctx := context.Background()
	if uc.ClearHistory(ctx, "never-used") {
		t.Error("clearing an unknown session should report false")
	}

	if _, err := uc.Chat(ctx, chatbot.ChatInput{SessionID: "s1", Message: "hello"}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if !uc.ClearHistory(ctx, "s1") {
		t.Error("clearing an existing session should report true")
	}
	if uc.Status(ctx).ActiveSessions != 0 {
		t.Error("session should be gone after clear")
	}
}
