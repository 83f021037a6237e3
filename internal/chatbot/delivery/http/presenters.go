package http

import "portfolio-chatbot/internal/chatbot"

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

func (r chatReq) toInput() chatbot.ChatInput {
	return chatbot.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

type clearHistoryReq struct {
	SessionID string `json:"sessionId"`
}

// --- Response DTOs ---

type chatResp struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

func (h *handler) newChatResp(out chatbot.ChatOutput) chatResp {
	return chatResp{
		Success:   true,
		Response:  out.Reply,
		SessionID: out.SessionID,
	}
}

type statusResp struct {
	Service        string `json:"service"`
	Status         string `json:"status"`
	Version        string `json:"version"`
	ActiveSessions int    `json:"activeSessions"`
	APIConfigured  bool   `json:"apiConfigured"`
}

func (h *handler) newStatusResp(out chatbot.StatusOutput) statusResp {
	return statusResp{
		Service:        out.Service,
		Status:         out.Status,
		Version:        out.Version,
		ActiveSessions: out.ActiveSessions,
		APIConfigured:  out.APIConfigured,
	}
}

type clearHistoryResp struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}
