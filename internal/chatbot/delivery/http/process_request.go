package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chatbot"
)

var errEmptyMessage = errors.New("message is empty")

// processChatReq binds and validates the chat request body. The message
// is trimmed; an absent, non-string, or whitespace-only message is a
// validation error and must not reach the use case. A missing sessionId
// falls back to the shared default id.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return req, errEmptyMessage
	}

	if req.SessionID == "" {
		req.SessionID = chatbot.DefaultSessionID
	}
	return req, nil
}

// processClearHistoryReq binds the clear-history body; an empty or
// missing body clears the default session.
func (h *handler) processClearHistoryReq(c *gin.Context) clearHistoryReq {
	var req clearHistoryReq
	_ = c.ShouldBindJSON(&req)

	if req.SessionID == "" {
		req.SessionID = chatbot.DefaultSessionID
	}
	return req
}
