package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Forwards the visitor's message to the model and returns the reply.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Empty or missing message"
// @Failure     500 {object} response.Resp "Missing credential or model failure"
// @Router      /api/chatbot/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		// No session is created for an invalid message.
		response.BadRequest(c, MsgInvalidMessage)
		return
	}

	if !h.uc.Configured() {
		response.InternalError(c, MsgAPIKeyMissing)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.InternalError(c, MsgModelFailure)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Status godoc
// @Summary     Service status
// @Description Reports service identity, active session count, and credential state.
// @Tags        Chatbot
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/chatbot/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

// ClearHistory godoc
// @Summary     Clear session history
// @Description Removes the session's conversation history entirely.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body clearHistoryReq false "Optional session id"
// @Success     200 {object} clearHistoryResp
// @Router      /api/chatbot/clear-history [POST]
func (h *handler) ClearHistory(c *gin.Context) {
	req := h.processClearHistoryReq(c)

	found := h.uc.ClearHistory(c.Request.Context(), req.SessionID)

	msg := MsgHistoryCleared
	if !found {
		msg = MsgHistoryNotFound
	}

	response.OK(c, clearHistoryResp{
		Success:   found,
		Message:   msg,
		SessionID: req.SessionID,
	})
}
