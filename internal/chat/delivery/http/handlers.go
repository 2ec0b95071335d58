package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"morning-assistant/internal/model"
	"morning-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message to web search, video search, or plain conversation and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message payload; session_id is optional and a new session is created when omitted"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Respond(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Starters godoc
// @Summary     List conversation starters
// @Description Returns the canned prompts shown to new users.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} startersResp
// @Router      /api/v1/chat/starters [GET]
func (h *handler) Starters(c *gin.Context) {
	response.OK(c, h.newStartersResp(h.uc.Starters()))
}

// Reset godoc
// @Summary     Reset a chat session
// @Description Clears the transcript, routine draft, and stored preferences of a session. Resetting an unknown session is a no-op.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} resetResp
// @Router      /api/v1/chat/sessions/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	found := h.uc.Reset(ctx, h.scope(c), sessionID)

	response.OK(c, resetResp{SessionID: sessionID, Reset: found})
}

// scope identifies anonymous API callers by client address.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: fmt.Sprintf("api_%s", c.ClientIP())}
}
