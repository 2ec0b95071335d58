package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"morning-assistant/internal/chat"
	"morning-assistant/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Validation
// failures are the caller's fault; everything else is reported as internal.
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, chat.ErrEmptyMessage) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}
