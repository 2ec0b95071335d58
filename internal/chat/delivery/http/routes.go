package http

import (
	"github.com/gin-gonic/gin"

	"morning-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Message
// submission is rate limited per client; the read-only starters route is
// not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/starters", h.Starters)
		chat.DELETE("/sessions/:session_id", mw.RateLimit(), h.Reset)
	}
}
