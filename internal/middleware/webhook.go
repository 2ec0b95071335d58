package middleware

import (
	"github.com/gin-gonic/gin"

	"morning-assistant/pkg/response"
)

// secretTokenHeader is set by Telegram on every webhook delivery when a
// secret token was registered with setWebhook.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret rejects webhook deliveries that do not carry the secret
// token registered with Telegram. A blank configured secret disables the
// check.
func (m Middleware) WebhookSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.webhookSecret == "" {
			c.Next()
			return
		}

		if c.GetHeader(secretTokenHeader) != m.webhookSecret {
			m.l.Warnf(c.Request.Context(), "WebhookSecret: token mismatch from %s", extractIP(c.Request))
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
