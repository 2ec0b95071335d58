package middleware

import (
	"morning-assistant/pkg/log"
)

type Middleware struct {
	l             log.Logger
	limiter       *rateLimiter
	webhookSecret string
}

// New builds the shared middleware set. requestsPerMin bounds per-client
// traffic on public routes; webhookSecret guards the Telegram webhook and
// may be empty when webhook security is disabled.
func New(l log.Logger, requestsPerMin int, webhookSecret string) Middleware {
	return Middleware{
		l:             l,
		limiter:       newRateLimiter(requestsPerMin),
		webhookSecret: webhookSecret,
	}
}
