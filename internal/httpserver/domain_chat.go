package httpserver

import (
	"context"

	chatHTTP "morning-assistant/internal/chat/delivery/http"
)

// registerDomainRoutes wires the chat domain onto the engine.
//
// Pattern to follow when adding a new domain:
//  1. Construct the use case and its clients in cmd/api/main.go
//  2. Construct the delivery handler there too
//  3. Inject the handler through httpserver.Config
//  4. Register its routes here under /api/v1
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.middleware)
		srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")
	} else {
		srv.l.Infof(ctx, "Chat handler not configured, skipping chat routes")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.middleware.WebhookSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.testHandler != nil {
		srv.gin.POST("/test/classify", srv.testHandler.HandleClassify)
		srv.gin.GET("/test/health", srv.testHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Debug routes registered under /test")
	}

	return nil
}
