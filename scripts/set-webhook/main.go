// scripts/set-webhook/main.go
//
// Registers the Telegram webhook for a deployed instance. Use this when the
// public URL is known up front instead of relying on ngrok auto-detection.
//
// Usage:
//   go run scripts/set-webhook/main.go https://bot.example.com/webhook/telegram

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"morning-assistant/config"
	"morning-assistant/pkg/log"
	"morning-assistant/pkg/telegram"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/set-webhook/main.go <webhook-url>")
		fmt.Println("Example: go run scripts/set-webhook/main.go https://bot.example.com/webhook/telegram")
		os.Exit(1)
	}
	webhookURL := os.Args[1]

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	if cfg.Telegram.BotToken == "" {
		logger.Fatal(ctx, "TELEGRAM_BOT_TOKEN is not set")
	}

	bot := telegram.NewBot(cfg.Telegram.BotToken)
	if err := bot.SetWebhookWithSecret(webhookURL, cfg.Telegram.SecretToken); err != nil {
		logger.Fatalf(ctx, "Failed to register webhook: %v", err)
	}

	if cfg.Telegram.SecretToken != "" {
		logger.Infof(ctx, "Webhook registered at %s (secret token enabled)", webhookURL)
	} else {
		logger.Infof(ctx, "Webhook registered at %s", webhookURL)
	}
}
