package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"morning-assistant/config"
	_ "morning-assistant/docs" // Swagger docs
	chatHTTP "morning-assistant/internal/chat/delivery/http"
	tgDelivery "morning-assistant/internal/chat/delivery/telegram"
	"morning-assistant/internal/chat/usecase"
	"morning-assistant/internal/httpserver"
	"morning-assistant/internal/middleware"
	"morning-assistant/internal/model"
	"morning-assistant/internal/router"
	"morning-assistant/internal/session"
	"morning-assistant/internal/test"
	"morning-assistant/pkg/duckduckgo"
	"morning-assistant/pkg/llmprovider"
	"morning-assistant/pkg/log"
	"morning-assistant/pkg/telegram"
	"morning-assistant/pkg/youtube"
)

// @title       Morning Assistant API
// @description AI-powered morning assistant with Telegram, Gemini LLM, DuckDuckGo search, and YouTube.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Environment & configuration
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Morning Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	retryAttempts := cfg.LLM.RetryAttempts
	if retryAttempts < 1 {
		// The manager treats attempts as a loop bound, zero would skip
		// generation entirely.
		retryAttempts = 1
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   retryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 4. Web search client
	searchClient, err := duckduckgo.New(duckduckgo.Config{
		BaseURL:    cfg.Search.BaseURL,
		MaxResults: cfg.Search.MaxResults,
		Timeout:    parseDuration(cfg.Search.Timeout, 10*time.Second),
		UserAgent:  cfg.Search.UserAgent,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize search client: ", err)
		return
	}

	// 5. YouTube client (optional)
	var videoClient youtube.IYouTube
	if cfg.YouTube.APIKey != "" {
		videoClient, err = youtube.New(ctx, youtube.Config{
			APIKey:     cfg.YouTube.APIKey,
			MaxResults: cfg.YouTube.MaxResults,
		})
		if err != nil {
			logger.Warnf(ctx, "YouTube not available (optional): %v", err)
			videoClient = nil
		} else {
			logger.Info(ctx, "✅ YouTube client initialized")
		}
	} else {
		logger.Warn(ctx, "YOUTUBE_API_KEY missing, video searches fall back to web search")
	}

	// 6. Chat domain
	sessionStore := session.NewStore(session.Config{
		TTL: parseDuration(cfg.Chat.SessionTTL, 30*time.Minute),
	})
	intentRouter := router.New(logger)
	chatUC := usecase.New(logger, llmManager, searchClient, videoClient, intentRouter, sessionStore, cfg.Chat.HistoryLimit)

	// 7. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			whErr := telegramBot.SetWebhookWithSecret(webhookURL, cfg.Telegram.SecretToken)
			if whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram surface disabled")
	}

	// 8. Debug surface, kept off production deployments
	var testHandler test.Handler
	if cfg.Environment.Name != string(model.EnvironmentProduction) {
		testHandler = test.New(logger, intentRouter)
	}

	// 9. HTTP server
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin, cfg.Telegram.SecretToken)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHTTP.New(logger, chatUC),
		TelegramHandler: telegramHandler,
		TestHandler:     testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses s, falling back when s is empty or malformed.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
