package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"morning-assistant/internal/chat"
	"morning-assistant/internal/model"
	pkgLog "morning-assistant/pkg/log"
	pkgResponse "morning-assistant/pkg/response"
	pkgTelegram "morning-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in a
// background goroutine: Telegram expects an answer within a few seconds,
// while a search plus generation turn can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Inline keyboard taps arrive as callback queries.
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		go h.processCallback(context.Background(), cb)
		pkgResponse.OK(c, map[string]string{"status": "accepted"})
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, it is cancelled after
		// the response goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, fallbackErrorMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case cmdStart:
		return h.sendWelcome(msg.Chat.ID)
	case cmdHelp:
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	case cmdReset:
		h.uc.Reset(ctx, scopeFor(msg.From), sessionIDFor(msg.From))
		return h.bot.SendMessage(msg.Chat.ID, resetMessage)
	case cmdRoutine:
		// Equivalent to tapping the routine starter.
		return h.respond(ctx, msg.Chat.ID, msg.From, h.uc.Starters()[0].Prompt)
	}

	return h.respond(ctx, msg.Chat.ID, msg.From, msg.Text)
}

// processCallback handles an inline keyboard tap: acknowledge it, then run
// the picked starter prompt through the usecase like a typed message.
func (h *handler) processCallback(ctx context.Context, cb *pkgTelegram.CallbackQuery) {
	if err := h.bot.AnswerCallbackQuery(cb.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to answer callback query: %v", err)
	}

	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	raw, ok := strings.CutPrefix(cb.Data, callbackStarterPrefix)
	if !ok {
		h.l.Warnf(ctx, "telegram handler: unknown callback data %q", cb.Data)
		return
	}

	starters := h.uc.Starters()
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= len(starters) {
		h.l.Warnf(ctx, "telegram handler: starter index out of range: %q", cb.Data)
		return
	}

	if err := h.respond(ctx, cb.Message.Chat.ID, cb.From, starters[idx].Prompt); err != nil {
		h.l.Errorf(ctx, "telegram handler: starter callback failed: %v", err)
		_ = h.bot.SendMessage(cb.Message.Chat.ID, fallbackErrorMessage)
	}
}

// respond runs one turn through the usecase and sends the reply back.
func (h *handler) respond(ctx context.Context, chatID int64, from *pkgTelegram.User, text string) error {
	out, err := h.uc.Respond(ctx, scopeFor(from), chat.RespondInput{
		SessionID: sessionIDFor(from),
		Message:   text,
	})
	if err != nil {
		return fmt.Errorf("respond failed: %w", err)
	}

	return h.bot.SendMessage(chatID, out.Reply)
}

// sendWelcome greets the user and offers the starters as an inline keyboard.
func (h *handler) sendWelcome(chatID int64) error {
	starters := h.uc.Starters()
	rows := make([][]pkgTelegram.InlineKeyboardButton, 0, len(starters))
	for i, s := range starters {
		rows = append(rows, []pkgTelegram.InlineKeyboardButton{{
			Text:         s.Label,
			CallbackData: fmt.Sprintf("%s%d", callbackStarterPrefix, i),
		}})
	}

	return h.bot.SendMessageWithKeyboard(chatID, chat.WelcomeMessage, &pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	})
}

// scopeFor builds the request scope from the Telegram user context.
func scopeFor(from *pkgTelegram.User) model.Scope {
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", from.ID),
		Username: from.Username,
	}
}

// sessionIDFor keys the session by the Telegram user, so a chat keeps its
// transcript across webhook calls.
func sessionIDFor(from *pkgTelegram.User) string {
	return fmt.Sprintf("telegram_%d", from.ID)
}
