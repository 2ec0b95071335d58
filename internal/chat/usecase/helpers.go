package usecase

import (
	"context"
	"fmt"
	"strings"

	"morning-assistant/internal/chat"
	"morning-assistant/internal/model"
	"morning-assistant/internal/router"
	"morning-assistant/internal/session"
	"morning-assistant/pkg/llmprovider"
)

// generate runs one best-effort LLM call with the assistant persona.
func (uc *implUseCase) generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("empty response from LLM")
	}
	return reply, nil
}

// apology converts an upstream failure into the generic error turn that
// keeps the session alive. The cause is logged, never shown to the user.
func (uc *implUseCase) apology(ctx context.Context, sess *session.Session, intent router.Intent, err error) chat.RespondOutput {
	uc.l.Errorf(ctx, "Respond: session=%s intent=%s: %v", sess.ID(), intent, fmt.Errorf("%w: %v", chat.ErrUpstreamUnavailable, err))
	return uc.reply(sess, chat.RespondOutput{
		Reply:  apologyReply,
		Intent: intent,
	})
}

// reply records the assistant turn and stamps the session id on the output.
func (uc *implUseCase) reply(sess *session.Session, out chat.RespondOutput) chat.RespondOutput {
	sess.AppendTurn(model.RoleAssistant, out.Reply)
	out.SessionID = sess.ID()
	return out
}

// formatHistory renders recent turns as prompt context, truncating long
// turns to keep the composed prompt bounded.
func formatHistory(turns []model.ConversationTurn) string {
	var sb strings.Builder
	for _, t := range turns {
		speaker := "User"
		if t.Role == model.RoleAssistant {
			speaker = "Assistant"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", speaker, truncateText(t.Text, maxCharsPerHistoryTurn)))
	}
	return sb.String()
}

// truncateText safely truncates text to maxLen characters (Unicode-safe).
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "... [truncated]"
}
