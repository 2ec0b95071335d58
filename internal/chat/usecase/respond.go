package usecase

import (
	"context"
	"fmt"
	"strings"

	"morning-assistant/internal/chat"
	"morning-assistant/internal/model"
	"morning-assistant/internal/router"
	"morning-assistant/internal/session"
)

// Respond handles a single user turn end to end.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.RespondOutput{}, chat.ErrEmptyMessage
	}

	sess, existed := uc.sessions.GetOrCreate(input.SessionID, sc)
	uc.l.Infof(ctx, "Respond: user=%s session=%s new=%t message_length=%d", sc.UserID, sess.ID(), !existed, len(message))

	// Snapshot the prior turns before recording this one, so prompts see
	// the conversation up to but not including the current message.
	history := sess.History(uc.historyLimit)
	sess.AppendTurn(model.RoleUser, message)

	// The trigger phrase always (re)starts onboarding, even mid-flow.
	if strings.Contains(strings.ToLower(message), routineTrigger) {
		return uc.startRoutine(ctx, sess)
	}

	// An active onboarding draft consumes the message before any routing:
	// answers like "news, coffee" would otherwise look like search requests.
	if draft := sess.Draft(); draft != nil {
		return uc.advanceRoutine(ctx, sess, draft, message)
	}

	decision, err := uc.router.Classify(ctx, message)
	if err != nil {
		// The keyword router never fails today; guard the interface anyway.
		uc.l.Errorf(ctx, "Respond: classification failed, treating as conversation: %v", err)
		decision = router.Decision{Intent: router.IntentConversation}
	}

	switch decision.Intent {
	case router.IntentVideoSearch:
		return uc.respondVideoSearch(ctx, sess, history, message, decision.Query)
	case router.IntentWebSearch:
		return uc.respondWebSearch(ctx, sess, history, message, decision.Query)
	default:
		return uc.respondConversation(ctx, sess, history, message)
	}
}

// respondConversation answers directly from the model, with the session
// profile and recent transcript as context.
func (uc *implUseCase) respondConversation(ctx context.Context, sess *session.Session, history []model.ConversationTurn, message string) (chat.RespondOutput, error) {
	var contextBuilder strings.Builder

	if profile := sess.Profile(); profile != nil {
		contextBuilder.WriteString("User's preferences:\n")
		contextBuilder.WriteString(fmt.Sprintf("- Current habits: %s\n", strings.Join(profile.Habits, ", ")))
		contextBuilder.WriteString(fmt.Sprintf("- Energizing activities: %s\n", strings.Join(profile.Activities, ", ")))
		contextBuilder.WriteString(fmt.Sprintf("- Goals: %s\n", strings.Join(profile.Goals, ", ")))
		contextBuilder.WriteString("\n")
	}

	if len(history) > 0 {
		contextBuilder.WriteString("Previous conversation:\n")
		contextBuilder.WriteString(formatHistory(history))
		contextBuilder.WriteString("\n")
	}

	prompt := fmt.Sprintf("%sUser: %s\nAssistant:", contextBuilder.String(), message)

	reply, err := uc.generate(ctx, prompt, conversationTemperature, defaultMaxTokens)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentConversation, err), nil
	}

	return uc.reply(sess, chat.RespondOutput{
		Reply:  reply,
		Intent: router.IntentConversation,
	}), nil
}
