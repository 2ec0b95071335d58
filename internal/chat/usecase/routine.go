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

// startRoutine arms the onboarding flow and asks the first question.
// The draft is only stored once the question went out, so a failed start
// can simply be retried.
func (uc *implUseCase) startRoutine(ctx context.Context, sess *session.Session) (chat.RespondOutput, error) {
	uc.l.Infof(ctx, "Respond: routine onboarding started session=%s", sess.ID())

	reply, err := uc.generate(ctx, askHabitsPrompt, routineTemperature, defaultMaxTokens)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentConversation, err), nil
	}

	sess.SetDraft(&session.RoutineDraft{Stage: session.StageHabits})
	return uc.reply(sess, chat.RespondOutput{
		Reply:  reply,
		Intent: router.IntentConversation,
	}), nil
}

// advanceRoutine consumes one onboarding answer and moves the draft to the
// next stage. Answers are kept even when the follow-up question fails, so
// an apology turn never loses what the user already provided.
func (uc *implUseCase) advanceRoutine(ctx context.Context, sess *session.Session, draft *session.RoutineDraft, message string) (chat.RespondOutput, error) {
	answers := splitAnswers(message)
	uc.l.Infof(ctx, "Respond: routine stage=%s session=%s answers=%d", draft.Stage, sess.ID(), len(answers))

	switch draft.Stage {
	case session.StageHabits:
		draft.Habits = answers
		draft.Stage = session.StageActivities
		sess.SetDraft(draft)

		prompt := fmt.Sprintf("User's current habits: %s\n\nAsk the user what morning activities energize them, in one short, friendly question.",
			strings.Join(draft.Habits, ", "))
		return uc.askRoutineQuestion(ctx, sess, prompt)

	case session.StageActivities:
		draft.Activities = answers
		draft.Stage = session.StageGoals
		sess.SetDraft(draft)

		prompt := fmt.Sprintf("User's current habits: %s\nEnergizing activities: %s\n\nAsk the user about their goals for the morning, in one short, friendly question.",
			strings.Join(draft.Habits, ", "), strings.Join(draft.Activities, ", "))
		return uc.askRoutineQuestion(ctx, sess, prompt)

	default: // session.StageGoals
		draft.Goals = answers
		sess.SetDraft(draft)

		profile := &model.Profile{
			Habits:     draft.Habits,
			Activities: draft.Activities,
			Goals:      draft.Goals,
		}

		routine, err := uc.generate(ctx, buildRoutinePrompt(profile), routineTemperature, routineMaxTokens)
		if err != nil {
			// Draft stays at the goals stage; re-sending goals retries.
			return uc.apology(ctx, sess, router.IntentConversation, err), nil
		}

		sess.SetProfile(profile)
		sess.SetDraft(nil)
		uc.l.Infof(ctx, "Respond: routine generated session=%s habits=%d activities=%d goals=%d",
			sess.ID(), len(profile.Habits), len(profile.Activities), len(profile.Goals))

		return uc.reply(sess, chat.RespondOutput{
			Reply:  routine + "\n\n" + routineFollowUp,
			Intent: router.IntentConversation,
		}), nil
	}
}

// askRoutineQuestion generates the next onboarding question.
func (uc *implUseCase) askRoutineQuestion(ctx context.Context, sess *session.Session, prompt string) (chat.RespondOutput, error) {
	reply, err := uc.generate(ctx, prompt, routineTemperature, defaultMaxTokens)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentConversation, err), nil
	}
	return uc.reply(sess, chat.RespondOutput{
		Reply:  reply,
		Intent: router.IntentConversation,
	}), nil
}

// buildRoutinePrompt renders the collected profile into the generation
// request for the personalized routine.
func buildRoutinePrompt(p *model.Profile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User's current habits: %s\n", strings.Join(p.Habits, ", ")))
	sb.WriteString(fmt.Sprintf("Energizing activities: %s\n", strings.Join(p.Activities, ", ")))
	sb.WriteString(fmt.Sprintf("Goals: %s\n", strings.Join(p.Goals, ", ")))
	sb.WriteString("\nCreate a detailed, personalized morning routine that incorporates these elements. ")
	sb.WriteString("Include specific timing suggestions and explain the benefits of each activity.")
	return sb.String()
}

// splitAnswers turns a comma separated answer into trimmed items. A message
// with no separable parts is kept whole as a single answer.
func splitAnswers(message string) []string {
	parts := strings.Split(message, ",")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			answers = append(answers, p)
		}
	}
	if len(answers) == 0 {
		answers = append(answers, strings.TrimSpace(message))
	}
	return answers
}
