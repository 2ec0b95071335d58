package usecase

import (
	"context"

	"morning-assistant/internal/model"
)

// Reset clears the transcript and routine state of a session.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope, sessionID string) bool {
	sess, ok := uc.sessions.Get(sessionID)
	if !ok {
		return false
	}

	sess.Reset()
	uc.l.Infof(ctx, "Reset: user=%s session=%s", sc.UserID, sessionID)
	return true
}
