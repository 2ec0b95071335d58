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

// respondVideoSearch presents video results directly as a formatted list
// rather than feeding them through the model. A query with no hits is
// retried once with the default topical query.
func (uc *implUseCase) respondVideoSearch(ctx context.Context, sess *session.Session, history []model.ConversationTurn, message, query string) (chat.RespondOutput, error) {
	if uc.videos == nil {
		uc.l.Warnf(ctx, "Respond: video search requested but no video client configured, falling back to web search")
		return uc.respondWebSearch(ctx, sess, history, message, query)
	}

	uc.l.Infof(ctx, "Respond: video search session=%s query=%q", sess.ID(), query)

	videos, err := uc.videos.SearchVideos(ctx, query)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentVideoSearch, fmt.Errorf("video search failed: %w", err)), nil
	}

	header := videoListHeader
	if len(videos) == 0 && query != router.DefaultVideoQuery {
		uc.l.Infof(ctx, "Respond: no videos for %q, retrying with %q", query, router.DefaultVideoQuery)
		videos, err = uc.videos.SearchVideos(ctx, router.DefaultVideoQuery)
		if err != nil {
			return uc.apology(ctx, sess, router.IntentVideoSearch, fmt.Errorf("video search failed: %w", err)), nil
		}
		header = fallbackVideoListHeader
	}

	if len(videos) == 0 {
		return uc.reply(sess, chat.RespondOutput{
			Reply:  noVideosReply,
			Intent: router.IntentVideoSearch,
		}), nil
	}

	results := make([]model.VideoResult, 0, len(videos))
	for _, v := range videos {
		results = append(results, model.VideoResult{
			Title:     v.Title,
			URL:       v.URL,
			Channel:   v.Channel,
			Duration:  v.Duration,
			Published: v.Published,
		})
	}

	return uc.reply(sess, chat.RespondOutput{
		Reply:  formatVideoList(header, results),
		Intent: router.IntentVideoSearch,
		Videos: results,
	}), nil
}

// formatVideoList renders the emoji list shown on the chat surface.
func formatVideoList(header string, videos []model.VideoResult) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, v := range videos {
		sb.WriteString(fmt.Sprintf("📺 %s\n", v.Title))
		sb.WriteString(fmt.Sprintf("🔗 %s\n", v.URL))
		if v.Duration != "" {
			sb.WriteString(fmt.Sprintf("⏱️ Duration: %s\n", v.Duration))
		}
		sb.WriteString(fmt.Sprintf("👤 Channel: %s\n\n", v.Channel))
	}
	return strings.TrimRight(sb.String(), "\n")
}
