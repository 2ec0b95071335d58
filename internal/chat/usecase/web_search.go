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

// respondWebSearch grounds the reply in fresh web results: run the search,
// compose an augmented prompt carrying every snippet verbatim, generate.
func (uc *implUseCase) respondWebSearch(ctx context.Context, sess *session.Session, history []model.ConversationTurn, message, query string) (chat.RespondOutput, error) {
	uc.l.Infof(ctx, "Respond: web search session=%s query=%q", sess.ID(), query)

	results, err := uc.search.Search(ctx, query)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentWebSearch, fmt.Errorf("web search failed: %w", err)), nil
	}

	if len(results) == 0 {
		uc.l.Infof(ctx, "Respond: no web results for %q", query)
		return uc.reply(sess, chat.RespondOutput{
			Reply:  noWebResultsReply,
			Intent: router.IntentWebSearch,
		}), nil
	}

	sources := make([]model.SearchResult, 0, len(results))
	var contextBuilder strings.Builder
	contextBuilder.WriteString("Web search results:\n\n")

	for i, r := range results {
		contextBuilder.WriteString(fmt.Sprintf("-- Result %d (Link: %s) --\n%s\n%s\n\n", i+1, r.URL, r.Title, r.Snippet))
		sources = append(sources, model.SearchResult{
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.URL,
		})
	}

	if len(history) > 0 {
		contextBuilder.WriteString("Previous conversation:\n")
		contextBuilder.WriteString(formatHistory(history))
		contextBuilder.WriteString("\n")
	}

	prompt := fmt.Sprintf(`%sTask: answer the user's message using the search results above.
- Mention the link of every result you draw on.
- If the results do not cover the question, say so instead of guessing.

User message: %q`, contextBuilder.String(), message)

	reply, err := uc.generate(ctx, prompt, searchTemperature, defaultMaxTokens)
	if err != nil {
		return uc.apology(ctx, sess, router.IntentWebSearch, err), nil
	}

	return uc.reply(sess, chat.RespondOutput{
		Reply:   reply,
		Intent:  router.IntentWebSearch,
		Sources: sources,
	}), nil
}
