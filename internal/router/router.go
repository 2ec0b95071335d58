package router

import (
	"context"
	"strings"
	"unicode"
)

// Classify determines how a message should be handled.
// Convention: Method accepts context.Context as first parameter
//
// The rules are deterministic keyword checks: video cues first, then explicit
// search verbs, then freshness cues (words implying the answer needs data
// newer than the model). Anything unmatched is plain conversation, so a
// message never reaches a search backend unless a cue fired.
func (r *KeywordRouter) Classify(ctx context.Context, message string) (Decision, error) {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return Decision{Intent: IntentConversation}, nil
	}

	if cue := matchCue(normalized, videoCues); cue != "" {
		query := deriveQuery(normalized, videoStripPhrases, DefaultVideoQuery)
		r.l.Infof(ctx, "%s: intent=%s cue=%q query=%q", LogPrefixClassify, IntentVideoSearch, cue, query)
		return Decision{Intent: IntentVideoSearch, Query: query, Cue: cue}, nil
	}

	if cue := matchCue(normalized, searchVerbs); cue != "" {
		query := deriveQuery(normalized, nil, DefaultWebQuery)
		r.l.Infof(ctx, "%s: intent=%s cue=%q query=%q", LogPrefixClassify, IntentWebSearch, cue, query)
		return Decision{Intent: IntentWebSearch, Query: query, Cue: cue}, nil
	}

	if cue := matchCue(normalized, freshnessCues); cue != "" {
		// No trigger verb to strip, the whole message is the query
		query := strings.Trim(normalized, " ?!.")
		r.l.Infof(ctx, "%s: intent=%s cue=%q query=%q", LogPrefixClassify, IntentWebSearch, cue, query)
		return Decision{Intent: IntentWebSearch, Query: query, Cue: cue}, nil
	}

	r.l.Debugf(ctx, "%s: intent=%s", LogPrefixClassify, IntentConversation)
	return Decision{Intent: IntentConversation}, nil
}

// matchCue returns the first cue present in the message as a whole word or
// whole phrase, or "" when none match.
func matchCue(message string, cues []string) string {
	padded := " " + strings.Join(tokenize(message), " ") + " "
	for _, cue := range cues {
		if strings.Contains(padded, " "+cue+" ") {
			return cue
		}
	}
	return ""
}

// tokenize splits a message into lowercase word tokens, dropping punctuation
// so "weather?" and "What's" still match their cue words.
func tokenize(message string) []string {
	return strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// deriveQuery strips polite openers, search verbs and any extra phrases from
// the message and returns what remains as the search query. When too little
// is left to search for, the fallback query is used instead.
func deriveQuery(message string, extraStrip []string, fallback string) string {
	query := strings.Trim(message, " ?!.")

	query = stripPhrases(query, fillerPhrases)
	query = stripPhrases(query, searchVerbs)
	query = stripPhrases(query, extraStrip)

	tokens := strings.Fields(query)
	if len(tokens) < minQueryTokens {
		return fallback
	}
	return strings.Join(tokens, " ")
}

// stripPhrases removes whole-word occurrences of each phrase.
func stripPhrases(message string, phrases []string) string {
	padded := " " + message + " "
	for _, phrase := range phrases {
		padded = strings.ReplaceAll(padded, " "+phrase+" ", " ")
	}
	return strings.TrimSpace(padded)
}
