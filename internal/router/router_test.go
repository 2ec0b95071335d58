package router

import (
	"context"
	"testing"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (noopLogger) Panic(ctx context.Context, arg ...any)                   {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestClassify(t *testing.T) {
	r := New(noopLogger{})

	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantQuery  string
	}{
		{
			name:       "weather question needs fresh data",
			message:    "What's today's weather in Lahore?",
			wantIntent: IntentWebSearch,
			wantQuery:  "what's today's weather in lahore",
		},
		{
			name:       "creative request stays conversational",
			message:    "Write a haiku about mornings.",
			wantIntent: IntentConversation,
		},
		{
			name:       "explicit youtube request",
			message:    "Find me a motivational morning routine video on YouTube.",
			wantIntent: IntentVideoSearch,
			wantQuery:  "motivational morning routine",
		},
		{
			name:       "explicit web search request",
			message:    "Find me some morning routine tips and articles.",
			wantIntent: IntentWebSearch,
			wantQuery:  "morning routine tips and articles",
		},
		{
			name:       "look up verb",
			message:    "look up the latest sunrise alarm clocks",
			wantIntent: IntentWebSearch,
			wantQuery:  "the latest sunrise alarm clocks",
		},
		{
			name:       "greeting",
			message:    "hello",
			wantIntent: IntentConversation,
		},
		{
			name:       "empty message",
			message:    "",
			wantIntent: IntentConversation,
		},
		{
			name:       "whitespace only",
			message:    "   ",
			wantIntent: IntentConversation,
		},
		{
			name:       "bare video cue falls back to default query",
			message:    "Search YouTube",
			wantIntent: IntentVideoSearch,
			wantQuery:  DefaultVideoQuery,
		},
		{
			name:       "bare search verb falls back to default query",
			message:    "search",
			wantIntent: IntentWebSearch,
			wantQuery:  DefaultWebQuery,
		},
		{
			name:       "case insensitive matching",
			message:    "SEARCH FOR sunrise alarm clocks",
			wantIntent: IntentWebSearch,
			wantQuery:  "sunrise alarm clocks",
		},
		{
			name:       "cues only match whole words",
			message:    "nowhere to be founded",
			wantIntent: IntentConversation,
		},
		{
			name:       "video cue wins over freshness cue",
			message:    "watch the weather forecast",
			wantIntent: IntentVideoSearch,
			wantQuery:  "the weather forecast",
		},
		{
			name:       "onboarding starter stays conversational",
			message:    "Can you help me create a personalized morning routine that would help increase my productivity throughout the day?",
			wantIntent: IntentConversation,
		},
		{
			name:       "punctuation does not hide cues",
			message:    "Any news?",
			wantIntent: IntentWebSearch,
			wantQuery:  "any news",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Classify(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %s, want %s", got.Intent, tt.wantIntent)
			}
			if tt.wantQuery != "" && got.Query != tt.wantQuery {
				t.Errorf("query = %q, want %q", got.Query, tt.wantQuery)
			}
			if tt.wantIntent == IntentConversation && got.Query != "" {
				t.Errorf("conversation decision should carry no query, got %q", got.Query)
			}
		})
	}
}

func TestClassify_NeverRoutesGreetingsToSearch(t *testing.T) {
	r := New(noopLogger{})

	conversational := []string{
		"Good morning!",
		"Thanks, that was helpful.",
		"I usually drink coffee and scroll my phone.",
		"Write a haiku about mornings.",
		"What should I do first after waking up?",
	}

	for _, msg := range conversational {
		got, err := r.Classify(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Intent != IntentConversation {
			t.Errorf("%q routed to %s, want %s", msg, got.Intent, IntentConversation)
		}
	}
}
