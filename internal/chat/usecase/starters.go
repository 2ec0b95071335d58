package usecase

import "morning-assistant/internal/chat"

var defaultStarters = []chat.Starter{
	{
		Label:  "Morning routine ideation",
		Prompt: "Can you help me create a personalized morning routine that would help increase my productivity throughout the day? Start by asking me about my current habits and what activities energize me in the morning.",
	},
	{
		Label:  "Search YouTube",
		Prompt: "Find me a motivational morning routine video on YouTube.",
	},
	{
		Label:  "Search Web",
		Prompt: "Find me some morning routine tips and articles.",
	},
}

// Starters returns the suggested conversation openers.
func (uc *implUseCase) Starters() []chat.Starter {
	out := make([]chat.Starter, len(defaultStarters))
	copy(out, defaultStarters)
	return out
}
