package usecase

// System instruction sent with every generation request.
const SystemInstruction = `You are a morning routine assistant. You help people design energizing morning routines, build consistent habits, and find useful resources for better mornings. Be warm, practical and concise. When web search context is provided, ground your answer in it and mention the source links you used.`

// User-facing replies
const (
	apologyReply      = "I apologize, but I'm having trouble responding right now. Please try again in a moment."
	noWebResultsReply = "I couldn't find any relevant results. Would you like to try a different search query?"
	noVideosReply     = "I apologize, but I'm having trouble finding videos right now. Would you like to try a different type of search or continue with creating a morning routine?"
	routineFollowUp   = "Would you like me to adjust any part of this routine or explain anything in more detail?"

	videoListHeader         = "Here are some relevant videos:\n\n"
	fallbackVideoListHeader = "Here are some motivational morning routine videos:\n\n"
)

// Routine onboarding
const (
	// routineTrigger arms the onboarding flow when it appears anywhere in
	// a message, so the full starter prompt and the short form both work.
	routineTrigger = "help me create a personalized morning routine"

	askHabitsPrompt = "Start a conversation about creating a morning routine. Ask the user about their current morning habits in one short, friendly question."
)

// Generation settings. Each turn is a single best-effort attempt; provider
// fallback and retries are the manager's concern, configured separately.
const (
	conversationTemperature = 0.7
	searchTemperature       = 0.3 // factual answers stay close to the sources
	routineTemperature      = 0.7

	defaultMaxTokens = 1024
	routineMaxTokens = 2048
)

// Prompt context limits
const (
	DefaultHistoryLimit    = 10 // five exchanges
	maxCharsPerHistoryTurn = 500
)
