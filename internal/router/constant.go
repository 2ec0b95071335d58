package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Cue phrases, all matched on whole words in lowercased input.
// Video cues are checked before web cues so "watch the weather" routes to
// video search. Multi-word phrases must precede their single-word prefixes.
var (
	videoCues = []string{"youtube", "videos", "video", "watch"}

	searchVerbs = []string{"search for", "search up", "search", "find me", "find", "look for", "look up"}

	freshnessCues = []string{"this week", "today", "latest", "current", "news", "weather", "price", "now"}
)

// Phrases dropped when deriving a search query from the message.
var (
	fillerPhrases = []string{"can you", "could you", "would you", "please", "help me", "show me", "me some", "me a"}

	videoStripPhrases = []string{"on youtube", "a video of", "youtube", "videos", "video", "to watch", "watch"}
)

// Default queries used when stripping trigger phrases leaves nothing useful
const (
	DefaultWebQuery   = "morning routine tips"
	DefaultVideoQuery = "morning routine motivation"
)

// RouterFallbackIntent is used when classification cannot decide
const RouterFallbackIntent = IntentConversation

// minQueryTokens is the smallest stripped query considered usable
const minQueryTokens = 2
