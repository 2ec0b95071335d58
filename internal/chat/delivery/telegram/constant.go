package telegram

// Built-in commands
const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdReset   = "/reset"
	cmdRoutine = "/routine"
)

// callbackStarterPrefix tags inline keyboard taps that pick a starter.
const callbackStarterPrefix = "starter:"

// User-facing messages
const (
	helpMessage = "*What I can do:*\n\n" +
		"• Chat about mornings and good habits\n" +
		"• /routine builds a personalized morning routine with you\n" +
		"• Ask me to _search_ for tips or articles when you need fresh information\n" +
		"• Ask for _videos_ and I'll find some on YouTube\n" +
		"• /reset starts the conversation over\n"

	resetMessage = "Done, we're starting fresh. Tell me about your mornings whenever you're ready!"

	fallbackErrorMessage = "Something went wrong while handling your message. Please try again."
)
