package chat

// WelcomeMessage greets a user when a chat surface opens a new conversation.
const WelcomeMessage = "Hello! I'm your morning routine assistant powered by Gemini AI. I can help you create a morning routine, search for videos, and find helpful articles. How can I help you today?"
