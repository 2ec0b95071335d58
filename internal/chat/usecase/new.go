package usecase

import (
	"morning-assistant/internal/router"
	"morning-assistant/internal/session"
	"morning-assistant/pkg/duckduckgo"
	"morning-assistant/pkg/llmprovider"
	pkgLog "morning-assistant/pkg/log"
	"morning-assistant/pkg/youtube"
)

type implUseCase struct {
	l            pkgLog.Logger
	llm          *llmprovider.Manager
	search       duckduckgo.IDuckDuckGo
	videos       youtube.IYouTube
	router       router.Router
	sessions     *session.Store
	historyLimit int
}

// New creates a new chat UseCase instance.
// The videos client may be nil; video requests then fall back to web search.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	search duckduckgo.IDuckDuckGo,
	videos youtube.IYouTube,
	rt router.Router,
	sessions *session.Store,
	historyLimit int,
) *implUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		search:       search,
		videos:       videos,
		router:       rt,
		sessions:     sessions,
		historyLimit: historyLimit,
	}
}
