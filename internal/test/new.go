package test

import (
	"morning-assistant/internal/router"
	pkgLog "morning-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the debug handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new debug handler
func New(l pkgLog.Logger, rt router.Router) Handler {
	return &handler{
		l:      l,
		router: rt,
	}
}
