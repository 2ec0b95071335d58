package test

import (
	"morning-assistant/internal/router"
	pkgLog "morning-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify runs the intent classifier on a message without touching
// search, the LLM, or any session state
// @Summary Classify a message
// @Description Run the deterministic intent classifier and return the routing decision
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	decision, err := h.router.Classify(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleClassify: classification failed: %v", err)
		c.JSON(500, ClassifyResponse{
			Success: false,
			Error:   "Classification failed",
			Details: err.Error(),
			Text:    req.Text,
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s query=%q",
		req.Text, decision.Intent, decision.Query)

	c.JSON(200, ClassifyResponse{
		Success: true,
		Intent:  string(decision.Intent),
		Query:   decision.Query,
		Cue:     decision.Cue,
		Text:    req.Text,
	})
}

// HandleHealthCheck returns the health status of the debug endpoints
// @Summary Debug health check
// @Description Check if debug endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Debug endpoints are available",
	})
}
