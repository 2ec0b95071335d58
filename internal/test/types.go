package test

// ClassifyRequest represents a classification request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classification response
type ClassifyResponse struct {
	Success bool   `json:"success"`
	Intent  string `json:"intent,omitempty"`
	Query   string `json:"query,omitempty"`
	Cue     string `json:"cue,omitempty"`
	Text    string `json:"text"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
