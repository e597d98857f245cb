package handler

import (
	"net/http"

	"github.com/korea-connect/app-platform/internal/llm"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	llmClient llm.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(client llm.Client) *HealthHandler {
	return &HealthHandler{
		llmClient: client,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
//
// The assistant degrades to fixed fallback answers when its backend is
// missing, so readiness reports the provider instead of failing on it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"assistant": h.llmClient.Name(),
	})
}
