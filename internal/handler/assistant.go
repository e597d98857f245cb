package handler

import (
	"encoding/json"
	"net/http"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/middleware"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// AssistantHandler exposes the assistant gateway operations.
type AssistantHandler struct {
	gateway *assistant.Gateway
	logger  *logger.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(gw *assistant.Gateway, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		gateway: gw,
		logger:  log,
	}
}

type chatRequest struct {
	Message string `json:"message"`
	Locale  string `json:"locale"`
	Domain  string `json:"domain"`
}

// Chat handles POST /api/v1/assistant/chat
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	domain, ok := assistant.ParseDomain(req.Domain)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown assistant domain")
		return
	}

	reply := h.gateway.Chat(r.Context(), req.Message, i18n.ParseLocale(req.Locale), domain)
	writeJSON(w, http.StatusOK, map[string]string{
		"reply": reply,
	})
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Translate handles POST /api/v1/assistant/translate
func (h *AssistantHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateMessageContent(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	target := i18n.ParseLocale(req.Target)
	translated := h.gateway.Translate(r.Context(), req.Text, target.Label())
	writeJSON(w, http.StatusOK, map[string]string{
		"translated": translated,
		"target":     string(target),
	})
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Locale      string `json:"locale"`
}

// Route handles POST /api/v1/assistant/route
func (h *AssistantHandler) Route(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateMessageContent(req.Origin); err != nil {
		writeError(w, http.StatusBadRequest, "origin: "+err.Error())
		return
	}
	if err := middleware.ValidateMessageContent(req.Destination); err != nil {
		writeError(w, http.StatusBadRequest, "destination: "+err.Error())
		return
	}

	route := h.gateway.Route(r.Context(), req.Origin, req.Destination, i18n.ParseLocale(req.Locale))
	writeJSON(w, http.StatusOK, map[string]string{
		"route": route,
	})
}

type locateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Locale    string  `json:"locale"`
}

// Locate handles POST /api/v1/assistant/locate
func (h *AssistantHandler) Locate(w http.ResponseWriter, r *http.Request) {
	var req locateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	address, found := h.gateway.ReverseGeocode(r.Context(), req.Latitude, req.Longitude, i18n.ParseLocale(req.Locale))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"address": address,
		"found":   found,
	})
}
