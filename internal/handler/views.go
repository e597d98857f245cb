package handler

import (
	"encoding/json"
	"net/http"

	"github.com/korea-connect/app-platform/internal/view"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// StateHandler exposes the navigation state: active view and locale.
type StateHandler struct {
	controller *view.Controller
	logger     *logger.Logger
}

// NewStateHandler creates a new state handler.
func NewStateHandler(c *view.Controller, log *logger.Logger) *StateHandler {
	return &StateHandler{
		controller: c,
		logger:     log,
	}
}

type stateResponse struct {
	View   view.Selector `json:"view"`
	Locale string        `json:"locale"`
}

// Get handles GET /api/v1/state
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{
		View:   h.controller.View(),
		Locale: string(h.controller.Locale()),
	})
}

type setViewRequest struct {
	View string `json:"view"`
}

// SetView handles PUT /api/v1/state/view
//
// Unknown tags are not an error: navigation fails closed to the default
// view and the response reports where the client actually landed.
func (h *StateHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.controller.SetView(req.View)
	writeJSON(w, http.StatusOK, stateResponse{
		View:   h.controller.View(),
		Locale: string(h.controller.Locale()),
	})
}

type setLocaleRequest struct {
	Locale string `json:"locale"`
}

// SetLocale handles PUT /api/v1/state/locale
func (h *StateHandler) SetLocale(w http.ResponseWriter, r *http.Request) {
	var req setLocaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.controller.SetLocale(req.Locale)
	writeJSON(w, http.StatusOK, stateResponse{
		View:   h.controller.View(),
		Locale: string(h.controller.Locale()),
	})
}

type viewResponse struct {
	View    view.Selector `json:"view"`
	Locale  string        `json:"locale"`
	Payload any           `json:"payload"`
}

// Active handles GET /api/v1/views/active
//
// Returns the active view's payload resolved for the active locale.
func (h *StateHandler) Active(w http.ResponseWriter, r *http.Request) {
	locale := h.controller.Locale()
	renderer := h.controller.ActiveRenderer()

	writeJSON(w, http.StatusOK, viewResponse{
		View:    renderer.Tag(),
		Locale:  string(locale),
		Payload: renderer.Payload(r.Context(), locale),
	})
}
