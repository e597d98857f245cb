package handler

import (
	"encoding/json"
	"net/http"

	"github.com/korea-connect/app-platform/internal/middleware"
	"github.com/korea-connect/app-platform/internal/model"
	"github.com/korea-connect/app-platform/internal/view"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// VisaHandler exposes the visa consultation conversation.
type VisaHandler struct {
	renderer   *view.VisaChatRenderer
	controller *view.Controller
	logger     *logger.Logger
}

// NewVisaHandler creates a new visa conversation handler.
func NewVisaHandler(renderer *view.VisaChatRenderer, c *view.Controller, log *logger.Logger) *VisaHandler {
	return &VisaHandler{
		renderer:   renderer,
		controller: c,
		logger:     log,
	}
}

// Messages handles GET /api/v1/visa/messages
func (h *VisaHandler) Messages(w http.ResponseWriter, r *http.Request) {
	snapshot := h.renderer.Session(h.controller.Locale()).Snapshot()
	writeJSON(w, http.StatusOK, snapshot)
}

// Send handles POST /api/v1/visa/messages
//
// The user turn is appended immediately; the handler then waits for the
// assistant turn and returns both. A conversation torn down mid-flight
// closes the reply channel, in which case only the user turn is returned.
func (h *VisaHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	locale := h.controller.Locale()
	session := h.renderer.Session(locale)
	userMsg, done := session.Send(r.Context(), req.Message, locale)

	resp := map[string]interface{}{
		"user": userMsg,
	}
	select {
	case reply, ok := <-done:
		if ok {
			resp["assistant"] = reply
		}
	case <-r.Context().Done():
	}

	writeJSON(w, http.StatusOK, resp)
}

// OfficialNotice handles POST /api/v1/visa/official-notice
func (h *VisaHandler) OfficialNotice(w http.ResponseWriter, r *http.Request) {
	notice := h.renderer.InjectOfficialNotice(h.controller.Locale())
	writeJSON(w, http.StatusOK, notice)
}
