package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/i18n"
)

// LinksHandler exposes the curated link directory.
type LinksHandler struct {
	links *directory.Directory
}

// NewLinksHandler creates a new links handler.
func NewLinksHandler(links *directory.Directory) *LinksHandler {
	return &LinksHandler{links: links}
}

// List handles GET /api/v1/links/{category}
//
// The locale query parameter selects the description language; unknown
// locales resolve to the default.
func (h *LinksHandler) List(w http.ResponseWriter, r *http.Request) {
	category, ok := directory.ParseCategory(chi.URLParam(r, "category"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown link category")
		return
	}

	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"locale":   locale,
		"links":    h.links.Links(category, locale),
	})
}
