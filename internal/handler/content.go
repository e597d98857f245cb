package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/korea-connect/app-platform/internal/i18n"
)

// ContentHandler exposes the localized UI string table.
type ContentHandler struct {
	table *i18n.Table
}

// NewContentHandler creates a new content handler.
func NewContentHandler(table *i18n.Table) *ContentHandler {
	return &ContentHandler{table: table}
}

// Get handles GET /api/v1/content/{key}
//
// Unknown keys are a 404; a key present but missing the requested locale
// falls back to English per the table contract.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !h.table.Has(key) {
		writeError(w, http.StatusNotFound, "unknown content key")
		return
	}

	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, map[string]string{
		"key":    key,
		"locale": string(locale),
		"text":   h.table.Lookup(key, locale),
	})
}

// List handles GET /api/v1/content
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	out := make(map[string]string)
	for _, key := range h.table.Keys() {
		out[key] = h.table.Lookup(key, locale)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locale":  string(locale),
		"strings": out,
	})
}
