package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/handler"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/llm"
	"github.com/korea-connect/app-platform/internal/view"
	"github.com/korea-connect/app-platform/pkg/logger"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f fakeLLM) Complete(context.Context, *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply, Model: "fake"}, nil
}

func (f fakeLLM) Name() string     { return "fake" }
func (f fakeLLM) Models() []string { return []string{"fake"} }

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestConvertEndpoint(t *testing.T) {
	h := handler.NewWalletHandler()

	rec := postJSON(t, h.Convert, map[string]string{
		"amount": "10000", "from": "KRW", "to": "VND",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "186,379", body["formatted"])
	require.Equal(t, "186379", body["result"])

	rec = postJSON(t, h.Convert, map[string]string{
		"amount": "abc", "from": "KRW", "to": "VND",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0", decode(t, rec)["result"])

	rec = postJSON(t, h.Convert, map[string]string{
		"amount": "100", "from": "KRW", "to": "EUR",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatesEndpoint(t *testing.T) {
	h := handler.NewWalletHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Rates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "USD", body["base"])
	rates := body["rates"].(map[string]any)
	require.Equal(t, "1365.5", rates["KRW"])
	require.Len(t, body["series"], 7)
}

func TestLinksEndpoint(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/links/{category}", handler.NewLinksHandler(directory.Default()).List)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/links/community?locale=vi", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "vi", body["locale"])
	require.NotEmpty(t, body["links"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/links/banking", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentEndpoint(t *testing.T) {
	table := i18n.DefaultTable()
	r := chi.NewRouter()
	h := handler.NewContentHandler(table)
	r.Get("/api/v1/content/{key}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/greeting?locale=ko", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, table.Lookup(i18n.KeyGreeting, i18n.LocaleKorean), body["text"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/content/nonexistent", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStateEndpointsFailClosed(t *testing.T) {
	table := i18n.DefaultTable()
	registry := view.Registry{Dashboard: view.NewDashboardRenderer(table)}
	c := view.NewController(registry, logger.NewNop())
	h := handler.NewStateHandler(c, logger.NewNop())

	rec := postJSON(t, h.SetView, map[string]string{"view": "profile"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "dashboard", decode(t, rec)["view"])

	rec = postJSON(t, h.SetLocale, map[string]string{"locale": "ko"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ko", decode(t, rec)["locale"])

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	get := httptest.NewRecorder()
	h.Get(get, req)
	body := decode(t, get)
	require.Equal(t, "dashboard", body["view"])
	require.Equal(t, "ko", body["locale"])
}

func TestActiveViewEndpoint(t *testing.T) {
	table := i18n.DefaultTable()
	registry := view.Registry{Dashboard: view.NewDashboardRenderer(table)}
	c := view.NewController(registry, logger.NewNop())
	h := handler.NewStateHandler(c, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Active(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "dashboard", body["view"])
	payload := body["payload"].(map[string]any)
	require.Equal(t, table.Lookup(i18n.KeyGreeting, i18n.LocaleEnglish), payload["greeting"])
}

func TestAssistantChatEndpoint(t *testing.T) {
	gw := assistant.New(fakeLLM{reply: "Hello!"}, "fake", logger.NewNop())
	h := handler.NewAssistantHandler(gw, logger.NewNop())

	rec := postJSON(t, h.Chat, map[string]string{"message": "hi", "locale": "en"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Hello!", decode(t, rec)["reply"])

	rec = postJSON(t, h.Chat, map[string]string{"message": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Chat, map[string]string{"message": "hi", "domain": "finance"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistantChatFallsBack(t *testing.T) {
	gw := assistant.New(llm.Unavailable{}, "", logger.NewNop())
	h := handler.NewAssistantHandler(gw, logger.NewNop())

	rec := postJSON(t, h.Chat, map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, assistant.FallbackChat, decode(t, rec)["reply"])
}

func TestLocateEndpointRejectsBadCoordinates(t *testing.T) {
	gw := assistant.New(fakeLLM{reply: "Jung-gu, Seoul"}, "fake", logger.NewNop())
	h := handler.NewAssistantHandler(gw, logger.NewNop())

	rec := postJSON(t, h.Locate, map[string]any{"latitude": 37.56, "longitude": 126.97})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "Jung-gu, Seoul", body["address"])
	require.Equal(t, true, body["found"])

	rec = postJSON(t, h.Locate, map[string]any{"latitude": 137.0, "longitude": 0.0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
