package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/llm"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// fakeClient records the last completion request and returns a canned
// response or error.
type fakeClient struct {
	lastReq *llm.CompletionRequest
	content string
	err     error
}

func (f *fakeClient) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content, Model: "fake-model"}, nil
}

func (f *fakeClient) Name() string     { return "fake" }
func (f *fakeClient) Models() []string { return []string{"fake-model"} }

func newGateway(client llm.Client) *assistant.Gateway {
	return assistant.New(client, "fake-model", logger.NewNop())
}

func TestChatReturnsBackendText(t *testing.T) {
	client := &fakeClient{content: "ARC renewal takes about 2 weeks."}
	g := newGateway(client)

	got := g.Chat(context.Background(), "How long does ARC renewal take?", i18n.LocaleEnglish, assistant.DomainGeneral)
	require.Equal(t, "ARC renewal takes about 2 weeks.", got)
	require.Equal(t, "How long does ARC renewal take?", client.lastReq.Messages[0].Content)
	require.Contains(t, client.lastReq.System, "K-Bot")
	require.Contains(t, client.lastReq.System, "(en)")
}

func TestChatVisaDomainConstrainsSources(t *testing.T) {
	client := &fakeClient{content: "ok"}
	g := newGateway(client)

	g.Chat(context.Background(), "D-2 extension?", i18n.LocaleVietnamese, assistant.DomainVisa)

	for _, domain := range assistant.VisaSourceDomains {
		require.Contains(t, client.lastReq.System, domain)
	}
	require.Contains(t, client.lastReq.System, "Respond in vi.")
	require.NotContains(t, client.lastReq.System, "K-Bot")
}

func TestChatFailureYieldsFallback(t *testing.T) {
	g := newGateway(&fakeClient{err: errors.New("connection refused")})

	got := g.Chat(context.Background(), "hello", i18n.LocaleEnglish, assistant.DomainGeneral)
	require.Equal(t, assistant.FallbackChat, got)
}

func TestChatEmptyResponseYieldsFallback(t *testing.T) {
	g := newGateway(&fakeClient{content: ""})

	got := g.Chat(context.Background(), "hello", i18n.LocaleEnglish, assistant.DomainGeneral)
	require.Equal(t, assistant.FallbackChat, got)
}

func TestTranslatePromptContract(t *testing.T) {
	client := &fakeClient{content: "안녕하세요"}
	g := newGateway(client)

	got := g.Translate(context.Background(), "hello", "한국어")
	require.Equal(t, "안녕하세요", got)
	require.Contains(t, client.lastReq.Messages[0].Content, "한국어")
	require.Contains(t, client.lastReq.Messages[0].Content, "Only provide the translation")
	require.Empty(t, client.lastReq.System)
}

func TestTranslateFailureYieldsFallback(t *testing.T) {
	g := newGateway(&fakeClient{err: errors.New("timeout")})
	require.Equal(t, assistant.FallbackTranslate, g.Translate(context.Background(), "hello", "한국어"))
}

func TestRoutePromptContract(t *testing.T) {
	client := &fakeClient{content: "## Route\n1. Line 2 to Hongdae"}
	g := newGateway(client)

	got := g.Route(context.Background(), "Gangnam Station", "Hongdae", i18n.LocaleKorean)
	require.Equal(t, "## Route\n1. Line 2 to Hongdae", got)

	prompt := client.lastReq.Messages[0].Content
	require.Contains(t, prompt, "Gangnam Station")
	require.Contains(t, prompt, "Hongdae")
	require.Contains(t, prompt, "subway line numbers")
	require.Contains(t, prompt, "Markdown")
	require.Contains(t, prompt, "ko language")
	require.Contains(t, client.lastReq.System, "transit expert")
}

func TestRouteFailureYieldsFallback(t *testing.T) {
	g := newGateway(&fakeClient{err: errors.New("boom")})
	require.Equal(t, assistant.FallbackRoute, g.Route(context.Background(), "a", "b", i18n.LocaleEnglish))
}

func TestReverseGeocode(t *testing.T) {
	client := &fakeClient{content: "  Jongno-gu, Seoul \n"}
	g := newGateway(client)

	addr, ok := g.ReverseGeocode(context.Background(), 37.5665, 126.978, i18n.LocaleEnglish)
	require.True(t, ok)
	require.Equal(t, "Jongno-gu, Seoul", addr)

	prompt := client.lastReq.Messages[0].Content
	require.Contains(t, prompt, "37.5665")
	require.Contains(t, prompt, "126.978")
	require.Contains(t, prompt, "ONLY")
}

func TestReverseGeocodeFailureIsAbsent(t *testing.T) {
	g := newGateway(&fakeClient{err: errors.New("unavailable")})
	_, ok := g.ReverseGeocode(context.Background(), 37.5665, 126.978, i18n.LocaleEnglish)
	require.False(t, ok)

	g = newGateway(&fakeClient{content: "   "})
	_, ok = g.ReverseGeocode(context.Background(), 37.5665, 126.978, i18n.LocaleEnglish)
	require.False(t, ok)
}
