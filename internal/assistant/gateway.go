// Package assistant is the boundary facade over the generative-language
// backend. Every operation converts backend failure into a fixed fallback
// value; callers never receive an error from this package.
package assistant

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/llm"
	"github.com/korea-connect/app-platform/pkg/logger"
	"github.com/korea-connect/app-platform/pkg/metrics"
)

// Fallback values returned when the backend is unreachable or replies
// empty. Part of the gateway contract: the UI renders these instead of
// crashing, and a failed call requires the user to resubmit manually.
const (
	FallbackChat      = "Sorry, I am having trouble connecting to the network right now. Please try again."
	FallbackTranslate = "Translation failed."
	FallbackRoute     = "Could not retrieve route information."
)

// Gateway wraps an LLM client with the four assistant operations.
// It is stateless per call; conversation memory lives with the caller.
type Gateway struct {
	client llm.Client
	model  string
	logger *logger.Logger
}

// New creates an assistant gateway backed by the given LLM client.
func New(client llm.Client, model string, log *logger.Logger) *Gateway {
	return &Gateway{
		client: client,
		model:  model,
		logger: log,
	}
}

// Chat performs one conversational turn. When domain is DomainVisa the
// system instruction constrains answers to the official source allow-list
// and the reply language to locale.
func (g *Gateway) Chat(ctx context.Context, message string, locale i18n.Locale, domain Domain) string {
	text, err := g.complete(ctx, "chat", systemInstruction(locale, domain), message)
	if err != nil || text == "" {
		return FallbackChat
	}
	return text
}

// Translate performs a one-shot translation into the language named by
// targetLabel (a display label such as "한국어", not a code).
func (g *Gateway) Translate(ctx context.Context, text, targetLabel string) string {
	out, err := g.complete(ctx, "translate", "", translatePrompt(text, targetLabel))
	if err != nil || out == "" {
		return FallbackTranslate
	}
	return out
}

// Route returns a markdown transit-route narrative between two places.
func (g *Gateway) Route(ctx context.Context, origin, destination string, locale i18n.Locale) string {
	out, err := g.complete(ctx, "route", transitSystemInstruction, routePrompt(origin, destination, locale))
	if err != nil || out == "" {
		return FallbackRoute
	}
	return out
}

// ReverseGeocode resolves coordinates to an address string. It returns
// ok=false on any failure; the caller falls back to displaying the raw
// coordinates.
func (g *Gateway) ReverseGeocode(ctx context.Context, lat, lon float64, locale i18n.Locale) (string, bool) {
	out, err := g.complete(ctx, "reverse_geocode", "", reverseGeocodePrompt(lat, lon, locale))
	if err != nil {
		return "", false
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", false
	}
	return out, true
}

func (g *Gateway) complete(ctx context.Context, operation, system, content string) (string, error) {
	start := time.Now()

	resp, err := g.client.Complete(ctx, &llm.CompletionRequest{
		Model:  g.model,
		System: system,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: content},
		},
	})

	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordAssistantCall(operation, "fallback", duration, 0, 0, "")
		g.logger.Warn("assistant call failed",
			zap.String("operation", operation),
			zap.String("provider", g.client.Name()),
			zap.Error(err),
		)
		return "", err
	}

	metrics.RecordAssistantCall(operation, "success", duration, resp.TokensIn, resp.TokensOut, resp.Model)
	g.logger.Debug("assistant call completed",
		zap.String("operation", operation),
		zap.String("model", resp.Model),
		zap.Int64("latency_ms", resp.LatencyMs),
	)
	return resp.Content, nil
}
