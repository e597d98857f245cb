package view

import (
	"context"
	"sync"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/chat"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/model"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// VisaChatPayload is the visa consultation view content.
type VisaChatPayload struct {
	Placeholder        string                    `json:"placeholder"`
	OfficialNoticeText string                    `json:"official_notice_text"`
	Conversation       model.ConversationSnapshot `json:"conversation"`
}

// VisaChatRenderer renders the visa consultation screen. Its session is
// created on first use and dropped when navigation leaves the view, so a
// revisit always starts a fresh conversation.
type VisaChatRenderer struct {
	mu        sync.Mutex
	responder chat.Responder
	table     *i18n.Table
	logger    *logger.Logger
	session   *chat.Session
}

// NewVisaChatRenderer creates the visa renderer.
func NewVisaChatRenderer(responder chat.Responder, table *i18n.Table, log *logger.Logger) *VisaChatRenderer {
	return &VisaChatRenderer{
		responder: responder,
		table:     table,
		logger:    log,
	}
}

func (r *VisaChatRenderer) Tag() Selector { return ViewVisa }

// Session returns the live conversation, creating it with a localized
// welcome message on first access.
func (r *VisaChatRenderer) Session(locale i18n.Locale) *chat.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		r.session = chat.NewSession(r.responder, assistant.DomainVisa, r.logger)
		r.session.AppendAssistant(r.table.Lookup(i18n.KeyVisaWelcome, locale))
	}
	return r.session
}

// InjectOfficialNotice appends the canned official immigration response
// to the conversation.
func (r *VisaChatRenderer) InjectOfficialNotice(locale i18n.Locale) model.Message {
	return r.Session(locale).AppendAssistant(r.table.Lookup(i18n.KeyOfficialNoticeMsg, locale))
}

func (r *VisaChatRenderer) Payload(_ context.Context, locale i18n.Locale) any {
	return VisaChatPayload{
		Placeholder:        r.table.Lookup(i18n.KeyAskAnything, locale),
		OfficialNoticeText: r.table.Lookup(i18n.KeyOfficialNoticeBtn, locale),
		Conversation:       r.Session(locale).Snapshot(),
	}
}

// Teardown closes and discards the conversation.
func (r *VisaChatRenderer) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session != nil {
		r.session.Close()
		r.session = nil
	}
}
