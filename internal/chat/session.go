// Package chat maintains the ordered conversation log behind the visa
// chat view. A session lives only for its view instance and is never
// persisted.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/model"
	"github.com/korea-connect/app-platform/pkg/logger"
	"github.com/korea-connect/app-platform/pkg/metrics"
)

// Responder produces one conversational reply. It never fails: backend
// errors surface as fallback text. Satisfied by *assistant.Gateway.
type Responder interface {
	Chat(ctx context.Context, message string, locale i18n.Locale, domain assistant.Domain) string
}

// Session is one conversation log. Messages append in completion order,
// not send order: two in-flight requests may interleave their replies.
// There is no request/response pairing beyond that display order.
type Session struct {
	mu         sync.Mutex
	responder  Responder
	domain     assistant.Domain
	logger     *logger.Logger
	messages   []model.Message
	pending    int
	generation uint64
}

// NewSession creates a conversation session for one view instance.
func NewSession(responder Responder, domain assistant.Domain, log *logger.Logger) *Session {
	return &Session{
		responder: responder,
		domain:    domain,
		logger:    log,
	}
}

// Send appends the user turn synchronously and dispatches the assistant
// request. The returned channel delivers the assistant message once it has
// been appended; it is closed without a value if the session was torn down
// before the reply arrived (the late reply is discarded, not an error).
func (s *Session) Send(ctx context.Context, text string, locale i18n.Locale) (model.Message, <-chan model.Message) {
	s.mu.Lock()
	userMsg := s.append(model.RoleUser, text)
	s.pending++
	generation := s.generation
	s.mu.Unlock()

	done := make(chan model.Message, 1)
	go func() {
		reply := s.responder.Chat(ctx, text, locale, s.domain)
		s.complete(generation, reply, done)
	}()

	return userMsg, done
}

func (s *Session) complete(generation uint64, reply string, done chan<- model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		// The view instance that issued this request is gone.
		metrics.StaleCompletionsTotal.Inc()
		s.logger.Debug("discarding stale assistant completion",
			zap.Uint64("generation", generation))
		close(done)
		return
	}

	s.pending--
	msg := s.append(model.RoleAssistant, reply)
	done <- msg
	close(done)
}

// AppendAssistant injects an assistant-role entry directly, bypassing the
// backend. Used for the welcome message and the official agency notice.
func (s *Session) AppendAssistant(text string) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(model.RoleAssistant, text)
}

// append assumes s.mu is held. UUIDv7 ids keep creation order sortable.
func (s *Session) append(role model.Role, text string) model.Message {
	msg := model.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	metrics.MessagesTotal.WithLabelValues(string(role)).Inc()
	return msg
}

// Snapshot returns the current log and the number of in-flight requests.
func (s *Session) Snapshot() model.ConversationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]model.Message, len(s.messages))
	copy(messages, s.messages)
	return model.ConversationSnapshot{
		Messages: messages,
		Pending:  s.pending,
	}
}

// Close tears the session down. In-flight completions that arrive after
// Close are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.pending = 0
	s.messages = nil
}
