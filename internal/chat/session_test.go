package chat_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/chat"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/model"
	"github.com/korea-connect/app-platform/pkg/logger"
)

// gateResponder blocks each reply until release is closed.
type gateResponder struct {
	reply   string
	release chan struct{}
}

func (g *gateResponder) Chat(context.Context, string, i18n.Locale, assistant.Domain) string {
	if g.release != nil {
		<-g.release
	}
	return g.reply
}

func TestSendAppendsUserThenAssistant(t *testing.T) {
	responder := &gateResponder{reply: "you need form 34", release: make(chan struct{})}
	session := chat.NewSession(responder, assistant.DomainVisa, logger.NewNop())

	userMsg, done := session.Send(context.Background(), "which form?", i18n.LocaleEnglish)
	require.Equal(t, model.RoleUser, userMsg.Role)
	require.Equal(t, "which form?", userMsg.Text)

	// User entry is visible immediately, reply still pending.
	snap := session.Snapshot()
	require.Len(t, snap.Messages, 1)
	require.Equal(t, 1, snap.Pending)

	close(responder.release)
	reply, ok := <-done
	require.True(t, ok)
	require.Equal(t, model.RoleAssistant, reply.Role)
	require.Equal(t, "you need form 34", reply.Text)

	snap = session.Snapshot()
	require.Len(t, snap.Messages, 2)
	require.Equal(t, 0, snap.Pending)
}

func TestFallbackReplyStillAppends(t *testing.T) {
	// The gateway never errors; a backend failure arrives here as the
	// fixed fallback text and must be appended like any other reply.
	responder := &gateResponder{reply: assistant.FallbackChat}
	session := chat.NewSession(responder, assistant.DomainGeneral, logger.NewNop())

	_, done := session.Send(context.Background(), "hello", i18n.LocaleEnglish)
	reply, ok := <-done
	require.True(t, ok)
	require.Equal(t, assistant.FallbackChat, reply.Text)

	snap := session.Snapshot()
	require.Len(t, snap.Messages, 2)
	require.Equal(t, 0, snap.Pending, "session must not be stuck loading")
}

func TestMessageIDsUniqueAndOrdered(t *testing.T) {
	responder := &gateResponder{reply: "ok"}
	session := chat.NewSession(responder, assistant.DomainGeneral, logger.NewNop())

	for i := 0; i < 5; i++ {
		_, done := session.Send(context.Background(), "ping", i18n.LocaleEnglish)
		<-done
	}

	snap := session.Snapshot()
	require.Len(t, snap.Messages, 10)

	seen := map[string]bool{}
	ids := make([]string, 0, len(snap.Messages))
	for _, msg := range snap.Messages {
		require.False(t, seen[msg.ID], "duplicate id %s", msg.ID)
		seen[msg.ID] = true
		ids = append(ids, msg.ID)
	}
	// UUIDv7 ids sort by creation time.
	require.True(t, sort.StringsAreSorted(ids))
}

func TestLateCompletionAfterCloseIsDiscarded(t *testing.T) {
	responder := &gateResponder{reply: "too late", release: make(chan struct{})}
	session := chat.NewSession(responder, assistant.DomainGeneral, logger.NewNop())

	_, done := session.Send(context.Background(), "hello", i18n.LocaleEnglish)
	session.Close()
	close(responder.release)

	_, ok := <-done
	require.False(t, ok, "late reply must be dropped, not delivered")
	require.Empty(t, session.Snapshot().Messages)
}

func TestAppendAssistantInjectsNotice(t *testing.T) {
	session := chat.NewSession(&gateResponder{reply: "ok"}, assistant.DomainVisa, logger.NewNop())

	table := i18n.DefaultTable()
	notice := session.AppendAssistant(table.Lookup(i18n.KeyOfficialNoticeMsg, i18n.LocaleKorean))

	snap := session.Snapshot()
	require.Len(t, snap.Messages, 1)
	require.Equal(t, model.RoleAssistant, notice.Role)
	require.Contains(t, notice.Text, "[공지]")
}

func TestInterleavedRepliesAppendInCompletionOrder(t *testing.T) {
	first := make(chan struct{})
	second := make(chan struct{})
	responder := &orderedResponder{gates: map[string]chan struct{}{
		"first":  first,
		"second": second,
	}}
	session := chat.NewSession(responder, assistant.DomainGeneral, logger.NewNop())

	_, doneFirst := session.Send(context.Background(), "first", i18n.LocaleEnglish)
	_, doneSecond := session.Send(context.Background(), "second", i18n.LocaleEnglish)

	// Release the second request before the first: its reply lands first.
	close(second)
	replySecond := <-doneSecond
	close(first)
	replyFirst := <-doneFirst

	snap := session.Snapshot()
	require.Len(t, snap.Messages, 4)
	require.Equal(t, replySecond.ID, snap.Messages[2].ID)
	require.Equal(t, replyFirst.ID, snap.Messages[3].ID)
	require.True(t, replySecond.CreatedAt.Before(replyFirst.CreatedAt) ||
		replySecond.CreatedAt.Equal(replyFirst.CreatedAt))
}

type orderedResponder struct {
	gates map[string]chan struct{}
}

func (o *orderedResponder) Chat(_ context.Context, message string, _ i18n.Locale, _ assistant.Domain) string {
	if gate, ok := o.gates[message]; ok {
		<-gate
	}
	time.Sleep(time.Millisecond)
	return "reply to " + message
}
