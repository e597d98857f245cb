package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/platform"
	"github.com/korea-connect/app-platform/internal/view"
	"github.com/korea-connect/app-platform/pkg/logger"
)

type stubFinder struct {
	address string
	found   bool
	route   string
}

func (s stubFinder) Route(context.Context, string, string, i18n.Locale) string {
	return s.route
}

func (s stubFinder) ReverseGeocode(context.Context, float64, float64, i18n.Locale) (string, bool) {
	return s.address, s.found
}

type stubTranslator struct {
	reply string
}

func (s stubTranslator) Translate(context.Context, string, string) string {
	return s.reply
}

type stubResponder struct {
	reply string
}

func (s stubResponder) Chat(context.Context, string, i18n.Locale, assistant.Domain) string {
	return s.reply
}

func newTestRegistry(log *logger.Logger) (view.Registry, *view.VisaChatRenderer) {
	table := i18n.DefaultTable()
	links := directory.Default()
	voice := platform.NewVoiceInput(nil, func(string) {})

	visa := view.NewVisaChatRenderer(stubResponder{reply: "ok"}, table, log)

	return view.Registry{
		Dashboard:  view.NewDashboardRenderer(table),
		Wallet:     view.NewWalletRenderer(),
		Visa:       visa,
		Transport:  view.NewTransportRenderer(stubFinder{}, platform.NoLocator{}, table),
		Translator: view.NewTranslatorRenderer(stubTranslator{reply: "ok"}, voice, platform.NoClipboard{}),
		Community:  view.NewLinkMenuRenderer(view.ViewCommunity, i18n.KeyServiceCommunity, directory.CategoryCommunity, table, links),
		Medical:    view.NewLinkMenuRenderer(view.ViewMedical, i18n.KeyServiceMedical, directory.CategoryMedical, table, links),
		Shopping:   view.NewLinkMenuRenderer(view.ViewShopping, i18n.KeyServiceShopping, directory.CategoryShopping, table, links),
		Admin:      view.NewLinkMenuRenderer(view.ViewAdmin, i18n.KeyServiceAdmin, directory.CategoryAdmin, table, links),
	}, visa
}

func TestControllerStartsOnDefaults(t *testing.T) {
	registry, _ := newTestRegistry(logger.NewNop())
	c := view.NewController(registry, logger.NewNop())

	require.Equal(t, view.ViewDashboard, c.View())
	require.Equal(t, i18n.LocaleEnglish, c.Locale())
}

func TestSetViewResolvesEveryTag(t *testing.T) {
	registry, _ := newTestRegistry(logger.NewNop())
	c := view.NewController(registry, logger.NewNop())

	for _, tag := range view.Selectors {
		got := c.SetView(string(tag))
		require.Equal(t, tag, got)
		require.Equal(t, tag, c.ActiveRenderer().Tag())
	}
}

func TestSetViewUnknownTagFailsClosed(t *testing.T) {
	registry, _ := newTestRegistry(logger.NewNop())
	c := view.NewController(registry, logger.NewNop())

	c.SetView("wallet")
	got := c.SetView("profile")

	require.Equal(t, view.ViewDashboard, got)
	require.Equal(t, view.ViewDashboard, c.View())
	require.Equal(t, view.ViewDashboard, c.ActiveRenderer().Tag())
}

func TestSetLocale(t *testing.T) {
	registry, _ := newTestRegistry(logger.NewNop())
	c := view.NewController(registry, logger.NewNop())

	require.Equal(t, i18n.LocaleVietnamese, c.SetLocale("vi"))
	require.Equal(t, i18n.LocaleVietnamese, c.Locale())

	require.Equal(t, i18n.LocaleEnglish, c.SetLocale("xx"))
	require.Equal(t, i18n.LocaleEnglish, c.Locale())
}

func TestLeavingVisaDropsConversation(t *testing.T) {
	registry, visa := newTestRegistry(logger.NewNop())
	c := view.NewController(registry, logger.NewNop())

	c.SetView("visa")
	session := visa.Session(i18n.LocaleEnglish)
	session.AppendAssistant("extra")
	require.Len(t, session.Snapshot().Messages, 2)

	c.SetView("dashboard")

	fresh := visa.Session(i18n.LocaleEnglish)
	require.NotSame(t, session, fresh)
	snap := fresh.Snapshot()
	require.Len(t, snap.Messages, 1)
	require.Equal(t, i18n.DefaultTable().Lookup(i18n.KeyVisaWelcome, i18n.LocaleEnglish), snap.Messages[0].Text)
}
