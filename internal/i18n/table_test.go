package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/i18n"
)

func TestDefaultTableComplete(t *testing.T) {
	table := i18n.DefaultTable()
	require.NoError(t, table.Validate())
}

func TestLookupEveryKeyEveryLocale(t *testing.T) {
	table := i18n.DefaultTable()
	for _, key := range table.Keys() {
		for _, locale := range i18n.Locales {
			require.NotEmpty(t, table.Lookup(key, locale), "key %s locale %s", key, locale)
		}
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	table := i18n.NewTable(map[string]i18n.Entry{
		"partial": {i18n.LocaleEnglish: "hello"},
	})
	require.Equal(t, "hello", table.Lookup("partial", i18n.LocaleKorean))
	require.Equal(t, "hello", table.Lookup("partial", i18n.LocaleEnglish))
}

func TestValidateRejectsMissingLocale(t *testing.T) {
	table := i18n.NewTable(map[string]i18n.Entry{
		"partial": {i18n.LocaleEnglish: "hello", i18n.LocaleKorean: "안녕"},
	})
	err := table.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "partial")
}

func TestParseLocale(t *testing.T) {
	require.Equal(t, i18n.LocaleKorean, i18n.ParseLocale("ko"))
	require.Equal(t, i18n.LocaleVietnamese, i18n.ParseLocale("vi"))
	require.Equal(t, i18n.DefaultLocale, i18n.ParseLocale("fr"))
	require.Equal(t, i18n.DefaultLocale, i18n.ParseLocale(""))
}

func TestSpeechTags(t *testing.T) {
	require.Equal(t, "en-US", i18n.LocaleEnglish.SpeechTag())
	require.Equal(t, "vi-VN", i18n.LocaleVietnamese.SpeechTag())
	require.Equal(t, "ko-KR", i18n.LocaleKorean.SpeechTag())
	require.Equal(t, "zh-CN", i18n.LocaleChinese.SpeechTag())
}
