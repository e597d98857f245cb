// Package i18n provides locale handling and the localized content table.
package i18n

// Locale is one of the supported display/response languages.
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleVietnamese Locale = "vi"
	LocaleKorean     Locale = "ko"
	LocaleChinese    Locale = "zh"
)

// DefaultLocale is the fallback language when no translation is available.
const DefaultLocale = LocaleEnglish

// Locales lists every supported locale.
var Locales = []Locale{LocaleEnglish, LocaleVietnamese, LocaleKorean, LocaleChinese}

// ParseLocale maps a language code to a supported locale. Unknown codes
// resolve to the default locale rather than erroring.
func ParseLocale(code string) Locale {
	switch Locale(code) {
	case LocaleEnglish, LocaleVietnamese, LocaleKorean, LocaleChinese:
		return Locale(code)
	default:
		return DefaultLocale
	}
}

// Valid reports whether the locale is one of the supported languages.
func (l Locale) Valid() bool {
	switch l {
	case LocaleEnglish, LocaleVietnamese, LocaleKorean, LocaleChinese:
		return true
	}
	return false
}

// Label returns the language's self-name, used when instructing the
// assistant backend which language to respond in.
func (l Locale) Label() string {
	switch l {
	case LocaleVietnamese:
		return "Tiếng Việt"
	case LocaleKorean:
		return "한국어"
	case LocaleChinese:
		return "中文"
	default:
		return "English"
	}
}

// SpeechTag returns the BCP 47 tag used to configure speech recognition.
func (l Locale) SpeechTag() string {
	switch l {
	case LocaleVietnamese:
		return "vi-VN"
	case LocaleKorean:
		return "ko-KR"
	case LocaleChinese:
		return "zh-CN"
	default:
		return "en-US"
	}
}

// ShortLabel returns the uppercase badge shown in the locale picker.
func (l Locale) ShortLabel() string {
	if l == LocaleChinese {
		return "CN"
	}
	switch l {
	case LocaleVietnamese:
		return "VI"
	case LocaleKorean:
		return "KO"
	default:
		return "EN"
	}
}
