package view

import (
	"context"

	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/platform"
)

// Translator is the assistant surface the translator view depends on.
// Satisfied by *assistant.Gateway.
type Translator interface {
	Translate(ctx context.Context, text, targetLabel string) string
}

// LanguageOption is one selectable language in the translator.
type LanguageOption struct {
	Code      i18n.Locale `json:"code"`
	Label     string      `json:"label"`
	SpeechTag string      `json:"speech_tag"`
}

// TranslatorPayload is the translator view content.
type TranslatorPayload struct {
	Languages     []LanguageOption `json:"languages"`
	DefaultSource i18n.Locale      `json:"default_source"`
	DefaultTarget i18n.Locale      `json:"default_target"`
	SourceText    string           `json:"source_text"`
	Listening     bool             `json:"listening"`
}

// TranslatorRenderer renders the translation screen with voice dictation
// and a copy-to-clipboard action.
type TranslatorRenderer struct {
	translator Translator
	voice      *platform.VoiceInput
	clipboard  platform.Clipboard
}

// NewTranslatorRenderer creates the translator renderer.
func NewTranslatorRenderer(translator Translator, voice *platform.VoiceInput, clip platform.Clipboard) *TranslatorRenderer {
	return &TranslatorRenderer{translator: translator, voice: voice, clipboard: clip}
}

func (r *TranslatorRenderer) Tag() Selector { return ViewTranslator }

func (r *TranslatorRenderer) Payload(_ context.Context, _ i18n.Locale) any {
	languages := make([]LanguageOption, len(i18n.Locales))
	for i, l := range i18n.Locales {
		languages[i] = LanguageOption{Code: l, Label: l.Label(), SpeechTag: l.SpeechTag()}
	}

	return TranslatorPayload{
		Languages:     languages,
		DefaultSource: i18n.LocaleEnglish,
		DefaultTarget: i18n.LocaleKorean,
		SourceText:    r.voice.Text(),
		Listening:     r.voice.State() == platform.VoiceListening,
	}
}

// Translate renders the source text in the target language. The target is
// named by its display label so the request reads naturally.
func (r *TranslatorRenderer) Translate(ctx context.Context, text string, target i18n.Locale) string {
	return r.translator.Translate(ctx, text, target.Label())
}

// ToggleVoice starts or stops dictation in the source language.
func (r *TranslatorRenderer) ToggleVoice(source i18n.Locale) {
	r.voice.Toggle(source.SpeechTag())
}

// SetSourceText replaces the dictation buffer, e.g. after manual edits.
func (r *TranslatorRenderer) SetSourceText(text string) {
	r.voice.SetText(text)
}

// CopyResult places the translation on the system clipboard.
func (r *TranslatorRenderer) CopyResult(text string) error {
	return r.clipboard.Write(text)
}
