package assistant

import (
	"fmt"
	"strings"

	"github.com/korea-connect/app-platform/internal/i18n"
)

// Domain narrows the assistant's instructed source scope.
type Domain string

const (
	// DomainGeneral is the unconstrained K-Bot persona.
	DomainGeneral Domain = ""
	// DomainVisa constrains answers to official immigration sources.
	DomainVisa Domain = "visa"
)

// ParseDomain maps a wire value to a Domain. Unknown values are rejected
// rather than silently treated as general chat.
func ParseDomain(s string) (Domain, bool) {
	switch Domain(s) {
	case DomainGeneral, DomainVisa:
		return Domain(s), true
	}
	return DomainGeneral, false
}

// VisaSourceDomains is the allow-list of official sources the visa
// instruction names. The constraint lives in the instruction text only and
// is not verified server-side; treat it as best effort.
var VisaSourceDomains = []string{
	"hikorea.go.kr",
	"immigration.go.kr",
	"moj.go.kr",
	"global.seoul.go.kr",
}

// systemInstruction builds the system prompt for a conversational turn.
func systemInstruction(locale i18n.Locale, domain Domain) string {
	if domain == DomainVisa {
		var b strings.Builder
		b.WriteString("You are an expert Korean Visa & Immigration consultant.\n")
		b.WriteString("CRITICAL: When answering questions about visas, immigration procedures, or administrative rules in Korea, you MUST STRICTLY base your answers on official South Korean government sources such as:\n")
		b.WriteString("- HiKorea (hikorea.go.kr)\n")
		b.WriteString("- Korea Immigration Service (immigration.go.kr)\n")
		b.WriteString("- Ministry of Justice (moj.go.kr)\n")
		b.WriteString("- Seoul Global Center (global.seoul.go.kr)\n\n")
		b.WriteString("If you provide specific requirements (documents, fees, deadlines), mention that the info is based on general guidelines from HiKorea.\n")
		fmt.Fprintf(&b, "Respond in %s.", locale)
		return b.String()
	}

	return fmt.Sprintf(`You are "K-Bot", a helpful assistant for the KOREA CONNECT super app. Your target audience is foreigners (students, workers, tourists) living in South Korea.
You are helpful, polite, and knowledgeable about Korean laws, transportation, culture, and language.
Always answer in the language the user speaks or the requested language (%s).
Keep answers concise and mobile-friendly.`, locale)
}

// transitSystemInstruction is the persona for route lookups.
const transitSystemInstruction = "You are a Korean transit expert using data similar to Naver Maps or KakaoMap."

// translatePrompt asks for the bare translation with no commentary.
func translatePrompt(text, targetLabel string) string {
	return fmt.Sprintf("Translate the following text into %s. Only provide the translation, no explanations. Text: %q", targetLabel, text)
}

// routePrompt asks for a stepwise markdown route narrative.
func routePrompt(origin, destination string, locale i18n.Locale) string {
	return fmt.Sprintf(`Provide a detailed public transport route from %q to %q in South Korea.
Include subway line numbers, bus numbers, and estimated time.
Format the response in Markdown with clear steps.
Respond in %s language.`, origin, destination, locale)
}

// reverseGeocodePrompt asks for address-only output.
func reverseGeocodePrompt(lat, lon float64, locale i18n.Locale) string {
	return fmt.Sprintf(`I am at latitude %v, longitude %v in South Korea.
Return ONLY the approximate address/location name in %s language.
Do not add any conversational text. Just the address.`, lat, lon, locale)
}
