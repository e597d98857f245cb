package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateMessageContent validates user message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateCoordinates validates a latitude/longitude pair.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude out of range")
	}
	if lon < -180 || lon > 180 {
		return errors.New("longitude out of range")
	}
	return nil
}

// ValidateAmount validates a conversion amount string. The converter
// itself treats malformed input as zero; this guards request size only.
func ValidateAmount(amount string) error {
	if len(amount) > 32 {
		return errors.New("amount exceeds maximum length")
	}
	return nil
}
