package platform

import "github.com/atotto/clipboard"

// Clipboard is a write-only text copy capability.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard copies to the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// NoClipboard is the unavailable variant.
type NoClipboard struct{}

func (NoClipboard) Write(string) error { return ErrUnavailable }
