package i18n

import (
	"fmt"
	"sort"
)

// Entry holds the text of one content key in every supported locale.
type Entry map[Locale]string

// Table is a read-only mapping from content key to localized text.
// It is populated once at load time and never mutated afterwards.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a content table from static entries.
func NewTable(entries map[string]Entry) *Table {
	return &Table{entries: entries}
}

// Lookup resolves the text for key in the given locale. A locale with no
// entry falls back to English. A key that is entirely missing returns the
// key itself; Validate is expected to have caught that at load time.
func (t *Table) Lookup(key string, locale Locale) string {
	entry, ok := t.entries[key]
	if !ok {
		return key
	}
	if text, ok := entry[locale]; ok && text != "" {
		return text
	}
	if text, ok := entry[DefaultLocale]; ok && text != "" {
		return text
	}
	return key
}

// Resolve applies the same fallback rule to a standalone entry, such as a
// link description authored outside the table.
func Resolve(entry Entry, locale Locale) string {
	if text, ok := entry[locale]; ok && text != "" {
		return text
	}
	return entry[DefaultLocale]
}

// Has reports whether the table defines a content key.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns every content key in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate enforces the authoring rule that every key defines non-empty
// text for all supported locales. It runs at startup so that a missing
// translation aborts boot instead of surfacing at render time.
func (t *Table) Validate() error {
	for key, entry := range t.entries {
		if err := ValidateEntry(entry); err != nil {
			return fmt.Errorf("content key %q: %w", key, err)
		}
	}
	return nil
}

// ValidateEntry checks a single localized entry for completeness.
func ValidateEntry(entry Entry) error {
	for _, locale := range Locales {
		if entry[locale] == "" {
			return fmt.Errorf("missing %s text", locale)
		}
	}
	return nil
}
