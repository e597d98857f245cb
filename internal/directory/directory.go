// Package directory holds the curated external-resource catalog.
package directory

import (
	"fmt"
	"net/url"

	"github.com/korea-connect/app-platform/internal/i18n"
)

// Category identifies one curated link group.
type Category string

const (
	CategoryCommunity Category = "community"
	CategoryMedical   Category = "medical"
	CategoryShopping  Category = "shopping"
	CategoryAdmin     Category = "admin"
)

// Categories lists every link group in display order.
var Categories = []Category{CategoryCommunity, CategoryMedical, CategoryShopping, CategoryAdmin}

// ParseCategory maps a path segment to a category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryCommunity, CategoryMedical, CategoryShopping, CategoryAdmin:
		return Category(s), true
	}
	return "", false
}

// Link is one external resource entry. Links always open in a new browsing
// context on the client; URLs are opaque beyond the absolute-URL check.
type Link struct {
	Name        string
	URL         string
	Description i18n.Entry
	Icon        string
}

// ResolvedLink is a link with its description resolved for one locale.
type ResolvedLink struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Directory is the read-only category -> links catalog.
type Directory struct {
	groups map[Category][]Link
}

// New builds a directory from static link groups.
func New(groups map[Category][]Link) *Directory {
	return &Directory{groups: groups}
}

// Links returns the ordered entries of a category resolved for the locale.
// Descriptions follow the same English-fallback rule as the content table.
func (d *Directory) Links(category Category, locale i18n.Locale) []ResolvedLink {
	links := d.groups[category]
	resolved := make([]ResolvedLink, len(links))
	for i, l := range links {
		resolved[i] = ResolvedLink{
			Name:        l.Name,
			URL:         l.URL,
			Description: i18n.Resolve(l.Description, locale),
			Icon:        l.Icon,
		}
	}
	return resolved
}

// Validate enforces the authoring rules at load time: every URL must be a
// well-formed absolute URL and every description must be complete.
func (d *Directory) Validate() error {
	for category, links := range d.groups {
		for _, l := range links {
			u, err := url.Parse(l.URL)
			if err != nil || !u.IsAbs() || u.Host == "" {
				return fmt.Errorf("%s link %q: url %q is not absolute", category, l.Name, l.URL)
			}
			if err := i18n.ValidateEntry(l.Description); err != nil {
				return fmt.Errorf("%s link %q: %w", category, l.Name, err)
			}
		}
	}
	return nil
}
