package view

import (
	"context"

	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/i18n"
)

// MenuPayload is the content of a curated-links screen.
type MenuPayload struct {
	Title string                   `json:"title"`
	Links []directory.ResolvedLink `json:"links"`
}

// LinkMenuRenderer renders one curated-links screen. The community,
// medical, shopping and admin views are all instances of it.
type LinkMenuRenderer struct {
	tag      Selector
	titleKey string
	category directory.Category
	table    *i18n.Table
	links    *directory.Directory
}

// NewLinkMenuRenderer creates a links renderer bound to one category.
func NewLinkMenuRenderer(tag Selector, titleKey string, category directory.Category, table *i18n.Table, links *directory.Directory) *LinkMenuRenderer {
	return &LinkMenuRenderer{
		tag:      tag,
		titleKey: titleKey,
		category: category,
		table:    table,
		links:    links,
	}
}

func (r *LinkMenuRenderer) Tag() Selector { return r.tag }

func (r *LinkMenuRenderer) Payload(_ context.Context, locale i18n.Locale) any {
	return MenuPayload{
		Title: r.table.Lookup(r.titleKey, locale),
		Links: r.links.Links(r.category, locale),
	}
}
