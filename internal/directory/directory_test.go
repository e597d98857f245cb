package directory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/i18n"
)

func TestDefaultDirectoryValid(t *testing.T) {
	require.NoError(t, directory.Default().Validate())
}

func TestLinksResolveForEveryLocale(t *testing.T) {
	d := directory.Default()
	for _, category := range directory.Categories {
		for _, locale := range i18n.Locales {
			links := d.Links(category, locale)
			require.NotEmpty(t, links, "category %s", category)
			for _, l := range links {
				require.NotEmpty(t, l.Name)
				require.NotEmpty(t, l.URL)
				require.NotEmpty(t, l.Description)
			}
		}
	}
}

func TestLinkDescriptionFallsBack(t *testing.T) {
	d := directory.New(map[directory.Category][]directory.Link{
		directory.CategoryCommunity: {
			{Name: "x", URL: "https://example.com", Description: i18n.Entry{i18n.LocaleEnglish: "only english"}},
		},
	})
	links := d.Links(directory.CategoryCommunity, i18n.LocaleChinese)
	require.Equal(t, "only english", links[0].Description)
}

func TestValidateRejectsRelativeURL(t *testing.T) {
	d := directory.New(map[directory.Category][]directory.Link{
		directory.CategoryAdmin: {
			{Name: "bad", URL: "/portal/main", Description: completeEntry("x")},
		},
	})
	require.Error(t, d.Validate())
}

func TestValidateRejectsIncompleteDescription(t *testing.T) {
	d := directory.New(map[directory.Category][]directory.Link{
		directory.CategoryAdmin: {
			{Name: "bad", URL: "https://example.com", Description: i18n.Entry{i18n.LocaleEnglish: "x"}},
		},
	})
	require.Error(t, d.Validate())
}

func TestParseCategory(t *testing.T) {
	got, ok := directory.ParseCategory("medical")
	require.True(t, ok)
	require.Equal(t, directory.CategoryMedical, got)

	_, ok = directory.ParseCategory("banking")
	require.False(t, ok)
}

func completeEntry(text string) i18n.Entry {
	entry := i18n.Entry{}
	for _, locale := range i18n.Locales {
		entry[locale] = text
	}
	return entry
}
