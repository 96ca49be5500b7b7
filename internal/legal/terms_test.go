package legal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms(t *testing.T) {
	doc := Terms()

	assert.Equal(t, TermsTitle, doc.Title)
	assert.NotEmpty(t, doc.LastUpdated)
	require.NotEmpty(t, doc.Sections)

	for _, s := range doc.Sections {
		assert.NotEmpty(t, s.Heading)
		assert.True(t, len(s.Paragraphs)+len(s.Bullets)+len(s.Subsections) > 0, s.Heading)
	}
}

func TestTerms_ReturnsCopy(t *testing.T) {
	doc := Terms()
	doc.Sections[0].Heading = "changed"

	assert.NotEqual(t, "changed", Terms().Sections[0].Heading)
}

func TestMarkdown(t *testing.T) {
	doc := Document{
		Title:       "Terms",
		LastUpdated: "today",
		Sections: []Section{
			{
				Heading:    "1. One",
				Paragraphs: []string{"First."},
				Bullets:    []string{"a", "b"},
				Subsections: []Section{
					{Heading: "1.1 Nested", Paragraphs: []string{"Inner."}},
				},
			},
		},
	}

	want := "# Terms\n\n" +
		"_Last updated: today_\n" +
		"\n## 1. One\n" +
		"\nFirst.\n" +
		"\n- a\n- b\n" +
		"\n### 1.1 Nested\n" +
		"\nInner.\n"

	assert.Equal(t, want, Markdown(doc))
}

func TestMarkdown_Terms(t *testing.T) {
	md := Markdown(Terms())

	assert.True(t, strings.HasPrefix(md, "# "+TermsTitle))
	assert.Contains(t, md, "### 5.2 Account Deletion")
	assert.Contains(t, md, "- attempt to access another user's account or data")
}
