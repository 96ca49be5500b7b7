package legal

import (
	"strings"
)

// Markdown renders doc as a markdown document. Top-level sections are
// level-two headings, each nesting level adds one.
func Markdown(doc Document) string {
	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n\n")
	if doc.LastUpdated != "" {
		b.WriteString("_Last updated: " + doc.LastUpdated + "_\n")
	}
	for _, s := range doc.Sections {
		writeSection(&b, s, 2)
	}
	return b.String()
}

func writeSection(b *strings.Builder, s Section, level int) {
	b.WriteString("\n" + strings.Repeat("#", min(level, 6)) + " " + s.Heading + "\n")
	for _, p := range s.Paragraphs {
		b.WriteString("\n" + p + "\n")
	}
	if len(s.Bullets) > 0 {
		b.WriteString("\n")
		for _, item := range s.Bullets {
			b.WriteString("- " + item + "\n")
		}
	}
	for _, sub := range s.Subsections {
		writeSection(b, sub, level+1)
	}
}
