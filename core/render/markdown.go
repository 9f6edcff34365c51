// Package render provides the output renderer for habrmd.
// The Markdown renderer prefixes the body with YAML front matter listing tags.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/habrmd/core"
)

const frontMatterDelimiter = "---"

// MarkdownRenderer writes front matter followed by the converted body.
// The title is not repeated in the body; it only names the file.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the front matter block and the article's Markdown.
func (r *MarkdownRenderer) Render(article core.Article) ([]byte, error) {
	var b strings.Builder
	b.WriteString(FrontMatter(article.Tags))
	b.WriteString(article.Markdown)
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// FrontMatter formats the header block:
//
//	---
//	tags:
//	- tag_one
//	---
//
// An empty tag list leaves "tags:" with no items.
func FrontMatter(tags []string) string {
	var b strings.Builder
	b.WriteString(frontMatterDelimiter + "\n")
	b.WriteString("tags:\n")
	for _, tag := range tags {
		b.WriteString("- " + tag + "\n")
	}
	b.WriteString(frontMatterDelimiter + "\n\n")
	return b.String()
}
