// Package tags collects the article's tag labels.
package tags

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/habrmd/core/extract"
)

// Extract returns the text of every node in doc matching rule, in document
// order. Each label is trimmed and its spaces become underscores. Duplicates
// are kept. The result is never nil.
func Extract(doc *extract.Document, rule extract.Rule) []string {
	nodes := doc.All(rule)
	labels := make([]string, 0, nodes.Length())
	nodes.Each(func(_ int, item *goquery.Selection) {
		labels = append(labels, Label(item.Text()))
	})
	return labels
}

// Label normalizes raw tag text: trim, then spaces to underscores.
func Label(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")
}
