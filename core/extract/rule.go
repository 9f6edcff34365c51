package extract

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// Rule matches element nodes by tag name and required class tokens.
// All classes must be present on the node; extra classes are allowed.
// Rule satisfies goquery.Matcher, so it can be passed to FindMatcher.
type Rule struct {
	Tag     string
	Classes []string
}

// Default rules for the article layout.
var (
	TitleRule   = Rule{Tag: "h1", Classes: []string{"tm-title", "tm-title_h1"}}
	ContentRule = Rule{Tag: "div", Classes: []string{"tm-article-body"}}
	TagRule     = Rule{Tag: "li", Classes: []string{"tm-separated-list__item"}}
)

// Match reports whether n is an element with the rule's tag and classes.
func (r Rule) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || dom.NodeName(n) != r.Tag {
		return false
	}
	for _, class := range r.Classes {
		if !dom.HasClass(n, class) {
			return false
		}
	}
	return true
}

// MatchAll returns n and its descendants that match, in document order.
func (r Rule) MatchAll(n *html.Node) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if r.Match(node) {
			matches = append(matches, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return matches
}

// Filter keeps the nodes that match.
func (r Rule) Filter(nodes []*html.Node) []*html.Node {
	var kept []*html.Node
	for _, n := range nodes {
		if r.Match(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

// String renders the rule as the equivalent CSS selector, e.g. "h1.tm-title.tm-title_h1".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Tag)
	for _, class := range r.Classes {
		b.WriteByte('.')
		b.WriteString(class)
	}
	return b.String()
}
