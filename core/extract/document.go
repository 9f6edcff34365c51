// Package extract parses an article page and locates its parts:
// the title heading, the body container and the tag list items.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var (
	// ErrTitleNotFound is returned when no node matches the title rule.
	ErrTitleNotFound = errors.New("article title not found")
	// ErrContentNotFound is returned when no node matches the content rule.
	ErrContentNotFound = errors.New("article content not found")
)

// Document is a parsed page. Lookups never modify it; the image rewrite
// mutates nodes reached through Content.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw markup. Parsing is permissive: malformed
// markup still yields a best-effort tree. contentType is the response's
// Content-Type header and may be empty; the body is decoded to UTF-8 from the
// charset it or a <meta> tag declares.
func Parse(body []byte, contentType string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(utf8Reader(body, contentType))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// utf8Reader decodes body using the charset named by contentType or by a
// <meta> tag. Without a declaration, valid UTF-8 is read as is rather than
// falling back to windows-1252.
func utf8Reader(body []byte, contentType string) io.Reader {
	enc, _, certain := charset.DetermineEncoding(body, contentType)
	if !certain && utf8.Valid(body) {
		return bytes.NewReader(body)
	}
	return transform.NewReader(bytes.NewReader(body), enc.NewDecoder())
}

// First returns the first node matching r, or an empty selection.
func (d *Document) First(r Rule) *goquery.Selection {
	return d.doc.FindMatcher(r).First()
}

// All returns every node matching r in document order.
func (d *Document) All(r Rule) *goquery.Selection {
	return d.doc.FindMatcher(r)
}

// Title returns the trimmed text of the first node matching r.
func (d *Document) Title(r Rule) (string, error) {
	sel := d.First(r)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w (%s)", ErrTitleNotFound, r)
	}
	return strings.TrimSpace(sel.Text()), nil
}

// Content returns the first node matching r.
func (d *Document) Content(r Rule) (*goquery.Selection, error) {
	sel := d.First(r)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrContentNotFound, r)
	}
	return sel, nil
}

// OuterHTML serializes sel, including its own tag, back to markup.
func OuterHTML(sel *goquery.Selection) (string, error) {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return out, nil
}
