// Package core defines the pipeline types and interfaces for habrmd.
// Each stage of the pipeline is a small, testable unit.
package core

import "context"

// FetchResult holds the raw response of a fetch.
// Body is only meaningful when StatusCode is 200.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Article is the extracted article, ready to be rendered.
// Title names the output file; it is not part of the rendered body.
type Article struct {
	Title    string
	Tags     []string
	Markdown string
}

// Fetcher retrieves the raw page for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer turns an article into the bytes of the output file.
type Renderer interface {
	Render(article Article) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
