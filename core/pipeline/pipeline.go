// Package pipeline runs one article through every stage:
// fetch → locate title and body → rewrite images → collect tags →
// convert to Markdown → write.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/habrmd/core"
	"github.com/gaurav-prasanna/habrmd/core/extract"
	"github.com/gaurav-prasanna/habrmd/core/fetch"
	"github.com/gaurav-prasanna/habrmd/core/images"
	"github.com/gaurav-prasanna/habrmd/core/normalize"
	"github.com/gaurav-prasanna/habrmd/core/output"
	"github.com/gaurav-prasanna/habrmd/core/render"
	"github.com/gaurav-prasanna/habrmd/core/tags"
	"go.uber.org/zap"
)

// Options configures a Pipeline. Zero fields take their defaults.
type Options struct {
	Fetcher     core.Fetcher
	Renderer    core.Renderer
	Normalizer  core.Normalizer
	TitleRule   extract.Rule
	ContentRule extract.Rule
	TagRule     extract.Rule
	Logger      *zap.Logger
}

// Pipeline converts a single article page into a Markdown file.
type Pipeline struct {
	fetcher     core.Fetcher
	renderer    core.Renderer
	normalizer  core.Normalizer
	titleRule   extract.Rule
	contentRule extract.Rule
	tagRule     extract.Rule
	log         *zap.Logger
}

// New creates a Pipeline from opts.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		fetcher:     opts.Fetcher,
		renderer:    opts.Renderer,
		normalizer:  opts.Normalizer,
		titleRule:   opts.TitleRule,
		contentRule: opts.ContentRule,
		tagRule:     opts.TagRule,
		log:         opts.Logger,
	}
	if p.fetcher == nil {
		p.fetcher = fetch.New(nil)
	}
	if p.renderer == nil {
		p.renderer = render.NewMarkdownRenderer()
	}
	if p.normalizer == nil {
		p.normalizer = normalize.New()
	}
	if p.titleRule.Tag == "" {
		p.titleRule = extract.TitleRule
	}
	if p.contentRule.Tag == "" {
		p.contentRule = extract.ContentRule
	}
	if p.tagRule.Tag == "" {
		p.tagRule = extract.TagRule
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Run fetches rawURL and writes the article under saveDir, returning the
// written file's path. Nothing is written unless every earlier stage succeeds.
func (p *Pipeline) Run(ctx context.Context, rawURL, saveDir string) (string, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	p.log.Info("fetched page",
		zap.String("url", rawURL),
		zap.Int("status", result.StatusCode),
		zap.Int("bytes", len(result.Body)))

	// 2. Locate title and body
	doc, err := extract.Parse(result.Body, result.ContentType)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	title, err := doc.Title(p.titleRule)
	if err != nil {
		return "", err
	}
	content, err := doc.Content(p.contentRule)
	if err != nil {
		return "", err
	}

	// 3. Full-size images
	rewritten := images.Rewrite(content)

	// 4. Tags
	labels := tags.Extract(doc, p.tagRule)
	p.log.Info("extracted article",
		zap.String("title", title),
		zap.Int("images", rewritten),
		zap.Strings("tags", labels))

	// 5. Convert and write
	fragment, err := extract.OuterHTML(content)
	if err != nil {
		return "", err
	}
	markdown, err := p.normalizer.Normalize(fragment)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	article := core.Article{
		Title:    title,
		Tags:     labels,
		Markdown: markdown,
	}
	data, err := p.renderer.Render(article)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	path, err := output.New(saveDir).Write(article.Title, data, p.renderer.Extension())
	if err != nil {
		return "", err
	}
	p.log.Info("wrote article", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}

// IsReported reports whether err is a failure the user is told about with
// a message rather than an error exit: a non-200 response, or a page
// missing its title or body.
func IsReported(err error) bool {
	var httpErr *fetch.HTTPError
	return errors.As(err, &httpErr) ||
		errors.Is(err, extract.ErrTitleNotFound) ||
		errors.Is(err, extract.ErrContentNotFound)
}
