// Package images points article images at their full-resolution source.
package images

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DeferredSrcAttr holds the lazily loaded, full-size image URL.
	DeferredSrcAttr = "data-src"
	// SrcAttr is the displayed source.
	SrcAttr = "src"
)

// AttrLookup reports the value of a named attribute and whether it is set.
// (*goquery.Selection).Attr has this shape.
type AttrLookup func(name string) (string, bool)

// FullSizeURL picks the full-resolution URL for an image.
// A non-empty data-src wins as is. Otherwise src is cut at its first '?'.
// ok is false when neither yields a non-empty URL.
func FullSizeURL(attr AttrLookup) (url string, ok bool) {
	if deferred, _ := attr(DeferredSrcAttr); deferred != "" {
		return deferred, true
	}
	src, _ := attr(SrcAttr)
	if i := strings.IndexByte(src, '?'); i >= 0 {
		src = src[:i]
	}
	return src, src != ""
}

// Rewrite sets src of every <img> under content to its full-size URL.
// Images without a usable URL are left untouched. It returns the number
// of images rewritten.
func Rewrite(content *goquery.Selection) int {
	rewritten := 0
	content.Find("img").Each(func(_ int, img *goquery.Selection) {
		if url, ok := FullSizeURL(img.Attr); ok {
			img.SetAttr(SrcAttr, url)
			rewritten++
		}
	})
	return rewritten
}
