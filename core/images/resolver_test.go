package images

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(attrs map[string]string) AttrLookup {
	return func(name string) (string, bool) {
		v, ok := attrs[name]
		return v, ok
	}
}

func TestFullSizeURL(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]string
		want   string
		wantOK bool
	}{
		{
			name:   "deferred wins over src",
			attrs:  map[string]string{"data-src": "https://x/full.png", "src": "https://x/thumb.png?w=100"},
			want:   "https://x/full.png",
			wantOK: true,
		},
		{
			name:   "deferred kept verbatim including query",
			attrs:  map[string]string{"data-src": "https://x/full.png?v=2"},
			want:   "https://x/full.png?v=2",
			wantOK: true,
		},
		{
			name:   "src query stripped at first question mark",
			attrs:  map[string]string{"src": "https://x/a.png?w=1?h=2"},
			want:   "https://x/a.png",
			wantOK: true,
		},
		{
			name:   "src without query unchanged",
			attrs:  map[string]string{"src": "https://x/a.png"},
			want:   "https://x/a.png",
			wantOK: true,
		},
		{
			name:   "empty deferred falls back to src",
			attrs:  map[string]string{"data-src": "", "src": "https://x/a.png?w=1"},
			want:   "https://x/a.png",
			wantOK: true,
		},
		{
			name:  "neither attribute",
			attrs: map[string]string{"alt": "diagram"},
		},
		{
			name:  "src that is only a query",
			attrs: map[string]string{"src": "?w=100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FullSizeURL(lookup(tt.attrs))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	html := `<div id="body">
<img id="a" src="https://x/thumb.png?w=100" data-src="https://x/full.png">
<img id="b" src="https://x/b.png?w=100">
<img id="c" alt="no source">
<p><img id="d" src="https://x/d.png"></p>
</div>
<img id="outside" src="https://x/out.png?w=1">`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	n := Rewrite(doc.Find("#body"))
	assert.Equal(t, 3, n)

	src := func(id string) (string, bool) { return doc.Find("#" + id).Attr("src") }

	got, _ := src("a")
	assert.Equal(t, "https://x/full.png", got)
	got, _ = src("b")
	assert.Equal(t, "https://x/b.png", got)
	_, exists := src("c")
	assert.False(t, exists, "image without sources must stay untouched")
	got, _ = src("d")
	assert.Equal(t, "https://x/d.png", got)
	got, _ = src("outside")
	assert.Equal(t, "https://x/out.png?w=1", got, "images outside the content are not rewritten")
}
