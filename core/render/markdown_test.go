package render

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/habrmd/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFrontMatterLayout(t *testing.T) {
	got := FrontMatter([]string{"tag_one", "tag_two"})
	assert.Equal(t, "---\ntags:\n- tag_one\n- tag_two\n---\n\n", got)
}

func TestFrontMatterNoTags(t *testing.T) {
	assert.Equal(t, "---\ntags:\n---\n\n", FrontMatter(nil))
}

func TestFrontMatterIsYAML(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{name: "several", tags: []string{"Go", "Web_Scraping", "Go"}},
		{name: "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := strings.TrimSuffix(FrontMatter(tt.tags), "---\n\n")
			block = strings.TrimPrefix(block, "---\n")

			var meta struct {
				Tags []string `yaml:"tags"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(block), &meta))
			if len(tt.tags) == 0 {
				assert.Empty(t, meta.Tags)
			} else {
				assert.Equal(t, tt.tags, meta.Tags)
			}
		})
	}
}

func TestRenderConcatenatesBody(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(core.Article{
		Title:    "Hello World",
		Tags:     []string{"My_Tag"},
		Markdown: "Body text.\n\n![](https://x/full.png)",
	})
	require.NoError(t, err)

	assert.Equal(t, "---\ntags:\n- My_Tag\n---\n\nBody text.\n\n![](https://x/full.png)", string(data))
	assert.NotContains(t, string(data), "# Hello World")
	assert.Equal(t, ".md", r.Extension())
}
