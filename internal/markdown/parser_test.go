package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithFrontmatter(t *testing.T) {
	src := []byte("---\ntitle: Progressive Overload\norder: 2\n---\n\n- Increase **weight**\n")

	html, meta, err := NewParser().ParseWithFrontmatter(src)

	require.NoError(t, err)
	assert.Equal(t, "Progressive Overload", meta["title"])
	assert.Equal(t, 2, meta["order"])
	assert.Contains(t, string(html), "<strong>weight</strong>")
	assert.NotContains(t, string(html), "title:")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	html, meta, err := NewParser().ParseWithFrontmatter([]byte("# Week 1"))

	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Contains(t, string(html), `<h1 id="week-1">Week 1</h1>`)
}

func TestParseDropsRawHTML(t *testing.T) {
	html, err := NewParser().Parse([]byte("Squats <script>alert(1)</script> daily"))

	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
