package service

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationService(t *testing.T) {
	content := fstest.MapFS{
		"education/progressive-overload.md": {
			Data: []byte("---\ntitle: Progressive Overload\norder: 2\nlastUpdated: 2025-01-15\n---\n\nAdd **weight**.\n"),
		},
		"education/muscle-groups.md": {
			Data:    []byte("---\norder: 1\n---\n\n- Chest\n"),
			ModTime: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		"education/notes.txt": {Data: []byte("ignored")},
	}

	svc := NewEducationService(content, false)

	articles, err := svc.Articles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Muscle Groups", articles[0].Title)
	assert.Equal(t, "March 2, 2025", articles[0].LastUpdated)
	assert.Equal(t, "Progressive Overload", articles[1].Title)
	assert.Equal(t, "January 15, 2025", articles[1].LastUpdated)
	assert.Contains(t, articles[1].Content, "<strong>weight</strong>")

	a, err := svc.Article("muscle-groups")
	require.NoError(t, err)
	assert.Contains(t, a.Content, "<li>Chest</li>")

	_, err = svc.Article("missing")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestEducationService_MissingDirectory(t *testing.T) {
	svc := NewEducationService(fstest.MapFS{}, true)

	articles, err := svc.Articles()
	require.NoError(t, err)
	assert.Empty(t, articles)
}
