package viewmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
	"glimpse/internal/suggest"
)

func TestBuildDropdownCarriesHighlightAndItems(t *testing.T) {
	items := []suggest.Item{
		{Text: "cats", Type: suggest.TypeRecent, Icon: "↺"},
		{Text: "GitHub", Type: suggest.TypeBang, Icon: "!", Prefix: "!gh"},
	}

	d := BuildDropdown(items, 1, true)

	require.Len(t, d.Items, 2)
	assert.True(t, d.Open)
	assert.Equal(t, 1, d.Highlighted)
	assert.Equal(t, "!gh", d.Items[1].Prefix)
	assert.Equal(t, suggest.TypeBang, d.Items[1].Type)
}

func TestFromNewsComposesSourceAndDate(t *testing.T) {
	rows := FromNews([]domain.NewsResult{
		{Title: "a", URL: "u", Source: "Reuters", Published: "2026-08-01"},
		{Title: "b", URL: "u2", Source: "AP"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Reuters · 2026-08-01", rows[0].Meta)
	assert.Equal(t, "AP", rows[1].Meta)
}

func TestFromVideosComposesChannelAndDuration(t *testing.T) {
	rows := FromVideos([]domain.VideoResult{
		{Title: "a", URL: "u", Channel: "chan", Duration: "12:34"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "chan · 12:34", rows[0].Meta)
	assert.Empty(t, rows[0].Snippet)
}

func TestFromImagesFormatsDimensions(t *testing.T) {
	cells := FromImages([]domain.ImageResult{
		{Title: "a", URL: "u", SourceDomain: "example.com", Width: 800, Height: 600},
		{Title: "b", URL: "u2", SourceDomain: "example.org"},
	})

	require.Len(t, cells, 2)
	assert.Equal(t, "800x600", cells[0].Dimensions)
	assert.Empty(t, cells[1].Dimensions)
}

func TestFilterSummaryIsSortedAndStable(t *testing.T) {
	s := FilterSummary(map[string]string{"time": "week", "size": "large"})
	assert.Equal(t, "size=large time=week", s)

	assert.Empty(t, FilterSummary(nil))
}

func TestBuildPageBarDelegatesToWindow(t *testing.T) {
	bar := BuildPageBar(1, 25, 10)
	assert.Equal(t, []int{1, 2, 3}, bar)
}
