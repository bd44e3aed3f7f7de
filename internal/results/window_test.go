package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"exact division", 100, 10, 10},
		{"rounds up", 101, 10, 11},
		{"zero results", 0, 10, 1},
		{"hard cap at 100", 100000, 10, 100},
		{"zero per page", 50, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestPageWindowCenteredAndClamped(t *testing.T) {
	// total_results=1000, per_page=10, currentPage=50.
	window := PageWindow(50, 1000, 10)

	require.LessOrEqual(t, len(window), 10)
	for _, p := range window {
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 100)
	}
	assert.Contains(t, window, 50)
}

func TestPageWindowAtStart(t *testing.T) {
	window := PageWindow(1, 1000, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, window)
}

func TestPageWindowAtEnd(t *testing.T) {
	window := PageWindow(100, 1000, 10)
	assert.Equal(t, []int{91, 92, 93, 94, 95, 96, 97, 98, 99, 100}, window)
}

func TestPageWindowFewPages(t *testing.T) {
	window := PageWindow(2, 30, 10)
	assert.Equal(t, []int{1, 2, 3}, window)
}

func TestPageWindowCurrentBeyondCap(t *testing.T) {
	window := PageWindow(500, 100000, 10)
	assert.Equal(t, 100, window[len(window)-1])
}
