// Package viewmodels transforms application state into view-ready data.
// Everything here is pure: no terminal, no network, fully unit-testable.
package viewmodels

import (
	"fmt"
	"strings"

	"glimpse/internal/domain"
	"glimpse/internal/results"
	"glimpse/internal/suggest"
)

// PageKind identifies which surface the body renders.
type PageKind int

const (
	KindHome PageKind = iota
	KindResults
	KindImages
	KindSettings
	KindHistory
	KindNotFound
)

// ResultRow is the uniform list row for the web, news and video surfaces.
type ResultRow struct {
	Title   string
	URL     string
	Snippet string
	Meta    string // domain, source or channel line
}

// ImageCell is one entry of the image surface.
type ImageCell struct {
	Title        string
	URL          string
	SourceDomain string
	Dimensions   string
}

// DropdownItem is one rendered autocomplete entry.
type DropdownItem struct {
	Icon   string
	Text   string
	Prefix string
	Type   suggest.ItemType
}

// DropdownState is the autocomplete dropdown, view-ready.
type DropdownState struct {
	Open        bool
	Items       []DropdownItem
	Highlighted int
}

// PageState is the body of the current page view.
type PageState struct {
	Kind  PageKind
	Query string

	// Results surfaces
	Rows        []ResultRow
	Selected    int
	PageBar     []int
	CurrentPage int
	Total       int64

	// Image surface
	Images      []ImageCell
	HasMore     bool
	LoadingMore bool

	// Home
	Trending []string
	Recent   []string

	// Settings
	Settings       domain.Settings
	SettingsCursor int

	// History
	History       []domain.HistoryEntry
	HistoryCursor int

	ActiveFilters int
	FilterSummary string
	Loading       bool
	Err           string // inline failure panel, raw error text
}

// ViewState is everything the views need to render a frame.
type ViewState struct {
	Width  int
	Height int

	Path       string
	InputView  string
	InputFocus bool
	Dropdown   DropdownState
	Page       PageState

	SpinnerView string
	Status      string
	HelpView    string
	ShowHelpBar bool
}

// BuildDropdown converts engine session state into the view model.
func BuildDropdown(items []suggest.Item, highlighted int, open bool) DropdownState {
	out := DropdownState{Open: open, Highlighted: highlighted}
	for _, it := range items {
		out.Items = append(out.Items, DropdownItem{
			Icon:   it.Icon,
			Text:   it.Text,
			Prefix: it.Prefix,
			Type:   it.Type,
		})
	}
	return out
}

// BuildPageBar computes the page-number bar for a paged surface.
func BuildPageBar(current int, total int64, perPage int) []int {
	return results.PageWindow(current, total, perPage)
}

// FromWeb converts web results into list rows.
func FromWeb(in []domain.WebResult) []ResultRow {
	rows := make([]ResultRow, 0, len(in))
	for _, r := range in {
		rows = append(rows, ResultRow{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Meta:    r.Domain,
		})
	}
	return rows
}

// FromNews converts news results into list rows.
func FromNews(in []domain.NewsResult) []ResultRow {
	rows := make([]ResultRow, 0, len(in))
	for _, r := range in {
		meta := r.Source
		if r.Published != "" {
			meta = fmt.Sprintf("%s · %s", r.Source, r.Published)
		}
		rows = append(rows, ResultRow{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Meta:    meta,
		})
	}
	return rows
}

// FromVideos converts video results into list rows.
func FromVideos(in []domain.VideoResult) []ResultRow {
	rows := make([]ResultRow, 0, len(in))
	for _, r := range in {
		meta := r.Channel
		if r.Duration != "" {
			meta = fmt.Sprintf("%s · %s", r.Channel, r.Duration)
		}
		rows = append(rows, ResultRow{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: "",
			Meta:    meta,
		})
	}
	return rows
}

// FromImages converts image results into grid cells.
func FromImages(in []domain.ImageResult) []ImageCell {
	cells := make([]ImageCell, 0, len(in))
	for _, r := range in {
		dims := ""
		if r.Width > 0 && r.Height > 0 {
			dims = fmt.Sprintf("%dx%d", r.Width, r.Height)
		}
		cells = append(cells, ImageCell{
			Title:        r.Title,
			URL:          r.URL,
			SourceDomain: r.SourceDomain,
			Dimensions:   dims,
		})
	}
	return cells
}

// FilterSummary renders the active filters as "name=value" pairs for the
// status line.
func FilterSummary(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(filters))
	for name, val := range filters {
		parts = append(parts, name+"="+val)
	}
	// Deterministic order for rendering and tests.
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			if parts[j] < parts[i] {
				parts[i], parts[j] = parts[j], parts[i]
			}
		}
	}
	return strings.Join(parts, " ")
}
