package ui

import (
	"glimpse/internal/api"
	"glimpse/internal/domain"
	"glimpse/internal/eventbus"
	"glimpse/internal/suggest"
	"glimpse/internal/ui/viewmodels"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// debounceMsg fires when the keystroke debounce elapses
type debounceMsg struct {
	token int
}

// suggestMsg contains the result of a background suggestion fetch
type suggestMsg struct {
	query string
	items []suggest.Item
}

// rowsMsg contains a fetched page for one of the list surfaces
type rowsMsg struct {
	surface domain.Surface
	query   string
	page    int
	rows    []viewmodels.ResultRow
	total   int64
	lucky   bool
	err     error
}

// imagesMsg contains a fetched page for the image surface
type imagesMsg struct {
	query   string
	page    int
	cells   []viewmodels.ImageCell
	total   int64
	hasMore bool
	err     error
}

// trendingMsg contains the trending queries for the home page
type trendingMsg struct {
	queries []string
	err     error
}

// bangParsedMsg contains the server-side parse of a bang query
type bangParsedMsg struct {
	resp *api.BangParseResponse
	err  error
}

// settingsMsg contains the settings fetched from the backend
type settingsMsg struct {
	settings domain.Settings
	err      error
}

// settingsSavedMsg signals completion of a settings save
type settingsSavedMsg struct {
	err error
}

// historyMsg contains the fetched search history
type historyMsg struct {
	entries []domain.HistoryEntry
	err     error
}

// historyMutatedMsg signals completion of a history delete or clear
type historyMutatedMsg struct {
	err error
}

// detailClosedMsg signals that the detail pager exited
type detailClosedMsg struct {
	err error
}
