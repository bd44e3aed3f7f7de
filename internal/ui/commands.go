package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/api"
	"glimpse/internal/domain"
	"glimpse/internal/eventbus"
	"glimpse/internal/ui/viewmodels"
)

// fetchTimeout bounds every background API call.
const fetchTimeout = 15 * time.Second

func fetchContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}

func (m *Model) fetchTrendingCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		queries, err := client.Trending(ctx)
		return trendingMsg{queries: queries, err: err}
	}
}

func (m *Model) fetchSuggestionsCmd(query, lastQuery string, recents []string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		items := engine.Fetch(ctx, query, lastQuery, recents)
		return suggestMsg{query: query, items: items}
	}
}

func (m *Model) fetchRowsCmd(surface domain.Surface, query string, page int, filters map[string]string, lucky bool) tea.Cmd {
	client := m.client
	opts := api.SearchOptions{
		Page:    page,
		PerPage: m.store.Get().Settings.ResultsPerPage,
		Filters: filters,
	}
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()

		msg := rowsMsg{surface: surface, query: query, page: page, lucky: lucky}
		switch surface {
		case domain.SurfaceVideos:
			resp, err := client.SearchVideos(ctx, query, opts)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.rows = viewmodels.FromVideos(resp.Results)
			msg.total = resp.TotalResults
		case domain.SurfaceNews:
			resp, err := client.SearchNews(ctx, query, opts)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.rows = viewmodels.FromNews(resp.Results)
			msg.total = resp.TotalResults
		default:
			resp, err := client.Search(ctx, query, opts)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.rows = viewmodels.FromWeb(resp.Results)
			msg.total = resp.TotalResults
		}
		return msg
	}
}

func (m *Model) fetchImagesCmd(query string, page int, filters map[string]string) tea.Cmd {
	client := m.client
	opts := api.SearchOptions{
		Page:    page,
		PerPage: m.store.Get().Settings.ResultsPerPage,
		Filters: filters,
	}
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		resp, err := client.SearchImages(ctx, query, opts)
		if err != nil {
			return imagesMsg{query: query, page: page, err: err}
		}
		return imagesMsg{
			query:   query,
			page:    page,
			cells:   viewmodels.FromImages(resp.Results),
			total:   resp.TotalResults,
			hasMore: resp.HasMore,
		}
	}
}

// reverseImagesCmd runs a reverse image search. The synthetic query ties
// the response back to the accumulator that was reset for it.
func (m *Model) reverseImagesCmd(query, imageURL string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		resp, err := client.ReverseImageSearch(ctx, api.ReverseImageRequest{URL: imageURL})
		if err != nil {
			return imagesMsg{query: query, page: 1, err: err}
		}
		return imagesMsg{
			query:   query,
			page:    1,
			cells:   viewmodels.FromImages(resp.Results),
			total:   resp.TotalResults,
			hasMore: resp.HasMore,
		}
	}
}

func (m *Model) parseBangCmd(text string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		resp, err := client.ParseBang(ctx, text)
		return bangParsedMsg{resp: resp, err: err}
	}
}

func (m *Model) fetchSettingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		settings, err := client.Settings(ctx)
		if err != nil {
			return settingsMsg{err: err}
		}
		return settingsMsg{settings: *settings}
	}
}

func (m *Model) saveSettingsCmd(draft domain.Settings) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		return settingsSavedMsg{err: client.UpdateSettings(ctx, draft)}
	}
}

func (m *Model) fetchHistoryCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		entries, err := client.History(ctx, 100)
		return historyMsg{entries: entries, err: err}
	}
}

func (m *Model) deleteHistoryCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		return historyMutatedMsg{err: client.DeleteHistory(ctx, id)}
	}
}

func (m *Model) clearHistoryCmd() tea.Cmd {
	client := m.client
	bus := m.bus
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		err := client.ClearHistory(ctx)
		if err == nil {
			bus.Publish(eventbus.HistoryClearedEvent{})
		}
		return historyMutatedMsg{err: err}
	}
}
