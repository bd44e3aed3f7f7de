package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/domain"
	"glimpse/internal/results"
	"glimpse/internal/router"
	"glimpse/internal/ui/viewmodels"
)

// registerRoutes installs the route table. Route renderers run
// synchronously inside a Resolve call on the update loop; fetches they
// start are queued and drained by the caller.
func (m *Model) registerRoutes() {
	m.router.AddRoute("/", func(_, _ map[string]string) {
		m.kind = viewmodels.KindHome
		m.query = ""
		m.selected = 0
		m.pageErr = ""
		m.queue(m.fetchTrendingCmd())
	})

	m.router.AddRoute("/search", m.listRoute(domain.SurfaceWeb))
	m.router.AddRoute("/videos", m.listRoute(domain.SurfaceVideos))
	m.router.AddRoute("/news", m.listRoute(domain.SurfaceNews))

	m.router.AddRoute("/images", func(_, query map[string]string) {
		q := query["q"]
		m.kind = viewmodels.KindImages
		m.surface = domain.SurfaceImages
		m.query = q
		m.selected = 0
		m.pageErr = ""
		// Each navigation gets a fresh accumulator, indices into the old
		// one die with it.
		m.images = results.NewController[viewmodels.ImageCell](results.ModeInfinite)
		m.images.Reset(q, map[string]string{"size": query["size"]})
		if q == "" {
			return
		}
		// Guard the initial fetch so an early scroll-to-bottom cannot
		// arm page 2 while page 1 is in flight.
		m.images.SetPage(1)
		m.loading = true
		m.queue(m.fetchImagesCmd(q, 1, m.images.Filters()))
	})

	m.router.AddRoute("/settings", func(_, _ map[string]string) {
		m.kind = viewmodels.KindSettings
		m.pageErr = ""
		m.settingsCursor = 0
		m.settingsDraft = m.store.Get().Settings
		m.queue(m.fetchSettingsCmd())
	})

	m.router.AddRoute("/history", func(_, _ map[string]string) {
		m.kind = viewmodels.KindHistory
		m.pageErr = ""
		m.historyCursor = 0
		m.queue(m.fetchHistoryCmd())
	})

	m.router.SetNotFound(func(_, _ map[string]string) {
		m.kind = viewmodels.KindNotFound
		m.pageErr = ""
	})
}

// listRoute builds the renderer shared by the web, video and news routes.
func (m *Model) listRoute(surface domain.Surface) router.Renderer {
	return func(_, query map[string]string) {
		q := query["q"]
		lucky := query["lucky"] == "1"
		page := 1
		if n, err := strconv.Atoi(query["page"]); err == nil && n > 1 {
			page = n
		}

		m.kind = viewmodels.KindResults
		m.surface = surface
		m.query = q
		m.selected = 0
		m.pageErr = ""
		m.paged = results.NewController[viewmodels.ResultRow](results.ModePaged)
		m.paged.Reset(q, map[string]string{"time": query["time"]})
		if q == "" {
			return
		}
		m.paged.SetPage(page)
		m.loading = true
		m.queue(m.fetchRowsCmd(surface, q, page, m.paged.Filters(), lucky))
	}
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.routeCmds = append(m.routeCmds, cmd)
	}
}
