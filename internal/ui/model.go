package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"glimpse/internal/api"
	"glimpse/internal/config"
	"glimpse/internal/domain"
	"glimpse/internal/eventbus"
	"glimpse/internal/results"
	"glimpse/internal/router"
	"glimpse/internal/state"
	"glimpse/internal/suggest"
	"glimpse/internal/ui/viewmodels"
	"glimpse/internal/ui/views"
)

// timeFilterValues is the cycle order for the time filter on the list
// surfaces. "any" means no filter.
var timeFilterValues = []string{"any", "day", "week", "month", "year"}

// storeRecents adapts the state store to the suggestion engine.
type storeRecents struct {
	store *state.Store
}

func (r storeRecents) RecentSearches() []string {
	return r.store.Get().RecentSearches
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *state.Store
	client *api.Client
	log    *zap.SugaredLogger

	router *router.Router
	engine *suggest.Engine

	// UI chrome
	width    int
	height   int
	input    textinput.Model
	spin     spinner.Model
	help     help.Model
	keys     KeyMap
	renderer *views.Renderer

	// Current page
	kind    viewmodels.PageKind
	surface domain.Surface
	query   string

	paged    *results.Controller[viewmodels.ResultRow]
	images   *results.Controller[viewmodels.ImageCell]
	selected int
	loading  bool
	pageErr  string
	status   string

	trending       []string
	settingsDraft  domain.Settings
	settingsCursor int
	history        []domain.HistoryEntry
	historyCursor  int

	// Commands queued by route renderers during a Resolve call.
	routeCmds []tea.Cmd

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *state.Store, client *api.Client, log *zap.SugaredLogger) *Model {
	input := textinput.New()
	input.Placeholder = "Search the web, ! for bangs"
	input.Prompt = "⌕ "
	input.CharLimit = 256

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		bus:      bus,
		config:   cfg,
		store:    store,
		client:   client,
		log:      log,
		router:   router.New(),
		engine:   suggest.NewEngine(client, storeRecents{store: store}),
		input:    input,
		spin:     spin,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		renderer: views.NewRenderer(),
		kind:     viewmodels.KindHome,
		surface:  domain.SurfaceWeb,
		paged:    results.NewController[viewmodels.ResultRow](results.ModePaged),
		images:   results.NewController[viewmodels.ImageCell](results.ModeInfinite),
	}
	m.settingsDraft = store.Get().Settings
	m.registerRoutes()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), m.spin.Tick)
}

// startCmd performs the initial route resolve.
func (m *Model) startCmd() tea.Cmd {
	m.routeCmds = nil
	m.router.Start("/")
	return m.drainRouteCmds()
}

// navigate resolves path through the router and returns the fetch
// commands the matched route queued.
func (m *Model) navigate(path string, replace bool) tea.Cmd {
	m.routeCmds = nil
	m.status = ""
	m.router.Navigate(path, replace)
	return m.drainRouteCmds()
}

func (m *Model) historyBack() tea.Cmd {
	m.routeCmds = nil
	m.router.Back()
	return m.drainRouteCmds()
}

func (m *Model) historyForward() tea.Cmd {
	m.routeCmds = nil
	m.router.Forward()
	return m.drainRouteCmds()
}

func (m *Model) drainRouteCmds() tea.Cmd {
	if len(m.routeCmds) == 0 {
		return nil
	}
	cmds := m.routeCmds
	m.routeCmds = nil
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(20, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateFocused(msg)
		}
		return m.updateBrowse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case debounceMsg:
		return m, m.onDebounce(msg.token)

	case suggestMsg:
		// A response that lands after the session closed must not re-open
		// the dropdown.
		if m.input.Focused() {
			m.engine.Apply(msg.items, msg.query, m.input.Value())
		}
		return m, nil

	case rowsMsg:
		return m.onRows(msg)

	case imagesMsg:
		return m.onImages(msg)

	case trendingMsg:
		if msg.err != nil {
			m.log.Warnw("trending fetch failed", "error", msg.err)
			return m, nil
		}
		m.trending = msg.queries
		return m, nil

	case bangParsedMsg:
		return m.onBangParsed(msg)

	case settingsMsg:
		if msg.err != nil {
			m.log.Warnw("settings fetch failed", "error", msg.err)
			return m, nil
		}
		m.settingsDraft = msg.settings
		settings := msg.settings
		m.store.Set(state.Patch{Settings: &settings})
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = "Saving settings failed: " + msg.err.Error()
			return m, nil
		}
		settings := m.settingsDraft
		m.store.Set(state.Patch{Settings: &settings})
		m.bus.Publish(eventbus.SettingsChangedEvent{Settings: settings})
		m.status = "Settings saved"
		return m, nil

	case historyMsg:
		if msg.err != nil {
			m.pageErr = msg.err.Error()
			return m, nil
		}
		m.pageErr = ""
		m.history = msg.entries
		if m.historyCursor >= len(m.history) {
			m.historyCursor = max(0, len(m.history)-1)
		}
		return m, nil

	case historyMutatedMsg:
		if msg.err != nil {
			m.status = "History update failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.fetchHistoryCmd()

	case detailClosedMsg:
		if msg.err != nil {
			m.status = "Viewer failed: " + msg.err.Error()
		}
		return m, nil

	case EventMsg:
		return m.onEvent(msg.Event)
	}

	return m, nil
}

// updateFocused handles keys while the search input has focus.
func (m *Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Escape closes the session immediately, unlike a plain focus
		// loss which gets the blur grace.
		m.engine.Close()
		m.input.Blur()
		return m, nil

	case "tab":
		m.engine.Close()
		return m, nil

	case "up":
		m.engine.MoveHighlight(-1)
		return m, nil

	case "down":
		m.engine.MoveHighlight(1)
		return m, nil

	case "enter", "ctrl+l":
		lucky := msg.String() == "ctrl+l"
		res := m.engine.Commit(m.input.Value())
		if res.Action == suggest.ActionRearm {
			m.input.SetValue(res.Text)
			m.input.CursorEnd()
			return m, m.onInputChanged()
		}
		m.input.SetValue(res.Text)
		m.input.Blur()
		return m, m.submit(res.Text, lucky)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.onInputChanged())
	}
	return m, cmd
}

// onInputChanged reacts to an edited input value: the empty query runs
// the local tier immediately, anything else re-arms the debounce.
func (m *Model) onInputChanged() tea.Cmd {
	if m.input.Value() == "" {
		m.engine.RunLocal()
		return nil
	}
	token := m.engine.BumpDebounce()
	return tea.Tick(suggest.DebounceMillis*time.Millisecond, func(time.Time) tea.Msg {
		return debounceMsg{token: token}
	})
}

// onDebounce fires the suggestion fetch if the token is still live.
func (m *Model) onDebounce(token int) tea.Cmd {
	if !m.engine.DebounceCurrent(token) {
		return nil
	}
	return m.runPipeline()
}

// runPipeline runs the suggestion pipeline for the current input value:
// local tier for the empty query, background fetch otherwise. Gaining
// focus and an elapsed debounce both land here.
func (m *Model) runPipeline() tea.Cmd {
	query := m.input.Value()
	if query == "" {
		m.engine.RunLocal()
		return nil
	}
	return m.fetchSuggestionsCmd(query, m.engine.LastQuery(), m.store.Get().RecentSearches)
}

// updateBrowse handles keys in browse mode.
func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.engine.CancelBlur()
		return m, tea.Batch(m.input.Focus(), m.runPipeline())

	case key.Matches(msg, m.keys.Back):
		return m, m.historyBack()

	case key.Matches(msg, m.keys.Forward):
		return m, m.historyForward()

	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchSurface(1)

	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchSurface(-1)

	case key.Matches(msg, m.keys.Settings):
		if m.kind == viewmodels.KindSettings {
			return m.updateSettingsKeys(msg)
		}
		return m, m.navigate("/settings", false)

	case key.Matches(msg, m.keys.History):
		return m, m.navigate("/history", false)
	}

	switch m.kind {
	case viewmodels.KindHome:
		return m.updateHomeKeys(msg)
	case viewmodels.KindResults:
		return m.updateResultsKeys(msg)
	case viewmodels.KindImages:
		return m.updateImagesKeys(msg)
	case viewmodels.KindSettings:
		return m.updateSettingsKeys(msg)
	case viewmodels.KindHistory:
		return m.updateHistoryKeys(msg)
	}
	return m, nil
}

func (m *Model) updateHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.trending) + len(m.store.Get().RecentSearches)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-1, 0, max(0, total-1))
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, max(0, total-1))
	case key.Matches(msg, m.keys.Open):
		q := m.homeEntryAt(m.selected)
		if q != "" {
			m.input.SetValue(q)
			return m, m.submit(q, false)
		}
	}
	return m, nil
}

func (m *Model) homeEntryAt(i int) string {
	if i < len(m.trending) {
		return m.trending[i]
	}
	recents := m.store.Get().RecentSearches
	i -= len(m.trending)
	if i < len(recents) {
		return recents[i]
	}
	return ""
}

func (m *Model) updateResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.paged.Items()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-1, 0, max(0, len(rows)-1))
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, max(0, len(rows)-1))
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(rows)-1)
	case key.Matches(msg, m.keys.Open):
		if m.selected < len(rows) {
			return m, m.openRow(rows[m.selected])
		}
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.gotoPage(m.paged.Page() - 1)
	case key.Matches(msg, m.keys.NextPage):
		return m, m.gotoPage(m.paged.Page() + 1)
	case key.Matches(msg, m.keys.TimeFilter):
		return m, m.cycleTimeFilter()
	case key.Matches(msg, m.keys.ClearFilt):
		return m, m.clearFilters()
	}
	return m, nil
}

func (m *Model) updateImagesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cells := m.images.Items()
	cols := views.ImageColumns(m.width)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-cols, 0, max(0, len(cells)-1))
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+cols, 0, max(0, len(cells)-1))
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.PrevPage):
		m.selected = clamp(m.selected-1, 0, max(0, len(cells)-1))
	case key.Matches(msg, m.keys.NextPage):
		m.selected = clamp(m.selected+1, 0, max(0, len(cells)-1))
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(cells)-1)
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.Open):
		if m.selected < len(cells) {
			return m, m.openImage(cells[m.selected])
		}
	case key.Matches(msg, m.keys.Reverse):
		if m.selected < len(cells) {
			return m, m.reverseImageSearch(cells[m.selected].URL)
		}
	}
	return m, nil
}

// maybeLoadMore arms a continuation fetch when the selection is within
// the last two grid rows of the accumulated items.
func (m *Model) maybeLoadMore() tea.Cmd {
	cells := m.images.Items()
	cols := views.ImageColumns(m.width)
	if m.selected < len(cells)-cols*2 {
		return nil
	}
	if !m.images.TryMore() {
		return nil
	}
	return m.fetchImagesCmd(m.images.Query(), m.images.Page(), m.images.Filters())
}

func (m *Model) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.settingsCursor = clamp(m.settingsCursor-1, 0, len(views.SettingsRows)-1)
	case "down", "j":
		m.settingsCursor = clamp(m.settingsCursor+1, 0, len(views.SettingsRows)-1)
	case "enter", " ":
		m.cycleSetting(m.settingsCursor)
	case "s":
		return m, m.saveSettingsCmd(m.settingsDraft)
	case "r":
		m.settingsDraft = domain.DefaultSettings()
		m.status = "Settings reset, s to save"
	}
	return m, nil
}

// cycleSetting advances the value of the row at index. Row order follows
// views.SettingsRows.
func (m *Model) cycleSetting(index int) {
	s := &m.settingsDraft
	switch index {
	case 0:
		s.SafeSearch = cycleValue(s.SafeSearch, []string{"off", "moderate", "strict"})
	case 1:
		perPage := []int{10, 20, 30, 50}
		for i, v := range perPage {
			if v == s.ResultsPerPage {
				s.ResultsPerPage = perPage[(i+1)%len(perPage)]
				return
			}
		}
		s.ResultsPerPage = perPage[0]
	case 2:
		s.Region = cycleValue(s.Region, []string{"us", "uk", "de", "fr", "jp"})
	case 3:
		s.Language = cycleValue(s.Language, []string{"en", "de", "fr", "es", "ja"})
	case 4:
		s.Theme = cycleValue(s.Theme, []string{"system", "light", "dark"})
	case 5:
		s.OpenInNewTab = !s.OpenInNewTab
	case 6:
		s.ShowThumbnails = !s.ShowThumbnails
	}
}

func cycleValue(current string, values []string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m *Model) updateHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.historyCursor = clamp(m.historyCursor-1, 0, max(0, len(m.history)-1))
	case "down", "j":
		m.historyCursor = clamp(m.historyCursor+1, 0, max(0, len(m.history)-1))
	case "enter":
		if m.historyCursor < len(m.history) {
			q := m.history[m.historyCursor].Query
			m.input.SetValue(q)
			return m, m.submit(q, false)
		}
	case "d":
		if m.historyCursor < len(m.history) {
			return m, m.deleteHistoryCmd(m.history[m.historyCursor].ID)
		}
	case "x":
		return m, m.clearHistoryCmd()
	}
	return m, nil
}

// submit routes a committed query: bang queries go through the server
// parser, anything else lands on the current surface's route.
func (m *Model) submit(text string, lucky bool) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	m.store.RecordSearch(text)

	if strings.HasPrefix(text, "!") {
		m.status = "Resolving " + text + "…"
		return m.parseBangCmd(text)
	}

	v := url.Values{}
	v.Set("q", text)
	if lucky {
		v.Set("lucky", "1")
	}
	return m.navigate(m.surfacePath(m.surface)+"?"+v.Encode(), false)
}

// surfacePath maps a surface to its route.
func (m *Model) surfacePath(s domain.Surface) string {
	switch s {
	case domain.SurfaceImages:
		return "/images"
	case domain.SurfaceVideos:
		return "/videos"
	case domain.SurfaceNews:
		return "/news"
	default:
		return "/search"
	}
}

// switchSurface moves delta steps through the surface tab order,
// carrying the current query along.
func (m *Model) switchSurface(delta int) tea.Cmd {
	order := []domain.Surface{domain.SurfaceWeb, domain.SurfaceImages, domain.SurfaceVideos, domain.SurfaceNews}
	cur := 0
	for i, s := range order {
		if s == m.surface {
			cur = i
		}
	}
	next := order[(cur+delta+len(order))%len(order)]
	if m.query == "" {
		m.surface = next
		return nil
	}
	v := url.Values{}
	v.Set("q", m.query)
	return m.navigate(m.surfacePath(next)+"?"+v.Encode(), false)
}

// gotoPage moves a paged surface to page, clamped to the valid range.
func (m *Model) gotoPage(page int) tea.Cmd {
	perPage := m.store.Get().Settings.ResultsPerPage
	total := results.TotalPages(m.paged.Total(), perPage)
	if page < 1 || page > total || page == m.paged.Page() {
		return nil
	}
	m.paged.SetPage(page)
	m.loading = true
	return m.fetchRowsCmd(m.surface, m.paged.Query(), page, m.paged.Filters(), false)
}

// cycleTimeFilter advances the time filter and refetches from page 1.
func (m *Model) cycleTimeFilter() tea.Cmd {
	filters := map[string]string{}
	for k, v := range m.paged.Filters() {
		filters[k] = v
	}
	cur := filters["time"]
	if cur == "" {
		cur = "any"
	}
	filters["time"] = cycleValue(cur, timeFilterValues)
	m.paged.Reset(m.paged.Query(), filters)
	m.loading = true
	m.selected = 0
	return m.fetchRowsCmd(m.surface, m.paged.Query(), 1, m.paged.Filters(), false)
}

// clearFilters drops all active filters and refetches from page 1.
func (m *Model) clearFilters() tea.Cmd {
	if m.paged.ActiveFilterCount() == 0 {
		return nil
	}
	m.paged.Reset(m.paged.Query(), nil)
	m.loading = true
	m.selected = 0
	return m.fetchRowsCmd(m.surface, m.paged.Query(), 1, nil, false)
}

// reverseImageSearch reseeds the image surface with visually similar
// results for the given image URL.
func (m *Model) reverseImageSearch(imageURL string) tea.Cmd {
	query := "similar:" + imageURL
	m.images.Reset(query, nil)
	m.images.SetPage(1)
	m.selected = 0
	m.loading = true
	m.status = "Searching similar images…"
	return m.reverseImagesCmd(query, imageURL)
}

// onRows folds a completed list fetch into the paged accumulator.
func (m *Model) onRows(msg rowsMsg) (tea.Model, tea.Cmd) {
	if msg.surface != m.surface || msg.query != m.paged.Query() {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.paged.Fail(msg.page)
		m.pageErr = msg.err.Error()
		m.bus.Publish(eventbus.ErrorEvent{Message: "search failed", Err: msg.err})
		return m, nil
	}
	m.pageErr = ""
	perPage := m.store.Get().Settings.ResultsPerPage
	hasMore := msg.page < results.TotalPages(msg.total, perPage)
	m.paged.Apply(msg.page, msg.rows, msg.total, hasMore)
	m.selected = 0

	if msg.page == 1 {
		m.bus.Publish(eventbus.SearchSubmittedEvent{
			Query:   msg.query,
			Surface: msg.surface,
			Results: len(msg.rows),
		})
	}
	if msg.lucky && len(msg.rows) > 0 {
		return m, m.openRow(msg.rows[0])
	}
	return m, nil
}

// onImages folds a completed image fetch into the infinite accumulator.
func (m *Model) onImages(msg imagesMsg) (tea.Model, tea.Cmd) {
	if m.kind != viewmodels.KindImages || msg.query != m.images.Query() {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.images.Fail(msg.page)
		m.pageErr = msg.err.Error()
		m.bus.Publish(eventbus.ErrorEvent{Message: "image search failed", Err: msg.err})
		return m, nil
	}
	m.pageErr = ""
	m.images.Apply(msg.page, msg.cells, msg.total, msg.hasMore)
	if msg.page == 1 {
		m.selected = 0
		m.bus.Publish(eventbus.SearchSubmittedEvent{
			Query:   msg.query,
			Surface: domain.SurfaceImages,
			Results: len(msg.cells),
		})
	}
	return m, nil
}

// onBangParsed reports the server-side bang resolution.
func (m *Model) onBangParsed(msg bangParsedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "Bang parse failed: " + msg.err.Error()
		return m, nil
	}
	resp := msg.resp
	if resp.Bang == nil || resp.Redirect == "" {
		// Not a known bang after all, search it literally.
		v := url.Values{}
		v.Set("q", resp.Query)
		m.status = ""
		return m, m.navigate(m.surfacePath(m.surface)+"?"+v.Encode(), false)
	}
	m.status = fmt.Sprintf("%s → %s", resp.Bang.Name, resp.Redirect)
	m.bus.Publish(eventbus.ResultOpenedEvent{Query: resp.Query, URL: resp.Redirect})
	return m, nil
}

// onEvent reacts to domain events forwarded from the bus.
func (m *Model) onEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.log.Warnw("domain error", "message", e.Message, "error", e.Err)
	case eventbus.HistoryClearedEvent:
		if m.kind == viewmodels.KindHistory {
			return m, m.fetchHistoryCmd()
		}
	}
	return m, nil
}

// openRow shows a list result in the detail pager and records the open.
func (m *Model) openRow(row viewmodels.ResultRow) tea.Cmd {
	m.bus.Publish(eventbus.ResultOpenedEvent{Query: m.query, URL: row.URL})
	m.status = "Opened " + row.URL
	return m.showDetailCmd(detailContent(row.Title, row.URL, row.Meta, row.Snippet))
}

// openImage shows an image result in the detail pager.
func (m *Model) openImage(cell viewmodels.ImageCell) tea.Cmd {
	m.bus.Publish(eventbus.ResultOpenedEvent{Query: m.query, URL: cell.URL})
	m.status = "Opened " + cell.URL
	meta := cell.SourceDomain
	if cell.Dimensions != "" {
		meta += " · " + cell.Dimensions
	}
	return m.showDetailCmd(detailContent(cell.Title, cell.URL, meta, ""))
}

// View renders the model
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

// viewState assembles the frame's view model.
func (m *Model) viewState() viewmodels.ViewState {
	page := viewmodels.PageState{
		Kind:    m.kind,
		Query:   m.query,
		Loading: m.loading,
		Err:     m.pageErr,
	}

	perPage := m.store.Get().Settings.ResultsPerPage

	switch m.kind {
	case viewmodels.KindHome:
		page.Trending = m.trending
		page.Recent = m.store.Get().RecentSearches
		page.Selected = m.selected
	case viewmodels.KindResults:
		page.Rows = m.paged.Items()
		page.Selected = m.selected
		page.Total = m.paged.Total()
		page.CurrentPage = m.paged.Page()
		page.PageBar = viewmodels.BuildPageBar(m.paged.Page(), m.paged.Total(), perPage)
		page.ActiveFilters = m.paged.ActiveFilterCount()
		page.FilterSummary = viewmodels.FilterSummary(m.paged.Filters())
	case viewmodels.KindImages:
		page.Images = m.images.Items()
		page.Selected = m.selected
		page.Total = m.images.Total()
		page.HasMore = m.images.HasMore()
		page.LoadingMore = m.images.Loading()
	case viewmodels.KindSettings:
		page.Settings = m.settingsDraft
		page.SettingsCursor = m.settingsCursor
	case viewmodels.KindHistory:
		page.History = m.history
		page.HistoryCursor = m.historyCursor
	}

	return viewmodels.ViewState{
		Width:       m.width,
		Height:      m.height,
		Path:        m.router.CurrentPath(),
		InputView:   m.input.View(),
		InputFocus:  m.input.Focused(),
		Dropdown:    viewmodels.BuildDropdown(m.engine.Items(), m.engine.Highlighted(), m.engine.Open()),
		Page:        page,
		SpinnerView: m.spin.View(),
		Status:      m.status,
		HelpView:    m.help.View(m.keys),
		ShowHelpBar: m.config.UISettings.ShowHelpBar,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
