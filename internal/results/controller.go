// Package results manages the per-surface result accumulators: numbered
// paging for the web, news and video surfaces and viewport-triggered
// infinite append for the image surface.
package results

// Mode selects how fetched pages are folded into the accumulator.
type Mode int

const (
	// ModePaged replaces the item list wholesale on every page fetch.
	ModePaged Mode = iota
	// ModeInfinite appends each fetched page to the item list.
	ModeInfinite
)

// Controller is one surface's accumulator. Each surface owns exactly one
// instance, created with its page view and torn down on navigation; the
// accumulator is never shared across surfaces.
type Controller[T any] struct {
	mode Mode

	query   string
	filters map[string]string

	page        int
	items       []T
	total       int64
	hasMore     bool
	loadingMore bool
}

// NewController creates an empty accumulator in the given mode.
func NewController[T any](mode Mode) *Controller[T] {
	return &Controller[T]{
		mode:    mode,
		filters: map[string]string{},
		page:    1,
		hasMore: true,
	}
}

// Query returns the active query.
func (c *Controller[T]) Query() string { return c.query }

// Page returns the current page number.
func (c *Controller[T]) Page() int { return c.page }

// Items returns the accumulated items. Indices into this slice are only
// valid until the next Reset or, in paged mode, the next Apply.
func (c *Controller[T]) Items() []T { return c.items }

// Total returns the reported total result count.
func (c *Controller[T]) Total() int64 { return c.total }

// HasMore reports whether a further page may exist.
func (c *Controller[T]) HasMore() bool { return c.hasMore }

// Loading reports whether a continuation fetch is in flight.
func (c *Controller[T]) Loading() bool { return c.loadingMore }

// Reset installs a new query and filter set: page back to 1, items
// cleared, hasMore re-armed. Any change of query or filters goes through
// here before the next fetch fires. Filter values of the literal "any"
// are equivalent to absence and are stripped.
func (c *Controller[T]) Reset(query string, filters map[string]string) {
	c.query = query
	c.filters = NormalizeFilters(filters)
	c.page = 1
	c.items = nil
	c.total = 0
	c.hasMore = true
	c.loadingMore = false
}

// Filters returns the normalized active filter map.
func (c *Controller[T]) Filters() map[string]string { return c.filters }

// ActiveFilterCount returns the number of effective filters, driving the
// clear-filters affordance.
func (c *Controller[T]) ActiveFilterCount() int { return len(c.filters) }

// SetPage moves a paged accumulator to the given page ahead of its fetch.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
	c.loadingMore = true
}

// TryMore arms a continuation fetch for an infinite accumulator. It
// reports false while a fetch is in flight, when the backend has no more
// pages, or when there is no active query. On success the page number is
// incremented and the in-flight flag set synchronously, before any fetch
// is issued, so a double trigger cannot slip through.
func (c *Controller[T]) TryMore() bool {
	if c.loadingMore || !c.hasMore || c.query == "" {
		return false
	}
	c.page++
	c.loadingMore = true
	return true
}

// Apply folds a completed fetch for page into the accumulator. Stale
// completions for a different page than the one armed are ignored.
func (c *Controller[T]) Apply(page int, items []T, total int64, hasMore bool) {
	if page != c.page {
		return
	}
	switch c.mode {
	case ModePaged:
		c.items = items
	case ModeInfinite:
		c.items = append(c.items, items...)
	}
	c.total = total
	c.hasMore = hasMore
	c.loadingMore = false
}

// Fail clears the in-flight flag after a failed fetch without touching
// the accumulated items.
func (c *Controller[T]) Fail(page int) {
	if page != c.page {
		return
	}
	c.loadingMore = false
}

// NormalizeFilters strips absent and "any" values, which keeps the active
// filter count accurate.
func NormalizeFilters(filters map[string]string) map[string]string {
	out := map[string]string{}
	for name, val := range filters {
		if val == "" || val == "any" {
			continue
		}
		out[name] = val
	}
	return out
}
