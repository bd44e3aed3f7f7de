// Package suggest implements the autocomplete engine behind the search box:
// a debounced, multi-source pipeline with a keyboard-navigable dropdown.
package suggest

import (
	"context"
	"strings"

	"glimpse/internal/domain"
)

// Timing constants, in milliseconds. The keystroke debounce keeps
// last-keystroke-wins semantics; the blur grace is long enough for a
// pending mouse selection to land before the dropdown closes.
const (
	DebounceMillis  = 150
	BlurGraceMillis = 200
)

const maxItems = 8

// ItemType classifies a dropdown item.
type ItemType string

const (
	TypeRecent     ItemType = "recent"
	TypeSuggestion ItemType = "suggestion"
	TypeBang       ItemType = "bang"
)

// Item is one dropdown entry. Items are ephemeral and recomputed on every
// pipeline run.
type Item struct {
	Text   string
	Type   ItemType
	Icon   string
	Prefix string // bang trigger, empty otherwise
}

// Source provides the two network-backed suggestion tiers.
type Source interface {
	Suggest(ctx context.Context, query string) ([]string, error)
	Bangs(ctx context.Context) ([]domain.Bang, error)
}

// Recents provides the recent-search tier.
type Recents interface {
	RecentSearches() []string
}

// Action is the outcome of committing an item.
type Action int

const (
	// ActionSubmit submits the committed text as a search.
	ActionSubmit Action = iota
	// ActionRearm re-feeds the input with "<trigger> " and keeps the
	// dropdown open.
	ActionRearm
)

// CommitResult describes what the caller should do after a commit.
type CommitResult struct {
	Action Action
	Text   string
}

// Engine holds the per-input dropdown session state. It does no I/O
// scheduling itself: the caller runs the debounce timers and executes
// Fetch in the background, then feeds the result back through Apply.
type Engine struct {
	source  Source
	recents Recents

	items       []Item
	highlighted int
	open        bool

	lastQuery string // last non-empty query, filters the recent tier

	debounceSeq int
	blurSeq     int
}

// NewEngine creates an engine over the given tiers.
func NewEngine(source Source, recents Recents) *Engine {
	return &Engine{
		source:      source,
		recents:     recents,
		highlighted: -1,
	}
}

// Items returns the current dropdown items.
func (e *Engine) Items() []Item { return e.items }

// Highlighted returns the highlighted index, -1 for none.
func (e *Engine) Highlighted() int { return e.highlighted }

// Open reports whether the dropdown is open.
func (e *Engine) Open() bool { return e.open }

// BumpDebounce invalidates any pending keystroke debounce and returns the
// token for the newly scheduled one.
func (e *Engine) BumpDebounce() int {
	e.debounceSeq++
	return e.debounceSeq
}

// DebounceCurrent reports whether token is still the live debounce, i.e.
// no later keystroke superseded it.
func (e *Engine) DebounceCurrent(token int) bool {
	return token == e.debounceSeq
}

// BumpBlur schedules a blur grace period and returns its token.
func (e *Engine) BumpBlur() int {
	e.blurSeq++
	return e.blurSeq
}

// CancelBlur invalidates any pending blur close (e.g. focus returned).
func (e *Engine) CancelBlur() {
	e.blurSeq++
}

// BlurElapsed closes the dropdown if token is still the live blur timer.
func (e *Engine) BlurElapsed(token int) {
	if token == e.blurSeq {
		e.Close()
	}
}

// Close closes the dropdown without touching the item list.
func (e *Engine) Close() {
	e.open = false
	e.highlighted = -1
}

// LastQuery returns the last non-empty query fed through Apply. The
// caller snapshots it, together with the recent searches, before running
// Fetch in the background.
func (e *Engine) LastQuery() string { return e.lastQuery }

// RunLocal runs the no-network tier for an empty query: recent searches,
// optionally filtered by the last non-empty query. It replaces the item
// list directly.
func (e *Engine) RunLocal() {
	e.replace(recentItems(e.recents.RecentSearches(), e.lastQuery))
}

// Fetch computes the dropdown items for a non-empty query. It performs the
// network tiers and always returns a usable list: any source failure
// degrades to the filtered recent list, never an error. Fetch runs in the
// background, so it takes snapshots of the mutable inputs instead of
// reading engine state.
func (e *Engine) Fetch(ctx context.Context, query, lastQuery string, recents []string) []Item {
	if strings.HasPrefix(query, "!") {
		if items, ok := e.bangItems(ctx, query); ok {
			return items
		}
		// Bang directory unavailable, fall through to suggestions.
	}

	suggestions, err := e.source.Suggest(ctx, query)
	if err != nil || len(suggestions) == 0 {
		return recentItems(recents, lastQuery)
	}

	items := make([]Item, 0, maxItems)
	for _, s := range suggestions {
		if len(items) == maxItems {
			break
		}
		items = append(items, Item{Text: s, Type: TypeSuggestion, Icon: "⌕"})
	}
	return items
}

// Apply installs items produced for forQuery. The response is discarded
// when the live input value has moved on since the fetch was issued; a
// later keystroke's fetch may resolve first.
func (e *Engine) Apply(items []Item, forQuery, liveValue string) bool {
	if forQuery != liveValue {
		return false
	}
	if forQuery != "" {
		e.lastQuery = forQuery
	}
	e.replace(items)
	return true
}

// replace swaps the item list. Replacement always resets the highlight,
// independent of any hover highlighting that happened before.
func (e *Engine) replace(items []Item) {
	e.items = items
	e.highlighted = -1
	e.open = len(items) > 0
}

// MoveHighlight moves the highlight by delta, clamped to [-1, len-1]
// without wraparound.
func (e *Engine) MoveHighlight(delta int) {
	if !e.open {
		return
	}
	next := e.highlighted + delta
	if next < -1 {
		next = -1
	}
	if next > len(e.items)-1 {
		next = len(e.items) - 1
	}
	e.highlighted = next
}

// Hover sets the highlight without replacing the item list.
func (e *Engine) Hover(index int) {
	if index >= -1 && index < len(e.items) {
		e.highlighted = index
	}
}

// Commit commits the highlighted item, or the raw text when nothing is
// highlighted. Committing a bang re-arms the input and keeps the session
// going; anything else closes the dropdown and submits.
func (e *Engine) Commit(rawText string) CommitResult {
	if e.highlighted < 0 || e.highlighted >= len(e.items) {
		e.Close()
		return CommitResult{Action: ActionSubmit, Text: rawText}
	}

	item := e.items[e.highlighted]
	if item.Type == TypeBang {
		e.highlighted = -1
		return CommitResult{Action: ActionRearm, Text: item.Prefix + " "}
	}

	e.Close()
	return CommitResult{Action: ActionSubmit, Text: item.Text}
}

// recentItems builds the recent-search tier, filtered case-insensitively
// by the last non-empty query.
func recentItems(recents []string, lastQuery string) []Item {
	filter := strings.ToLower(lastQuery)

	items := make([]Item, 0, maxItems)
	for _, q := range recents {
		if len(items) == maxItems {
			break
		}
		if filter != "" && !strings.Contains(strings.ToLower(q), filter) {
			continue
		}
		items = append(items, Item{Text: q, Type: TypeRecent, Icon: "↺"})
	}
	return items
}

// bangItems builds the bang tier. ok is false when the directory fetch
// failed and the caller should fall through to the suggestion tier.
func (e *Engine) bangItems(ctx context.Context, query string) ([]Item, bool) {
	bangs, err := e.source.Bangs(ctx)
	if err != nil {
		return nil, false
	}

	lowerQuery := strings.ToLower(query)
	remainder := strings.ToLower(strings.TrimPrefix(lowerQuery, "!"))

	items := make([]Item, 0, maxItems)
	for _, b := range bangs {
		if len(items) == maxItems {
			break
		}
		trigger := strings.ToLower(b.Trigger)
		if !strings.HasPrefix(trigger, "!") {
			trigger = "!" + trigger
		}
		if strings.HasPrefix(trigger, lowerQuery) ||
			(remainder != "" && strings.Contains(strings.ToLower(b.Name), remainder)) {
			items = append(items, Item{
				Text:   b.Name,
				Type:   TypeBang,
				Icon:   "!",
				Prefix: trigger,
			})
		}
	}
	return items, true
}
