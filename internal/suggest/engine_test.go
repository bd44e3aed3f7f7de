package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
)

type fakeSource struct {
	suggestions map[string][]string
	suggestErr  error
	bangs       []domain.Bang
	bangErr     error

	suggestCalls int
	bangCalls    int
}

func (f *fakeSource) Suggest(_ context.Context, query string) ([]string, error) {
	f.suggestCalls++
	if f.suggestErr != nil {
		return nil, f.suggestErr
	}
	return f.suggestions[query], nil
}

func (f *fakeSource) Bangs(context.Context) ([]domain.Bang, error) {
	f.bangCalls++
	if f.bangErr != nil {
		return nil, f.bangErr
	}
	return f.bangs, nil
}

type fakeRecents []string

func (f fakeRecents) RecentSearches() []string { return f }

func defaultBangs() []domain.Bang {
	return []domain.Bang{
		{Trigger: "g", Name: "Google"},
		{Trigger: "gh", Name: "GitHub"},
		{Trigger: "w", Name: "Wikipedia"},
		{Trigger: "yt", Name: "YouTube"},
	}
}

func TestEmptyQueryShowsRecentsWithoutNetwork(t *testing.T) {
	src := &fakeSource{}
	e := NewEngine(src, fakeRecents{"cats", "dogs"})

	e.RunLocal()

	require.Len(t, e.Items(), 2)
	assert.True(t, e.Open())
	assert.Equal(t, TypeRecent, e.Items()[0].Type)
	assert.Zero(t, src.suggestCalls)
	assert.Zero(t, src.bangCalls)
}

func TestBangQueryYieldsOnlyBangItems(t *testing.T) {
	src := &fakeSource{bangs: defaultBangs()}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "!g", "", nil)

	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, TypeBang, item.Type)
		assert.NotEmpty(t, item.Prefix)
	}
	// "!g" prefix-matches !g and !gh, not !w or !yt by trigger.
	triggers := []string{items[0].Prefix, items[1].Prefix}
	assert.Contains(t, triggers, "!g")
	assert.Contains(t, triggers, "!gh")
}

func TestBangNameMatchOnRemainder(t *testing.T) {
	src := &fakeSource{bangs: defaultBangs()}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "!tube", "", nil)

	require.Len(t, items, 1)
	assert.Equal(t, "YouTube", items[0].Text)
}

func TestBangDirectoryFailureFallsThroughToSuggestions(t *testing.T) {
	src := &fakeSource{
		bangErr:     errors.New("boom"),
		suggestions: map[string][]string{"!g": {"!g something"}},
	}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "!g", "", nil)

	require.Len(t, items, 1)
	assert.Equal(t, TypeSuggestion, items[0].Type)
}

func TestEmptySuggestionsFallBackToFilteredRecents(t *testing.T) {
	src := &fakeSource{suggestions: map[string][]string{}}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "cats", "cat", []string{"cats and dogs", "cat pictures", "weather"})

	require.Len(t, items, 2)
	assert.Equal(t, TypeRecent, items[0].Type)
	assert.Equal(t, "cats and dogs", items[0].Text)
	assert.Equal(t, "cat pictures", items[1].Text)
}

func TestSuggestionErrorFallsBackToRecents(t *testing.T) {
	src := &fakeSource{suggestErr: errors.New("boom")}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "cats", "", []string{"cats"})

	require.Len(t, items, 1)
	assert.Equal(t, TypeRecent, items[0].Type)
}

func TestRecentsCappedAtEight(t *testing.T) {
	recents := fakeRecents{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	e := NewEngine(&fakeSource{}, recents)

	e.RunLocal()

	assert.Len(t, e.Items(), 8)
}

func TestStaleResponseDiscarded(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})

	applied := e.Apply([]Item{{Text: "old", Type: TypeSuggestion}}, "ca", "cats")
	assert.False(t, applied)
	assert.Empty(t, e.Items())

	applied = e.Apply([]Item{{Text: "cats", Type: TypeSuggestion}}, "cats", "cats")
	assert.True(t, applied)
	require.Len(t, e.Items(), 1)
}

func TestApplyResetsHighlight(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})

	e.Apply([]Item{{Text: "a"}, {Text: "b"}}, "q", "q")
	e.MoveHighlight(1)
	require.Equal(t, 0, e.Highlighted())

	e.Apply([]Item{{Text: "c"}}, "q2", "q2")
	assert.Equal(t, -1, e.Highlighted())
}

func TestMoveHighlightClampsWithoutWraparound(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})
	e.Apply([]Item{{Text: "a"}, {Text: "b"}}, "q", "q")

	e.MoveHighlight(-1)
	assert.Equal(t, -1, e.Highlighted(), "up from none stays at none")

	e.MoveHighlight(1)
	e.MoveHighlight(1)
	assert.Equal(t, 1, e.Highlighted())

	e.MoveHighlight(1)
	assert.Equal(t, 1, e.Highlighted(), "down at last item does not wrap")
}

func TestHoverDoesNotReplaceItems(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})
	e.Apply([]Item{{Text: "a"}, {Text: "b"}}, "q", "q")

	e.Hover(1)
	assert.Equal(t, 1, e.Highlighted())
	assert.Len(t, e.Items(), 2)
}

func TestCommitBangRearms(t *testing.T) {
	src := &fakeSource{bangs: defaultBangs()}
	e := NewEngine(src, fakeRecents{})

	items := e.Fetch(context.Background(), "!gh", "", nil)
	e.Apply(items, "!gh", "!gh")
	e.MoveHighlight(1)

	res := e.Commit("!gh")
	assert.Equal(t, ActionRearm, res.Action)
	assert.Equal(t, "!gh ", res.Text)
	assert.True(t, e.Open(), "dropdown stays open after bang commit")
}

func TestCommitSuggestionSubmitsAndCloses(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})
	e.Apply([]Item{{Text: "cat pictures", Type: TypeSuggestion}}, "cat", "cat")
	e.MoveHighlight(1)

	res := e.Commit("cat")
	assert.Equal(t, ActionSubmit, res.Action)
	assert.Equal(t, "cat pictures", res.Text)
	assert.False(t, e.Open())
}

func TestCommitWithoutHighlightSubmitsRawText(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})
	e.Apply([]Item{{Text: "cat pictures", Type: TypeSuggestion}}, "cat", "cat")

	res := e.Commit("cat")
	assert.Equal(t, ActionSubmit, res.Action)
	assert.Equal(t, "cat", res.Text)
}

func TestDebounceLastKeystrokeWins(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})

	first := e.BumpDebounce()
	second := e.BumpDebounce()

	assert.False(t, e.DebounceCurrent(first))
	assert.True(t, e.DebounceCurrent(second))
}

func TestBlurGraceClosesUnlessCancelled(t *testing.T) {
	e := NewEngine(&fakeSource{}, fakeRecents{})
	e.Apply([]Item{{Text: "a"}}, "q", "q")
	require.True(t, e.Open())

	token := e.BumpBlur()
	e.CancelBlur()
	e.BlurElapsed(token)
	assert.True(t, e.Open(), "cancelled blur does not close")

	token = e.BumpBlur()
	e.BlurElapsed(token)
	assert.False(t, e.Open())
}
