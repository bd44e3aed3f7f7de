package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "state.json"))
}

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	s := tempStore(t)

	snap := s.Get()
	assert.Empty(t, snap.RecentSearches)
	assert.Equal(t, domain.DefaultSettings(), snap.Settings)
}

func TestOpenGarbageFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var s *Store
	assert.NotPanics(t, func() { s = Open(path) })
	assert.Equal(t, domain.DefaultSettings(), s.Get().Settings)
}

func TestRecordSearchPrependsAndDedupes(t *testing.T) {
	s := tempStore(t)

	s.RecordSearch("cats")
	s.RecordSearch("dogs")
	s.RecordSearch("cats")

	assert.Equal(t, []string{"cats", "dogs"}, s.Get().RecentSearches)
}

func TestRecordSearchAlreadyFirst(t *testing.T) {
	s := tempStore(t)

	s.RecordSearch("cats")
	s.RecordSearch("dogs")
	require.Equal(t, []string{"dogs", "cats"}, s.Get().RecentSearches)

	s.RecordSearch("dogs")
	assert.Equal(t, []string{"dogs", "cats"}, s.Get().RecentSearches)
}

func TestRecordSearchCapEvictsOldest(t *testing.T) {
	s := tempStore(t)

	for i := 1; i <= 21; i++ {
		s.RecordSearch(fmt.Sprintf("query-%d", i))
	}

	recent := s.Get().RecentSearches
	require.Len(t, recent, 20)
	assert.Equal(t, "query-21", recent[0])
	assert.Equal(t, "query-2", recent[19]) // query-1 evicted
}

func TestSetShallowMerge(t *testing.T) {
	s := tempStore(t)
	s.RecordSearch("cats")

	settings := domain.DefaultSettings()
	settings.Theme = "dark"
	s.Set(Patch{Settings: &settings})

	snap := s.Get()
	assert.Equal(t, "dark", snap.Settings.Theme)
	assert.Equal(t, []string{"cats"}, snap.RecentSearches, "untouched field survives merge")
}

func TestSetNotifiesInRegistrationOrder(t *testing.T) {
	s := tempStore(t)

	var order []string
	s.Subscribe(func(PersistedState) { order = append(order, "first") })
	s.Subscribe(func(PersistedState) { order = append(order, "second") })

	settings := domain.DefaultSettings()
	s.Set(Patch{Settings: &settings})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	s := tempStore(t)

	calls := 0
	unsub := s.Subscribe(func(PersistedState) { calls++ })

	s.RecordSearch("one")
	unsub()
	s.RecordSearch("two")

	assert.Equal(t, 1, calls)
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := tempStore(t)
	s.RecordSearch("cats")

	snap := s.Get()
	snap.RecentSearches[0] = "mutated"

	assert.Equal(t, []string{"cats"}, s.Get().RecentSearches)
}

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := Open(path)
	s.RecordSearch("cats")
	settings := domain.DefaultSettings()
	settings.Region = "de"
	s.Set(Patch{Settings: &settings})

	reopened := Open(path)
	snap := reopened.Get()
	assert.Equal(t, []string{"cats"}, snap.RecentSearches)
	assert.Equal(t, "de", snap.Settings.Region)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	// Point the store at an unwritable location.
	s := Open(filepath.Join(t.TempDir(), "missing-dir", "state.json"))

	assert.NotPanics(t, func() { s.RecordSearch("cats") })
	assert.Equal(t, []string{"cats"}, s.Get().RecentSearches)
}
