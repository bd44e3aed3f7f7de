// Package state holds the durable user state: settings and recent searches.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"glimpse/internal/domain"
)

// maxRecentSearches caps the recent-search history.
const maxRecentSearches = 20

// PersistedState is the JSON document written to disk.
type PersistedState struct {
	RecentSearches []string        `json:"recentSearches"`
	Settings       domain.Settings `json:"settings"`
}

// Patch is a shallow merge applied by Set. Nil fields are left untouched.
type Patch struct {
	RecentSearches *[]string
	Settings       *domain.Settings
}

// Subscriber is notified synchronously after every mutation.
type Subscriber func(PersistedState)

// Store is the persisted state store. It is confined to the UI update loop:
// Set notifies subscribers synchronously before returning, so a subscriber
// that calls Set again will recurse.
type Store struct {
	path    string
	current PersistedState
	subs    []*subEntry
}

type subEntry struct {
	fn Subscriber
}

// DefaultState returns the state used when nothing is persisted yet.
func DefaultState() PersistedState {
	return PersistedState{
		RecentSearches: []string{},
		Settings:       domain.DefaultSettings(),
	}
}

// Open loads the store from path. Absence or parse failure of the file
// falls back to defaults; Open never returns an error.
func Open(path string) *Store {
	s := &Store{path: path, current: DefaultState()}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var loaded PersistedState
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s
	}
	if loaded.RecentSearches == nil {
		loaded.RecentSearches = []string{}
	}
	if loaded.Settings == (domain.Settings{}) {
		loaded.Settings = domain.DefaultSettings()
	}
	if len(loaded.RecentSearches) > maxRecentSearches {
		loaded.RecentSearches = loaded.RecentSearches[:maxRecentSearches]
	}
	s.current = loaded
	return s
}

// OpenDefault opens the store at the standard location under the user
// config directory.
func OpenDefault() *Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	dir := filepath.Join(configDir, "glimpse")
	os.MkdirAll(dir, 0755)
	return Open(filepath.Join(dir, "state.json"))
}

// Get returns a snapshot of the current state. The returned value does not
// track later mutations.
func (s *Store) Get() PersistedState {
	snap := s.current
	snap.RecentSearches = append([]string(nil), s.current.RecentSearches...)
	return snap
}

// Set applies a shallow merge, notifies subscribers in registration order,
// then best-effort persists. Persistence failures are swallowed.
func (s *Store) Set(p Patch) {
	if p.RecentSearches != nil {
		s.current.RecentSearches = append([]string(nil), (*p.RecentSearches)...)
	}
	if p.Settings != nil {
		s.current.Settings = *p.Settings
	}
	s.notify()
	s.persist()
}

// Subscribe registers fn and returns an unsubscribe handle.
func (s *Store) Subscribe(fn Subscriber) func() {
	entry := &subEntry{fn: fn}
	s.subs = append(s.subs, entry)
	return func() {
		for i, e := range s.subs {
			if e == entry {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// RecordSearch removes any prior exact occurrence of q, prepends it and
// truncates to the cap, evicting the oldest entry first.
func (s *Store) RecordSearch(q string) {
	if q == "" {
		return
	}

	recent := make([]string, 0, len(s.current.RecentSearches)+1)
	recent = append(recent, q)
	for _, prev := range s.current.RecentSearches {
		if prev != q {
			recent = append(recent, prev)
		}
	}
	if len(recent) > maxRecentSearches {
		recent = recent[:maxRecentSearches]
	}

	s.current.RecentSearches = recent
	s.notify()
	s.persist()
}

func (s *Store) notify() {
	// Snapshot the subscriber list so unsubscribes during notification
	// don't shift the iteration.
	subs := append([]*subEntry(nil), s.subs...)
	snap := s.Get()
	for _, e := range subs {
		e.fn(snap)
	}
}

func (s *Store) persist() {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0644)
}
