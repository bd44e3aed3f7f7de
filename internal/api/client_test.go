package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"glimpse/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zap.NewNop().Sugar())
}

func TestSearchBuildsQuery(t *testing.T) {
	var gotQuery map[string][]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"query":"cats","results":[{"title":"t","url":"u"}],"total_results":1}`))
	})

	resp, err := c.Search(context.Background(), "cats", SearchOptions{
		Page:    3,
		PerPage: 10,
		Filters: map[string]string{"region": "de", "time": ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cats"}, gotQuery["q"])
	assert.Equal(t, []string{"3"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["per_page"])
	assert.Equal(t, []string{"de"}, gotQuery["region"])
	_, present := gotQuery["time"]
	assert.False(t, present, "empty values are omitted, never serialized")

	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(1), resp.TotalResults)
}

func TestEmptyValuesOmitted(t *testing.T) {
	var gotRawQuery string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`{"results":[]}`))
	})

	_, err := c.Search(context.Background(), "cats", SearchOptions{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "q=cats", gotRawQuery, "page 1 and empty filters add nothing")
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	})

	_, err := c.Search(context.Background(), "cats", SearchOptions{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, "backend exploded", statusErr.Body)
}

func TestSuggest(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/suggest", r.URL.Path)
		assert.Equal(t, "ca", r.URL.Query().Get("q"))
		w.Write([]byte(`{"query":"ca","suggestions":["cats","cars"]}`))
	})

	got, err := c.Suggest(context.Background(), "ca")
	require.NoError(t, err)
	assert.Equal(t, []string{"cats", "cars"}, got)
}

func TestBangs(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bangs", r.URL.Path)
		w.Write([]byte(`[{"trigger":"g","name":"Google","url_template":"https://google.com/search?q={}"}]`))
	})

	bangs, err := c.Bangs(context.Background())
	require.NoError(t, err)
	require.Len(t, bangs, 1)
	assert.Equal(t, "g", bangs[0].Trigger)
}

func TestReverseImageSearchPostsBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search/images/reverse", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"results":[],"has_more":false}`))
	})

	_, err := c.ReverseImageSearch(context.Background(), ReverseImageRequest{URL: "https://example.com/cat.jpg"})
	require.NoError(t, err)
}

func TestUpdateSettings(t *testing.T) {
	var gotMethod, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateSettings(context.Background(), domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/settings", gotPath)
}

func TestHistoryLifecycle(t *testing.T) {
	var paths []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`[{"id":"1","query":"cats","results":12}]`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	entries, err := c.History(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cats", entries[0].Query)

	require.NoError(t, c.RecordHistory(context.Background(), "dogs", 3))
	require.NoError(t, c.DeleteHistory(context.Background(), "1"))
	require.NoError(t, c.ClearHistory(context.Background()))

	assert.Equal(t, []string{
		"GET /api/history",
		"POST /api/history",
		"DELETE /api/history/1",
		"DELETE /api/history",
	}, paths)
}

func TestPreferenceLifecycle(t *testing.T) {
	var paths []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`[{"id":"1","domain":"example.com","action":"upvote","level":2}]`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	prefs, err := c.Preferences(context.Background())
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, "upvote", prefs[0].Action)

	require.NoError(t, c.SetPreference(context.Background(), domain.Preference{Domain: "example.com", Action: "block"}))
	require.NoError(t, c.DeletePreference(context.Background(), "example.com"))

	assert.Equal(t, []string{
		"GET /api/preferences",
		"POST /api/preferences",
		"DELETE /api/preferences/example.com",
	}, paths)
}

func TestLensLifecycle(t *testing.T) {
	var paths []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`[{"id":"1","name":"Academic","domains":["arxiv.org"],"is_built_in":true}]`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	lenses, err := c.Lenses(context.Background())
	require.NoError(t, err)
	require.Len(t, lenses, 1)
	assert.Equal(t, "Academic", lenses[0].Name)
	assert.True(t, lenses[0].IsBuiltIn)

	require.NoError(t, c.CreateLens(context.Background(), domain.Lens{Name: "Go", Domains: []string{"go.dev"}}))
	require.NoError(t, c.DeleteLens(context.Background(), "1"))

	assert.Equal(t, []string{
		"GET /api/lenses",
		"POST /api/lenses",
		"DELETE /api/lenses/1",
	}, paths)
}

func TestContextCancellation(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, "cats", SearchOptions{})
	assert.Error(t, err)
}
