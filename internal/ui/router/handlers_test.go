package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolldata/islandatlas/internal/store"
	"github.com/atolldata/islandatlas/internal/testutil"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New()
	r := chi.NewMux()
	SetupRoutes(r, st)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestUnreadyStoreAnswers503(t *testing.T) {
	srv, st := newTestServer(t)
	st.RecordFailure(errors.New("file does not exist"))

	for _, path := range []string{"/api/status", "/api/atolls", "/api/islands/1", "/api/search?q=foo"} {
		var body map[string]string
		status := getJSON(t, srv.URL+path, &body)
		assert.Equal(t, http.StatusServiceUnavailable, status, path)
		assert.Contains(t, body["error"], "no data available")
		assert.Contains(t, body["error"], "file does not exist", "the cause is preserved for diagnostics")
	}
}

func TestStatus(t *testing.T) {
	srv, st := newTestServer(t)
	st.Publish(testutil.Snapshot(t))

	var body struct {
		Snapshot string         `json:"snapshot"`
		Counts   map[string]int `json:"counts"`
	}
	status := getJSON(t, srv.URL+"/api/status", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body.Snapshot)
	assert.Equal(t, 3, body.Counts["islands"])
	assert.Equal(t, 2, body.Counts["atolls"])
}

func TestListAtollsAndIslands(t *testing.T) {
	srv, st := newTestServer(t)
	st.Publish(testutil.Snapshot(t))

	var atolls []map[string]any
	status := getJSON(t, srv.URL+"/api/atolls", &atolls)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, atolls, 2)
	assert.Equal(t, "Alpha", atolls[0]["atoll_name"])

	var islands []map[string]any
	status = getJSON(t, srv.URL+"/api/atolls/A/islands", &islands)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, islands, 2)
	assert.Equal(t, "Bar", islands[0]["island_name"])
}

func TestGetIsland(t *testing.T) {
	srv, st := newTestServer(t)
	st.Publish(testutil.Snapshot(t))

	var view struct {
		Title string `json:"title"`
		Atoll struct {
			Name string `json:"atoll_name"`
		} `json:"atoll"`
		CSOOrganizations []map[string]any `json:"csoOrganizations"`
	}
	status := getJSON(t, srv.URL+"/api/islands/1", &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Foo (ފޯ)", view.Title)
	assert.Equal(t, "Alpha", view.Atoll.Name)
	assert.Len(t, view.CSOOrganizations, 2)
}

func TestGetIslandNotFound(t *testing.T) {
	srv, st := newTestServer(t)
	st.Publish(testutil.Snapshot(t))

	var body map[string]string
	status := getJSON(t, srv.URL+"/api/islands/does-not-exist", &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "island not found", body["error"])
}

func TestSearch(t *testing.T) {
	srv, st := newTestServer(t)
	st.Publish(testutil.Snapshot(t))

	var body struct {
		Active  bool             `json:"active"`
		Results []map[string]any `json:"results"`
	}

	status := getJSON(t, srv.URL+"/api/search?q=foo", &body)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Active)
	assert.Len(t, body.Results, 2)

	// A one-character query reports an inactive search, not zero results.
	status = getJSON(t, srv.URL+"/api/search?q=f", &body)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, body.Active)
	assert.Empty(t, body.Results)
}
