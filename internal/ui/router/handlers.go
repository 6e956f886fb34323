package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atolldata/islandatlas/internal/resolver"
	"github.com/atolldata/islandatlas/internal/store"
	"github.com/atolldata/islandatlas/pkg/core"
)

// Handlers provides the HTTP handlers for the island data API.
type Handlers struct {
	store *store.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{store: st}
}

// statusResponse reports the currently published snapshot.
type statusResponse struct {
	Snapshot string         `json:"snapshot"`
	LoadedAt string         `json:"loadedAt"`
	Counts   map[string]int `json:"counts"`
}

// searchResponse distinguishes an inactive search (query too short) from a
// search that matched nothing.
type searchResponse struct {
	Active  bool                    `json:"active"`
	Results []resolver.SearchResult `json:"results"`
}

// Status reports snapshot identity and per-collection counts, or 503 with
// the load failure while no usable snapshot is published.
func (h *Handlers) Status(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Snapshot: snap.ID,
		LoadedAt: snap.LoadedAt.Format("2006-01-02T15:04:05Z07:00"),
		Counts:   snap.Counts(),
	})
}

// ListAtolls returns all atolls sorted by name.
func (h *Handlers) ListAtolls(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resolver.Atolls(snap))
}

// ListIslands returns the islands of one atoll sorted by name.
func (h *Handlers) ListIslands(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resolver.IslandsInAtoll(snap, chi.URLParam(r, "atollID")))
}

// GetIsland returns the full aggregate view for one island.
func (h *Handlers) GetIsland(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	view, err := resolver.Resolve(snap, chi.URLParam(r, "islandID"))
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			writeError(w, http.StatusNotFound, "island not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Search returns up to ten islands matching the q parameter.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	results, active := resolver.Search(snap, r.URL.Query().Get("q"))
	if results == nil {
		results = []resolver.SearchResult{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Active: active, Results: results})
}

// snapshot fetches the current snapshot, answering 503 when no usable data
// has been loaded. Selections are unavailable until a load completes.
func (h *Handlers) snapshot(w http.ResponseWriter) (*core.Snapshot, bool) {
	snap := h.store.Current()
	if !snap.Loaded() {
		msg := "no data available"
		if err := h.store.LastFailure(); err != nil {
			msg = "no data available: " + err.Error()
		}
		writeError(w, http.StatusServiceUnavailable, msg)
		return nil, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
