// Package store holds the process's current data snapshot.
//
// Snapshots are immutable after construction; the store only swaps the
// pointer to the latest one. A reload therefore publishes a whole new
// snapshot atomically, and a stale in-flight load can at worst publish
// last — it can never interleave with readers of an earlier snapshot.
package store

import (
	"sync"

	"github.com/atolldata/islandatlas/pkg/core"
)

// Store publishes and hands out the current snapshot.
type Store struct {
	mu      sync.RWMutex
	snap    *core.Snapshot
	lastErr error
}

// New creates an empty store. Current returns nil until the first Publish.
func New() *Store {
	return &Store{}
}

// Publish replaces the current snapshot wholesale and clears any recorded
// load failure. There is no merge: the previous snapshot is dropped and
// readers pick up the new one on their next Current call.
func (s *Store) Publish(snap *core.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.lastErr = nil
}

// RecordFailure keeps the most recent load failure for diagnostic display.
// The previously published snapshot, if any, stays in place.
func (s *Store) RecordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// LastFailure returns the most recent load failure, or nil.
func (s *Store) LastFailure() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Current returns the most recently published snapshot, or nil if no
// bundle has been loaded yet.
func (s *Store) Current() *core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Ready reports whether a usable snapshot (one with islands) has been
// published. While false, selection and search are unavailable.
func (s *Store) Ready() bool {
	return s.Current().Loaded()
}
