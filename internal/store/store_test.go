package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atolldata/islandatlas/pkg/core"
)

func TestStoreEmpty(t *testing.T) {
	st := New()

	assert.Nil(t, st.Current())
	assert.False(t, st.Ready())
	assert.NoError(t, st.LastFailure())
}

func TestPublishReplacesWholesale(t *testing.T) {
	st := New()

	first := &core.Snapshot{ID: "one", Islands: []core.Island{{ID: "1"}}}
	second := &core.Snapshot{ID: "two", Islands: []core.Island{{ID: "2"}, {ID: "3"}}}

	st.Publish(first)
	assert.True(t, st.Ready())
	assert.Equal(t, "one", st.Current().ID)

	st.Publish(second)
	assert.Equal(t, "two", st.Current().ID)
	assert.Len(t, st.Current().Islands, 2, "no merge with the prior snapshot")
}

func TestEmptySnapshotIsNotReady(t *testing.T) {
	st := New()
	st.Publish(&core.Snapshot{ID: "empty"})

	assert.NotNil(t, st.Current())
	assert.False(t, st.Ready())
}

func TestPublishClearsRecordedFailure(t *testing.T) {
	st := New()
	st.RecordFailure(errors.New("boom"))
	assert.Error(t, st.LastFailure())

	st.Publish(&core.Snapshot{Islands: []core.Island{{ID: "1"}}})
	assert.NoError(t, st.LastFailure())
}

func TestRecordFailureKeepsSnapshot(t *testing.T) {
	st := New()
	st.Publish(&core.Snapshot{ID: "good", Islands: []core.Island{{ID: "1"}}})

	st.RecordFailure(errors.New("reload failed"))

	assert.Equal(t, "good", st.Current().ID, "a failed reload leaves the previous snapshot in place")
	assert.True(t, st.Ready())
	assert.Error(t, st.LastFailure())
}
