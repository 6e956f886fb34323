package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolldata/islandatlas/internal/testutil"
	"github.com/atolldata/islandatlas/pkg/core"
)

func TestResolveBasics(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	assert.Equal(t, "1", view.Island.ID)
	assert.Equal(t, "Foo", view.Island.Name)
	require.NotNil(t, view.Atoll)
	assert.Equal(t, "Alpha", view.Atoll.Name)
	assert.Equal(t, "Foo (ފޯ)", view.Title)
	assert.Equal(t, "Alpha Atoll", view.Subtitle)
}

func TestResolveNotFound(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "nonexistent-id")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePrimaryLookupIsRaw(t *testing.T) {
	snap := testutil.Snapshot(t)

	// "1.0" normalizes to "1" but the primary lookup compares raw ids.
	_, err := Resolve(snap, "1.0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveMissingAtoll(t *testing.T) {
	snap := &core.Snapshot{
		Islands: []core.Island{{ID: "9", AtollID: "ZZ", Name: "Lost"}},
	}

	view, err := Resolve(snap, "9")
	require.NoError(t, err)
	assert.Nil(t, view.Atoll)
	assert.Equal(t, "Lost", view.Title)
	assert.Empty(t, view.Subtitle)
}

func TestResolveNormalizedJoins(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	// demographics2022 keys the island as "1.0", 2014 as the number 1.
	require.NotNil(t, view.DemographicsLatest)
	assert.Equal(t, "120", view.DemographicsLatest.TotalResidentPop)
	require.NotNil(t, view.DemographicsEarlier)
	assert.Equal(t, "100", view.DemographicsEarlier.TotalMaldivianPop)

	require.NotNil(t, view.Household)
	assert.Equal(t, "30", view.Household.TotalHouseholds)
	require.NotNil(t, view.Services)
	assert.Equal(t, "daily", view.Services.Extra["ferry_schedule"])
	require.NotNil(t, view.SchoolStatistics)
	require.NotNil(t, view.Distances)
	assert.Equal(t, "151.2", view.Distances.Extra["distance_to_male_km"])
}

func TestResolveOneToOneFirstMatchWins(t *testing.T) {
	snap := &core.Snapshot{
		Islands: []core.Island{{ID: "1", AtollID: "A", Name: "Foo"}},
		Households: []core.Household{
			{IslandID: "1.0", TotalHouseholds: "30"},
			{IslandID: "1", TotalHouseholds: "99"},
		},
	}

	view, err := Resolve(snap, "1")
	require.NoError(t, err)
	require.NotNil(t, view.Household)
	assert.Equal(t, "30", view.Household.TotalHouseholds, "duplicate one-to-one records keep the first match")
}

func TestResolveEmptyJoinsAreEmptyNotNil(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "2")
	require.NoError(t, err)

	assert.Nil(t, view.DemographicsLatest)
	assert.Nil(t, view.DemographicsEarlier)
	assert.Nil(t, view.PopulationChange)
	assert.Nil(t, view.Household)
	assert.Nil(t, view.Services)
	assert.Nil(t, view.SchoolStatistics)
	assert.Nil(t, view.Distances)

	assert.NotNil(t, view.LaborForceGroups)
	assert.Empty(t, view.LaborForceGroups)
	assert.NotNil(t, view.ActivityGroups)
	assert.Empty(t, view.ActivityGroups)
	assert.NotNil(t, view.HealthFacilities)
	assert.Empty(t, view.HealthFacilities)
	assert.NotNil(t, view.CSOOrganizations)
	assert.Empty(t, view.CSOOrganizations)
}

func TestLaborForceGrouping(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	// Three records, two distinct (population type, gender) keys. The
	// duplicate "resident - male" collapses last-write-wins but keeps
	// its first-seen position.
	require.Len(t, view.LaborForceGroups, 2)
	assert.Equal(t, "resident - male", view.LaborForceGroups[0].Key)
	assert.Equal(t, "5.0", view.LaborForceGroups[0].Record.UnemploymentRate)
	assert.Equal(t, "resident - female", view.LaborForceGroups[1].Key)
	assert.Equal(t, "6.0", view.LaborForceGroups[1].Record.UnemploymentRate)
}

func TestActivityGrouping(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	require.Len(t, view.ActivityGroups, 2)
	assert.Equal(t, "diving", view.ActivityGroups[0].Category)
	require.Len(t, view.ActivityGroups[0].Activities, 2)
	assert.Equal(t, "House Reef", view.ActivityGroups[0].Activities[0].Name)
	assert.Equal(t, "Wreck Dive", view.ActivityGroups[0].Activities[1].Name)

	// An absent category groups under "other".
	assert.Equal(t, "other", view.ActivityGroups[1].Category)
	require.Len(t, view.ActivityGroups[1].Activities, 1)
	assert.Equal(t, "Sandbank Picnic", view.ActivityGroups[1].Activities[0].Name)
}

func TestCSOTwoHopJoin(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	// Three links: two resolve (one via "10.0" vs "10"), one dangles
	// and is dropped silently. Results follow link order.
	require.Len(t, view.CSOOrganizations, 2)
	assert.Equal(t, "Foo Youth Society", view.CSOOrganizations[0].NameEnglish)
	assert.Equal(t, "11", view.CSOOrganizations[1].CSOID)
}

func TestPopulationChange(t *testing.T) {
	snap := testutil.Snapshot(t)

	view, err := Resolve(snap, "1")
	require.NoError(t, err)

	// Latest total resident (120) against earlier total Maldivian (100):
	// the asymmetric pairing the published statistics used.
	change := view.PopulationChange
	require.NotNil(t, change)
	assert.Equal(t, 100, change.Earlier)
	assert.Equal(t, 120, change.Latest)
	assert.Equal(t, 20, change.Change)
	assert.Equal(t, "20.00", change.Percent)
}

func TestPopulationChangePercentUndefined(t *testing.T) {
	snap := &core.Snapshot{
		Islands:          []core.Island{{ID: "1", AtollID: "A", Name: "Foo"}},
		Demographics2022: []core.Demographics{{IslandID: "1", TotalResidentPop: "50"}},
		Demographics2014: []core.Demographics{{IslandID: "1"}},
	}

	view, err := Resolve(snap, "1")
	require.NoError(t, err)
	require.NotNil(t, view.PopulationChange)
	assert.Equal(t, 0, view.PopulationChange.Earlier)
	assert.Equal(t, "N/A", view.PopulationChange.Percent)
}

func TestResolveOneToManyKeepsCollectionOrder(t *testing.T) {
	snap := &core.Snapshot{
		Islands: []core.Island{{ID: "1", AtollID: "A", Name: "Foo"}},
		Accommodations: []core.Accommodation{
			{IslandID: "1", FacilityName: "Second Inn"},
			{IslandID: "2", FacilityName: "Elsewhere"},
			{IslandID: "1.0", FacilityName: "Aardvark Lodge"},
		},
	}

	view, err := Resolve(snap, "1")
	require.NoError(t, err)
	require.Len(t, view.Accommodations, 2)
	assert.Equal(t, "Second Inn", view.Accommodations[0].FacilityName)
	assert.Equal(t, "Aardvark Lodge", view.Accommodations[1].FacilityName, "no re-sorting")
}

func TestResolveDoesNotMutateSnapshot(t *testing.T) {
	snap := testutil.Snapshot(t)
	before := len(snap.LaborForce)

	_, err := Resolve(snap, "1")
	require.NoError(t, err)
	_, err = Resolve(snap, "1")
	require.NoError(t, err)

	assert.Len(t, snap.LaborForce, before)
	assert.Len(t, snap.CSOLinks, 3)
}
