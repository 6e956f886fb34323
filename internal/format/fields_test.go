package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolldata/islandatlas/pkg/core"
)

func TestExtraFieldsExcludesReservedAndEmpty(t *testing.T) {
	fields := ExtraFields(map[string]string{
		"distance_to_male_km": "151.2",
		"travel_time":         "1h 45m",
		"island_id":           "1",
		"atoll_id":            "A",
		"original_location":   "row 4",
		"notes":               "",
	})

	require.Len(t, fields, 2)
	assert.Equal(t, "distance_to_male_km", fields[0].Key)
	assert.Equal(t, "Distance To Male Km", fields[0].Label)
	assert.Equal(t, "151.2", fields[0].Value)
	assert.Equal(t, "travel_time", fields[1].Key)
}

func TestExtraFieldsKeepPlaceholderValues(t *testing.T) {
	fields := ExtraFields(map[string]string{
		"fax":           "N/A",
		"phone":         "null",
		"council_email": "undefined",
	})

	require.Len(t, fields, 3, "placeholder values keep their label")
	assert.Equal(t, "council_email", fields[0].Key)
	for _, f := range fields {
		assert.Equal(t, NoData, f.Value)
	}
}

func TestGeographicFieldsShowLabelsForMissingValues(t *testing.T) {
	island := core.Island{ID: "1", Name: "Foo", IsAtollCapital: "True"}

	fields := GeographicFields(island, "Alpha")
	require.Len(t, fields, 7)

	byKey := map[string]string{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	assert.Equal(t, NoData, byKey["fcode"], "the label is shown even when the value is missing")
	assert.Equal(t, "Alpha", byKey["atoll"])
	assert.Equal(t, "Yes", byKey["is_atoll_capital"])
	assert.Equal(t, NoData, byKey["latitude"])
}

func TestDemographicsFieldsOrderAndFormatting(t *testing.T) {
	d := core.Demographics{
		TotalResidentPop: "1234.0",
		SexRatio:         "103.5",
	}

	fields := DemographicsFields(d)
	require.Len(t, fields, 26)
	assert.Equal(t, "total_resident_pop", fields[0].Key)
	assert.Equal(t, "1,234", fields[0].Value)

	byKey := map[string]string{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	assert.Equal(t, "103.5", byKey["sex_ratio"])
	assert.Equal(t, NoData, byKey["growth_rate_from_2014"])
}

func TestAccommodationFieldsSkipEmpty(t *testing.T) {
	fields := AccommodationFields(core.Accommodation{
		FacilityName: "Foo Inn",
		Rooms:        "12",
		Email:        "stay@fooinn.mv",
	})

	require.Len(t, fields, 2)
	assert.Equal(t, "Rooms", fields[0].Label)
	assert.Equal(t, "12", fields[0].Value)
	assert.Equal(t, "stay@fooinn.mv", fields[1].Value)
}

func TestCSOFieldsSkipEmpty(t *testing.T) {
	fields := CSOFields(core.CSOOrganization{Phone: "7770000"})
	require.Len(t, fields, 1)
	assert.Equal(t, "Phone", fields[0].Label)
	assert.Equal(t, "7,770,000", fields[0].Value, "numeric-looking values gain grouping uniformly")
}
