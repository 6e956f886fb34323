// Package testutil provides a shared island data bundle fixture for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atolldata/islandatlas/internal/bundle"
	"github.com/atolldata/islandatlas/pkg/core"
)

// BundleJSON is a small but complete bundle exercising every collection,
// including the data-quality quirks the resolver must tolerate: ids spelled
// as "1" and "1.0" and 1 interchangeably, duplicate labor-force compound
// keys, uncategorized activities, and a CSO link pointing nowhere.
const BundleJSON = `{
  "atolls": [
    {"atoll_id": "B", "atoll_name": "Beta", "abbreviation": "B"},
    {"atoll_id": "A", "atoll_name": "Alpha", "abbreviation": "A"}
  ],
  "islands": [
    {"island_id": "1", "atoll_id": "A", "island_name": "Foo", "island_name_dhivehi": "ފޯ", "fcode": "F01", "is_atoll_capital": "True", "area_hectares": "12.5", "area_sqkm": "0.125", "latitude": "4.175", "longitude": "73.509"},
    {"island_id": "2", "atoll_id": "A", "island_name": "Bar"},
    {"island_id": "3", "atoll_id": "B", "island_name": "Foolhudhoo"}
  ],
  "demographics2022": [
    {"island_id": "1.0", "total_resident_pop": "120", "male_resident_pop": 70, "female_resident_pop": "50"}
  ],
  "demographics2014": [
    {"island_id": 1, "total_maldivian_pop": "100", "total_resident_pop": "110"}
  ],
  "laborForce": [
    {"island_id": "1.0", "population_type": "resident", "gender": "male", "unemployment_rate": "4.5"},
    {"island_id": "1", "population_type": "resident", "gender": "female", "unemployment_rate": "6.0"},
    {"island_id": "1", "population_type": "resident", "gender": "male", "unemployment_rate": "5.0"}
  ],
  "households": [
    {"island_id": "1.0", "total_households": "30", "avg_household_size": "4.0"}
  ],
  "activities": [
    {"island_id": "1", "category": "diving", "name": "House Reef", "activity_id": "a1"},
    {"island_id": "1", "name": "Sandbank Picnic"},
    {"island_id": "1", "category": "diving", "name": "Wreck Dive", "activity_id": "a2"}
  ],
  "services": [
    {"island_id": "1.0", "ferry_schedule": "daily", "info_link": "http://example.invalid", "council_phone": "3310000"}
  ],
  "healthFacilities": [
    {"island_id": "1", "facility_name": "Foo Health Centre", "health_facility_id": "h1", "beds": 10, "original_location": "row 4"}
  ],
  "socialServices": [
    {"island_id": "1.0", "provider_name": "Family Centre", "social_service_id": "s1", "original_atoll": "A"}
  ],
  "schoolStatistics": [
    {"island_id": "1", "total_enrollment": "250", "teachers": "18"}
  ],
  "schools": [
    {"island_id": "1", "school_name": "Foo School", "original_location": "Alpha / Foo"}
  ],
  "csoOrganizations": [
    {"cso_id": "10", "cso_name_english": "Foo Youth Society", "phone": "7770000"},
    {"cso_id": "11", "cso_name_dhivehi": "ޖަމިއްޔާ", "registration_number": "R-11"}
  ],
  "csoIslands": [
    {"island_id": "1", "cso_id": "10.0"},
    {"island_id": "1.0", "cso_id": "11"},
    {"island_id": "1", "cso_id": "99"}
  ],
  "islandDistances": [
    {"island_id": "1.0", "distance_to_male_km": "151.2", "travel_time_speedboat": "1h 45m"}
  ],
  "accommodations": [
    {"island_id": "1", "facility_name": "Foo Inn", "facility_type": "guesthouse", "rooms": "12", "beds": "24"}
  ]
}`

// Snapshot decodes the fixture bundle.
func Snapshot(t *testing.T) *core.Snapshot {
	t.Helper()
	snap, err := bundle.Decode([]byte(BundleJSON), "fixture")
	if err != nil {
		t.Fatalf("decode fixture bundle: %v", err)
	}
	return snap
}

// WriteBundle writes the fixture bundle to a temp file and returns its path.
func WriteBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "island_data.json")
	if err := os.WriteFile(path, []byte(BundleJSON), 0o644); err != nil {
		t.Fatalf("write fixture bundle: %v", err)
	}
	return path
}
