package core

import "time"

// Snapshot holds the sixteen record collections loaded from one data bundle.
// A snapshot is immutable after construction: a reload produces a fresh
// Snapshot value rather than mutating an existing one, so readers never need
// locking and a stale in-flight load can never corrupt a published snapshot.
type Snapshot struct {
	ID       string    `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`

	Atolls           []Atoll            `json:"atolls"`
	Islands          []Island           `json:"islands"`
	Demographics2022 []Demographics     `json:"demographics2022"`
	Demographics2014 []Demographics     `json:"demographics2014"`
	LaborForce       []LaborForce       `json:"laborForce"`
	Households       []Household        `json:"households"`
	Activities       []Activity         `json:"activities"`
	Services         []Service          `json:"services"`
	HealthFacilities []HealthFacility   `json:"healthFacilities"`
	SocialServices   []SocialService    `json:"socialServices"`
	SchoolStatistics []SchoolStatistics `json:"schoolStatistics"`
	Schools          []School           `json:"schools"`
	CSOOrganizations []CSOOrganization  `json:"csoOrganizations"`
	CSOLinks         []CSOLink          `json:"csoIslands"`
	Distances        []Distance         `json:"islandDistances"`
	Accommodations   []Accommodation    `json:"accommodations"`
}

// Loaded reports whether the snapshot carries a non-empty Islands
// collection. A bundle without islands is treated as a load failure by
// callers even though decoding it succeeds.
func (s *Snapshot) Loaded() bool {
	return s != nil && len(s.Islands) > 0
}

// Counts returns per-collection record counts, keyed by the bundle's
// collection names. Used by the status endpoint and load-time logging.
func (s *Snapshot) Counts() map[string]int {
	if s == nil {
		return nil
	}
	return map[string]int{
		"atolls":           len(s.Atolls),
		"islands":          len(s.Islands),
		"demographics2022": len(s.Demographics2022),
		"demographics2014": len(s.Demographics2014),
		"laborForce":       len(s.LaborForce),
		"households":       len(s.Households),
		"activities":       len(s.Activities),
		"services":         len(s.Services),
		"healthFacilities": len(s.HealthFacilities),
		"socialServices":   len(s.SocialServices),
		"schoolStatistics": len(s.SchoolStatistics),
		"schools":          len(s.Schools),
		"csoOrganizations": len(s.CSOOrganizations),
		"csoIslands":       len(s.CSOLinks),
		"islandDistances":  len(s.Distances),
		"accommodations":   len(s.Accommodations),
	}
}
