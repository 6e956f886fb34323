// Package bundle loads the pre-joined island data bundle from disk and
// decodes it into a core.Snapshot. The bundle is a single JSON document
// with one named array per collection; any missing key decodes to an empty
// collection, never an error. Decoding is deliberately lax beyond that:
// the core does not validate the bundle's schema, and unknown fields on
// open-schema records pass through for display.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"

	"github.com/atolldata/islandatlas/pkg/core"
)

// ErrNoIslands marks a bundle that parsed but contains no islands. The
// system treats such a load as a failure even though decoding succeeded.
var ErrNoIslands = fmt.Errorf("bundle contains no islands")

// LoadError wraps any failure to fetch, parse, or accept a bundle, keeping
// the underlying cause available for diagnostic display.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load bundle %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// rawBundle mirrors the bundle's top-level shape. Each collection arrives
// as loosely-typed records; mapstructure moves them into the typed forms.
type rawBundle struct {
	Atolls           []map[string]any `json:"atolls"`
	Islands          []map[string]any `json:"islands"`
	Demographics2022 []map[string]any `json:"demographics2022"`
	Demographics2014 []map[string]any `json:"demographics2014"`
	LaborForce       []map[string]any `json:"laborForce"`
	Households       []map[string]any `json:"households"`
	Activities       []map[string]any `json:"activities"`
	Services         []map[string]any `json:"services"`
	HealthFacilities []map[string]any `json:"healthFacilities"`
	SocialServices   []map[string]any `json:"socialServices"`
	SchoolStatistics []map[string]any `json:"schoolStatistics"`
	Schools          []map[string]any `json:"schools"`
	CSOOrganizations []map[string]any `json:"csoOrganizations"`
	CSOIslands       []map[string]any `json:"csoIslands"`
	IslandDistances  []map[string]any `json:"islandDistances"`
	Accommodations   []map[string]any `json:"accommodations"`
}

// Load reads and decodes the bundle at path into a fresh snapshot.
// Read and parse failures return a *LoadError; an empty Islands collection
// does not (the snapshot is returned and callers consult Loaded()).
func Load(path string) (*core.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Decode(data, path)
}

// Decode parses raw bundle JSON into a snapshot. The path parameter is only
// used for error reporting.
func Decode(data []byte, path string) (*core.Snapshot, error) {
	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	snap := &core.Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now().UTC(),
	}

	if err := firstErr(
		decodeRecords(raw.Atolls, &snap.Atolls),
		decodeRecords(raw.Islands, &snap.Islands),
		decodeRecords(raw.Demographics2022, &snap.Demographics2022),
		decodeRecords(raw.Demographics2014, &snap.Demographics2014),
		decodeRecords(raw.LaborForce, &snap.LaborForce),
		decodeRecords(raw.Households, &snap.Households),
		decodeRecords(raw.Activities, &snap.Activities),
		decodeRecords(raw.Services, &snap.Services),
		decodeRecords(raw.HealthFacilities, &snap.HealthFacilities),
		decodeRecords(raw.SocialServices, &snap.SocialServices),
		decodeRecords(raw.SchoolStatistics, &snap.SchoolStatistics),
		decodeRecords(raw.Schools, &snap.Schools),
		decodeRecords(raw.CSOOrganizations, &snap.CSOOrganizations),
		decodeRecords(raw.CSOIslands, &snap.CSOLinks),
		decodeRecords(raw.IslandDistances, &snap.Distances),
		decodeRecords(raw.Accommodations, &snap.Accommodations),
	); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return snap, nil
}

// decodeRecords maps a slice of loose records into typed records. Weak
// typing lets numeric JSON values land in string fields, which the bundle
// relies on (the same column may be "120" in one row and 120 in the next).
func decodeRecords[T any](in []map[string]any, out *[]T) error {
	if len(in) == 0 {
		*out = []T{}
		return nil
	}
	result := make([]T, 0, len(in))
	for i, rec := range in {
		var typed T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &typed,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return err
		}
		if err := dec.Decode(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		result = append(result, typed)
	}
	*out = result
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
