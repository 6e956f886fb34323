// Package resolver joins the sixteen bundle collections into per-island
// aggregate views. Every function is a pure read over an immutable
// snapshot: resolving never mutates stored collections and returns a new
// view value each call.
package resolver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atolldata/islandatlas/pkg/core"
)

// ErrNotFound is returned when no island carries the requested primary id.
var ErrNotFound = errors.New("island not found")

// IslandView aggregates every record related to one island. Optional
// one-to-one joins are nil when absent; list joins are empty, never nil.
type IslandView struct {
	Island   core.Island `json:"island"`
	Atoll    *core.Atoll `json:"atoll,omitempty"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`

	DemographicsLatest  *core.Demographics `json:"demographicsLatest,omitempty"`
	DemographicsEarlier *core.Demographics `json:"demographicsEarlier,omitempty"`
	PopulationChange    *PopulationChange  `json:"populationChange,omitempty"`

	LaborForceGroups []LaborGroup           `json:"laborForceGroups"`
	Household        *core.Household        `json:"household,omitempty"`
	Services         *core.Service          `json:"services,omitempty"`
	HealthFacilities []core.HealthFacility  `json:"healthFacilities"`
	SocialServices   []core.SocialService   `json:"socialServices"`
	Schools          []core.School          `json:"schools"`
	SchoolStatistics *core.SchoolStatistics `json:"schoolStatistics,omitempty"`
	Distances        *core.Distance         `json:"distances,omitempty"`
	Accommodations   []core.Accommodation   `json:"accommodations"`
	ActivityGroups   []ActivityGroup        `json:"activityGroups"`
	CSOOrganizations []core.CSOOrganization `json:"csoOrganizations"`
}

// LaborGroup is one (population type, gender) labor-force entry. Groups
// appear in first-insertion order of their compound key; duplicate keys
// collapse last-write-wins.
type LaborGroup struct {
	PopulationType string          `json:"populationType"`
	Gender         string          `json:"gender"`
	Key            string          `json:"key"`
	Record         core.LaborForce `json:"record"`
}

// ActivityGroup is the list of activities sharing one category, in source
// order. Activities without a category group under "other".
type ActivityGroup struct {
	Category   string          `json:"category"`
	Activities []core.Activity `json:"activities"`
}

// PopulationChange is the derived census comparison between the two
// demographic vintages. The pairing is intentionally the one the published
// statistics used: the latest vintage's total resident population against
// the earlier vintage's total Maldivian population.
type PopulationChange struct {
	Earlier int    `json:"earlier"`
	Latest  int    `json:"latest"`
	Change  int    `json:"change"`
	Percent string `json:"percent"`
}

// Resolve builds the aggregate view for the island with the given primary
// id, or ErrNotFound. The primary lookup compares raw ids (selection
// values originate from the same collection); every other join compares
// normalized ids.
func Resolve(snap *core.Snapshot, islandID string) (*IslandView, error) {
	var island *core.Island
	for i := range snap.Islands {
		if snap.Islands[i].ID == islandID {
			island = &snap.Islands[i]
			break
		}
	}
	if island == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, islandID)
	}

	view := &IslandView{
		Island:           *island,
		LaborForceGroups: []LaborGroup{},
		HealthFacilities: []core.HealthFacility{},
		SocialServices:   []core.SocialService{},
		Schools:          []core.School{},
		Accommodations:   []core.Accommodation{},
		ActivityGroups:   []ActivityGroup{},
		CSOOrganizations: []core.CSOOrganization{},
	}

	for i := range snap.Atolls {
		if snap.Atolls[i].ID == island.AtollID {
			view.Atoll = &snap.Atolls[i]
			break
		}
	}
	view.Title = titleFor(*island)
	view.Subtitle = subtitleFor(view.Atoll)

	// Normalize the primary id once and reuse it for every join below.
	id, ok := core.NormalizeID(island.ID)
	if !ok {
		return view, nil
	}

	// One-to-one-or-absent joins: first match wins.
	for i := range snap.Demographics2022 {
		if matches(snap.Demographics2022[i].IslandID, id) {
			view.DemographicsLatest = &snap.Demographics2022[i]
			break
		}
	}
	for i := range snap.Demographics2014 {
		if matches(snap.Demographics2014[i].IslandID, id) {
			view.DemographicsEarlier = &snap.Demographics2014[i]
			break
		}
	}
	for i := range snap.Households {
		if matches(snap.Households[i].IslandID, id) {
			view.Household = &snap.Households[i]
			break
		}
	}
	for i := range snap.Services {
		if matches(snap.Services[i].IslandID, id) {
			view.Services = &snap.Services[i]
			break
		}
	}
	for i := range snap.SchoolStatistics {
		if matches(snap.SchoolStatistics[i].IslandID, id) {
			view.SchoolStatistics = &snap.SchoolStatistics[i]
			break
		}
	}
	for i := range snap.Distances {
		if matches(snap.Distances[i].IslandID, id) {
			view.Distances = &snap.Distances[i]
			break
		}
	}

	// One-to-many joins: all matches, original collection order.
	var labor []core.LaborForce
	for _, lf := range snap.LaborForce {
		if matches(lf.IslandID, id) {
			labor = append(labor, lf)
		}
	}
	view.LaborForceGroups = groupLaborForce(labor)

	for _, hf := range snap.HealthFacilities {
		if matches(hf.IslandID, id) {
			view.HealthFacilities = append(view.HealthFacilities, hf)
		}
	}
	for _, ss := range snap.SocialServices {
		if matches(ss.IslandID, id) {
			view.SocialServices = append(view.SocialServices, ss)
		}
	}
	for _, sc := range snap.Schools {
		if matches(sc.IslandID, id) {
			view.Schools = append(view.Schools, sc)
		}
	}
	for _, acc := range snap.Accommodations {
		if matches(acc.IslandID, id) {
			view.Accommodations = append(view.Accommodations, acc)
		}
	}

	var activities []core.Activity
	for _, a := range snap.Activities {
		if matches(a.IslandID, id) {
			activities = append(activities, a)
		}
	}
	view.ActivityGroups = groupActivities(activities)

	// Two-hop join: island -> cso links -> organizations. Links whose
	// organization cannot be resolved are dropped silently.
	for _, link := range snap.CSOLinks {
		if !matches(link.IslandID, id) {
			continue
		}
		for i := range snap.CSOOrganizations {
			if core.SameID(snap.CSOOrganizations[i].CSOID, link.CSOID) {
				view.CSOOrganizations = append(view.CSOOrganizations, snap.CSOOrganizations[i])
				break
			}
		}
	}

	view.PopulationChange = populationChange(view.DemographicsLatest, view.DemographicsEarlier)

	return view, nil
}

// matches reports whether a record's foreign key refers to the already
// normalized primary id.
func matches(foreignKey, normalizedID string) bool {
	fk, ok := core.NormalizeID(foreignKey)
	return ok && fk == normalizedID
}

// groupLaborForce collapses records onto their (population type, gender)
// compound key. Later records overwrite earlier ones, but each group keeps
// the position of its first appearance.
func groupLaborForce(records []core.LaborForce) []LaborGroup {
	groups := []LaborGroup{}
	index := map[string]int{}
	for _, rec := range records {
		key := rec.PopulationType + " - " + rec.Gender
		if i, ok := index[key]; ok {
			groups[i].Record = rec
			continue
		}
		index[key] = len(groups)
		groups = append(groups, LaborGroup{
			PopulationType: rec.PopulationType,
			Gender:         rec.Gender,
			Key:            key,
			Record:         rec,
		})
	}
	return groups
}

// groupActivities groups activities by category in first-encountered
// order, preserving source order within each group. An absent category
// groups under "other".
func groupActivities(activities []core.Activity) []ActivityGroup {
	groups := []ActivityGroup{}
	index := map[string]int{}
	for _, a := range activities {
		category := a.Category
		if category == "" {
			category = "other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, ActivityGroup{Category: category})
		}
		groups[i].Activities = append(groups[i].Activities, a)
	}
	return groups
}

// populationChange derives the census comparison when both vintages are
// present. Percent change is "N/A" when the earlier figure is zero or
// missing.
func populationChange(latest, earlier *core.Demographics) *PopulationChange {
	if latest == nil || earlier == nil {
		return nil
	}
	latestPop := parseCount(latest.TotalResidentPop)
	earlierPop := parseCount(earlier.TotalMaldivianPop)
	change := latestPop - earlierPop

	percent := "N/A"
	if earlierPop > 0 {
		percent = strconv.FormatFloat(float64(change)/float64(earlierPop)*100, 'f', 2, 64)
	}

	return &PopulationChange{
		Earlier: earlierPop,
		Latest:  latestPop,
		Change:  change,
		Percent: percent,
	}
}

// parseCount reads a population figure, tolerating decimal-formatted
// integers; anything unparseable counts as zero.
func parseCount(v string) int {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

func titleFor(island core.Island) string {
	if island.NameDhivehi != "" {
		return fmt.Sprintf("%s (%s)", island.Name, island.NameDhivehi)
	}
	return island.Name
}

func subtitleFor(atoll *core.Atoll) string {
	if atoll == nil {
		return ""
	}
	return atoll.Name + " Atoll"
}
