// Package core defines the record types for the sixteen island data
// collections and the immutable snapshot that holds them after a bundle
// load. All scalar fields are kept as strings: the source bundle mixes
// numeric and textual representations freely, and formatting is a display
// concern (see internal/format).
package core

// Atoll is an administrative grouping of islands.
type Atoll struct {
	ID           string `json:"atoll_id" mapstructure:"atoll_id"`
	Name         string `json:"atoll_name" mapstructure:"atoll_name"`
	Abbreviation string `json:"abbreviation,omitempty" mapstructure:"abbreviation"`
}

// Island is the primary navigable unit.
type Island struct {
	ID             string `json:"island_id" mapstructure:"island_id"`
	AtollID        string `json:"atoll_id" mapstructure:"atoll_id"`
	Name           string `json:"island_name" mapstructure:"island_name"`
	NameDhivehi    string `json:"island_name_dhivehi,omitempty" mapstructure:"island_name_dhivehi"`
	FCode          string `json:"fcode,omitempty" mapstructure:"fcode"`
	IsAtollCapital string `json:"is_atoll_capital,omitempty" mapstructure:"is_atoll_capital"`
	AreaHectares   string `json:"area_hectares,omitempty" mapstructure:"area_hectares"`
	AreaSqKm       string `json:"area_sqkm,omitempty" mapstructure:"area_sqkm"`
	Latitude       string `json:"latitude,omitempty" mapstructure:"latitude"`
	Longitude      string `json:"longitude,omitempty" mapstructure:"longitude"`
}

// AtollCapital reports whether the island is marked as its atoll's capital.
// The source data stores the flag as the strings "True"/"False".
func (i Island) AtollCapital() bool {
	return i.IsAtollCapital == "True" || i.IsAtollCapital == "true"
}

// Demographics is one census snapshot for an island. Two vintages of this
// collection exist in the bundle (2022 and 2014); at most one record per
// island per vintage.
type Demographics struct {
	IslandID            string `json:"island_id" mapstructure:"island_id"`
	TotalResidentPop    string `json:"total_resident_pop,omitempty" mapstructure:"total_resident_pop"`
	MaleResidentPop     string `json:"male_resident_pop,omitempty" mapstructure:"male_resident_pop"`
	FemaleResidentPop   string `json:"female_resident_pop,omitempty" mapstructure:"female_resident_pop"`
	TotalMaldivianPop   string `json:"total_maldivian_pop,omitempty" mapstructure:"total_maldivian_pop"`
	MaleMaldivianPop    string `json:"male_maldivian_pop,omitempty" mapstructure:"male_maldivian_pop"`
	FemaleMaldivianPop  string `json:"female_maldivian_pop,omitempty" mapstructure:"female_maldivian_pop"`
	TotalForeignPop     string `json:"total_foreign_pop,omitempty" mapstructure:"total_foreign_pop"`
	MaleForeignPop      string `json:"male_foreign_pop,omitempty" mapstructure:"male_foreign_pop"`
	FemaleForeignPop    string `json:"female_foreign_pop,omitempty" mapstructure:"female_foreign_pop"`
	Child0To17          string `json:"child_0_17,omitempty" mapstructure:"child_0_17"`
	Child0To14          string `json:"child_0_14,omitempty" mapstructure:"child_0_14"`
	Adolescent10To19    string `json:"adolescent_10_19,omitempty" mapstructure:"adolescent_10_19"`
	WorkingAge15To64    string `json:"working_age_15_64,omitempty" mapstructure:"working_age_15_64"`
	Youth15To24         string `json:"youth_15_24,omitempty" mapstructure:"youth_15_24"`
	Youth18To35         string `json:"youth_18_35,omitempty" mapstructure:"youth_18_35"`
	Elderly65Plus       string `json:"elderly_65_plus,omitempty" mapstructure:"elderly_65_plus"`
	SexRatio            string `json:"sex_ratio,omitempty" mapstructure:"sex_ratio"`
	DependencyRatio     string `json:"dependency_ratio,omitempty" mapstructure:"dependency_ratio"`
	ChildDependency     string `json:"child_dependency_ratio,omitempty" mapstructure:"child_dependency_ratio"`
	AgedDependency      string `json:"aged_dependency_ratio,omitempty" mapstructure:"aged_dependency_ratio"`
	PopDensityPerSqKm   string `json:"pop_density_per_sqkm,omitempty" mapstructure:"pop_density_per_sqkm"`
	MedianAgeTotal      string `json:"median_age_total,omitempty" mapstructure:"median_age_total"`
	MedianAgeMaldivian  string `json:"median_age_maldivian,omitempty" mapstructure:"median_age_maldivian"`
	MedianAgeForeign    string `json:"median_age_foreign,omitempty" mapstructure:"median_age_foreign"`
	ForeignPopPercent   string `json:"foreign_pop_percent,omitempty" mapstructure:"foreign_pop_percent"`
	GrowthRateFrom2014  string `json:"growth_rate_from_2014,omitempty" mapstructure:"growth_rate_from_2014"`
}

// LaborForce is one labor statistics record, keyed by island plus the
// (population type, gender) pair. The bundle may carry duplicates on that
// compound key; the resolver collapses them last-write-wins.
type LaborForce struct {
	IslandID            string `json:"island_id" mapstructure:"island_id"`
	PopulationType      string `json:"population_type" mapstructure:"population_type"`
	Gender              string `json:"gender" mapstructure:"gender"`
	ParticipationRate   string `json:"labor_force_part_rate,omitempty" mapstructure:"labor_force_part_rate"`
	EmploymentToPop     string `json:"employment_to_pop_ratio,omitempty" mapstructure:"employment_to_pop_ratio"`
	UnemploymentRate    string `json:"unemployment_rate,omitempty" mapstructure:"unemployment_rate"`
	InactivityRate      string `json:"inactivity_rate,omitempty" mapstructure:"inactivity_rate"`
	YouthUnemp15To24    string `json:"youth_unemp_15_24,omitempty" mapstructure:"youth_unemp_15_24"`
	YouthUnemp18To35    string `json:"youth_unemp_18_35,omitempty" mapstructure:"youth_unemp_18_35"`
	NEETRate15To24      string `json:"neet_rate_15_24,omitempty" mapstructure:"neet_rate_15_24"`
	NEETRate18To35      string `json:"neet_rate_18_35,omitempty" mapstructure:"neet_rate_18_35"`
	CombinedUnempPotLF  string `json:"combined_unemp_pot_lf,omitempty" mapstructure:"combined_unemp_pot_lf"`
}

// Household is the housing-unit census record for an island.
type Household struct {
	IslandID              string `json:"island_id" mapstructure:"island_id"`
	TotalHouseholds       string `json:"total_households,omitempty" mapstructure:"total_households"`
	TotalHousingUnits     string `json:"total_housing_units,omitempty" mapstructure:"total_housing_units"`
	HouseFlatApartment    string `json:"house_flat_apartment,omitempty" mapstructure:"house_flat_apartment"`
	BoatsMobileUnits      string `json:"boats_mobile_units,omitempty" mapstructure:"boats_mobile_units"`
	BuildingsNotHabitable string `json:"buildings_not_habitable,omitempty" mapstructure:"buildings_not_habitable"`
	OtherHouseholdUnits   string `json:"other_household_units,omitempty" mapstructure:"other_household_units"`
	CollectiveLivingQtrs  string `json:"collective_living_qtrs,omitempty" mapstructure:"collective_living_qtrs"`
	LaborStaffQuarters    string `json:"labor_staff_quarters,omitempty" mapstructure:"labor_staff_quarters"`
	OtherCLQ              string `json:"other_clq,omitempty" mapstructure:"other_clq"`
	AvgHouseholdSize      string `json:"avg_household_size,omitempty" mapstructure:"avg_household_size"`
}

// Activity is one thing-to-do entry, grouped by category for display.
type Activity struct {
	IslandID   string `json:"island_id" mapstructure:"island_id"`
	Category   string `json:"category,omitempty" mapstructure:"category"`
	Name       string `json:"name" mapstructure:"name"`
	ActivityID string `json:"activity_id,omitempty" mapstructure:"activity_id"`
}

// CSOOrganization is a civil society organization, reached from islands
// through the CSOLink join table.
type CSOOrganization struct {
	CSOID              string `json:"cso_id" mapstructure:"cso_id"`
	NameEnglish        string `json:"cso_name_english,omitempty" mapstructure:"cso_name_english"`
	NameDhivehi        string `json:"cso_name_dhivehi,omitempty" mapstructure:"cso_name_dhivehi"`
	Phone              string `json:"phone,omitempty" mapstructure:"phone"`
	Email              string `json:"email,omitempty" mapstructure:"email"`
	WebPresence        string `json:"web_presence,omitempty" mapstructure:"web_presence"`
	RegistrationNumber string `json:"registration_number,omitempty" mapstructure:"registration_number"`
}

// DisplayName returns the organization's English name, falling back to the
// Dhivehi name, then a placeholder.
func (c CSOOrganization) DisplayName() string {
	if c.NameEnglish != "" {
		return c.NameEnglish
	}
	if c.NameDhivehi != "" {
		return c.NameDhivehi
	}
	return "Unnamed Organization"
}

// CSOLink is a pure join record between an island and a CSO.
type CSOLink struct {
	IslandID string `json:"island_id" mapstructure:"island_id"`
	CSOID    string `json:"cso_id" mapstructure:"cso_id"`
}

// Service is the travel/contact services record for an island. The schema is
// open: fields not modeled here land in Extra.
type Service struct {
	IslandID string            `json:"island_id" mapstructure:"island_id"`
	InfoLink string            `json:"info_link,omitempty" mapstructure:"info_link"`
	Extra    map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// HealthFacility is an open-schema health facility record.
type HealthFacility struct {
	IslandID     string            `json:"island_id" mapstructure:"island_id"`
	FacilityName string            `json:"facility_name,omitempty" mapstructure:"facility_name"`
	Extra        map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// SocialService is an open-schema social service provider record.
type SocialService struct {
	IslandID     string            `json:"island_id" mapstructure:"island_id"`
	ProviderName string            `json:"provider_name,omitempty" mapstructure:"provider_name"`
	Extra        map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// School is an open-schema school record.
type School struct {
	IslandID         string            `json:"island_id" mapstructure:"island_id"`
	SchoolName       string            `json:"school_name,omitempty" mapstructure:"school_name"`
	OriginalLocation string            `json:"original_location,omitempty" mapstructure:"original_location"`
	Extra            map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// SchoolStatistics is the open-schema enrollment record for an island.
type SchoolStatistics struct {
	IslandID string            `json:"island_id" mapstructure:"island_id"`
	Extra    map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// Distance is the open-schema distance/travel record for an island.
type Distance struct {
	IslandID string            `json:"island_id" mapstructure:"island_id"`
	Extra    map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// Accommodation is a resort or guesthouse record.
type Accommodation struct {
	IslandID     string            `json:"island_id" mapstructure:"island_id"`
	FacilityName string            `json:"facility_name,omitempty" mapstructure:"facility_name"`
	FacilityType string            `json:"facility_type,omitempty" mapstructure:"facility_type"`
	Rooms        string            `json:"rooms,omitempty" mapstructure:"rooms"`
	Beds         string            `json:"beds,omitempty" mapstructure:"beds"`
	Berths       string            `json:"berths,omitempty" mapstructure:"berths"`
	Phone        string            `json:"phone,omitempty" mapstructure:"phone"`
	Email        string            `json:"email,omitempty" mapstructure:"email"`
	Website      string            `json:"website,omitempty" mapstructure:"website"`
	Fax          string            `json:"fax,omitempty" mapstructure:"fax"`
	ResortPhone  string            `json:"resort_phone,omitempty" mapstructure:"resort_phone"`
	ResortEmail  string            `json:"resort_email,omitempty" mapstructure:"resort_email"`
	Address      string            `json:"address,omitempty" mapstructure:"address"`
	Operator     string            `json:"operator,omitempty" mapstructure:"operator"`
	OwnerLessee  string            `json:"owner_lessee,omitempty" mapstructure:"owner_lessee"`
	Management   string            `json:"management,omitempty" mapstructure:"management"`
	Extra        map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// ReservedKeys are internal identifier and provenance fields excluded from
// free-form "show all fields" rendering. The set is shared by the resolver
// and every renderer so the exclusion list lives in exactly one place.
var ReservedKeys = map[string]struct{}{
	"island_id":          {},
	"atoll_id":           {},
	"cso_id":             {},
	"health_facility_id": {},
	"social_service_id":  {},
	"activity_id":        {},
	"original_location":  {},
	"original_atoll":     {},
	"original_island":    {},
	"info_link":          {},
}

// Reserved reports whether key is part of the reserved-key set.
func Reserved(key string) bool {
	_, ok := ReservedKeys[key]
	return ok
}
