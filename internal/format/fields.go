package format

import (
	"sort"
	"strings"

	"github.com/atolldata/islandatlas/pkg/core"
)

// Field is one label/value pair ready for display.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func fixed(key, raw string) Field {
	return Field{Key: key, Label: Label(key), Value: Value(raw)}
}

// ExtraFields renders the open-schema remainder of a record: reserved keys
// and empty values are excluded, the rest appear with humanized labels in
// sorted key order (open-schema maps carry no source ordering to preserve).
// Placeholder values ("N/A", "null", "undefined") keep their key: the label
// is shown with the no-data indicator rather than the field vanishing.
func ExtraFields(extra map[string]string) []Field {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if core.Reserved(k) || strings.TrimSpace(extra[k]) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fixed(k, extra[k]))
	}
	return fields
}

// GeographicFields lists an island's fixed geographic attributes. Labels
// are always shown; absent values render as the no-data indicator.
func GeographicFields(island core.Island, atollName string) []Field {
	capital := "No"
	if island.AtollCapital() {
		capital = "Yes"
	}
	return []Field{
		{Key: "fcode", Label: "Island Code", Value: Value(island.FCode)},
		{Key: "atoll", Label: "Atoll", Value: Value(atollName)},
		{Key: "is_atoll_capital", Label: "Atoll Capital", Value: capital},
		{Key: "area_hectares", Label: "Area (hectares)", Value: Value(island.AreaHectares)},
		{Key: "area_sqkm", Label: "Area (km²)", Value: Value(island.AreaSqKm)},
		{Key: "latitude", Label: "Latitude", Value: Value(island.Latitude)},
		{Key: "longitude", Label: "Longitude", Value: Value(island.Longitude)},
	}
}

// DemographicsFields lists every census field of one vintage in the
// order the published tables use.
func DemographicsFields(d core.Demographics) []Field {
	return []Field{
		{Key: "total_resident_pop", Label: "Total Resident Population", Value: Value(d.TotalResidentPop)},
		{Key: "male_resident_pop", Label: "Male Resident Population", Value: Value(d.MaleResidentPop)},
		{Key: "female_resident_pop", Label: "Female Resident Population", Value: Value(d.FemaleResidentPop)},
		{Key: "total_maldivian_pop", Label: "Total Maldivian Population", Value: Value(d.TotalMaldivianPop)},
		{Key: "male_maldivian_pop", Label: "Male Maldivian Population", Value: Value(d.MaleMaldivianPop)},
		{Key: "female_maldivian_pop", Label: "Female Maldivian Population", Value: Value(d.FemaleMaldivianPop)},
		{Key: "total_foreign_pop", Label: "Total Foreign Population", Value: Value(d.TotalForeignPop)},
		{Key: "male_foreign_pop", Label: "Male Foreign Population", Value: Value(d.MaleForeignPop)},
		{Key: "female_foreign_pop", Label: "Female Foreign Population", Value: Value(d.FemaleForeignPop)},
		{Key: "child_0_17", Label: "Children (0-17 years)", Value: Value(d.Child0To17)},
		{Key: "child_0_14", Label: "Children (0-14 years)", Value: Value(d.Child0To14)},
		{Key: "adolescent_10_19", Label: "Adolescent (10-19 years)", Value: Value(d.Adolescent10To19)},
		{Key: "working_age_15_64", Label: "Working Age (15-64 years)", Value: Value(d.WorkingAge15To64)},
		{Key: "youth_15_24", Label: "Youth (15-24 years)", Value: Value(d.Youth15To24)},
		{Key: "youth_18_35", Label: "Youth (18-35 years)", Value: Value(d.Youth18To35)},
		{Key: "elderly_65_plus", Label: "Elderly (65+ years)", Value: Value(d.Elderly65Plus)},
		{Key: "sex_ratio", Label: "Sex Ratio", Value: Value(d.SexRatio)},
		{Key: "dependency_ratio", Label: "Dependency Ratio", Value: Value(d.DependencyRatio)},
		{Key: "child_dependency_ratio", Label: "Child Dependency Ratio", Value: Value(d.ChildDependency)},
		{Key: "aged_dependency_ratio", Label: "Aged Dependency Ratio", Value: Value(d.AgedDependency)},
		{Key: "pop_density_per_sqkm", Label: "Population Density (per km²)", Value: Value(d.PopDensityPerSqKm)},
		{Key: "median_age_total", Label: "Median Age (Total)", Value: Value(d.MedianAgeTotal)},
		{Key: "median_age_maldivian", Label: "Median Age (Maldivian)", Value: Value(d.MedianAgeMaldivian)},
		{Key: "median_age_foreign", Label: "Median Age (Foreign)", Value: Value(d.MedianAgeForeign)},
		{Key: "foreign_pop_percent", Label: "Foreign Population %", Value: Value(d.ForeignPopPercent)},
		{Key: "growth_rate_from_2014", Label: "Growth Rate from 2014 (%)", Value: Value(d.GrowthRateFrom2014)},
	}
}

// LaborForceFields lists the rate fields of one labor-force record.
func LaborForceFields(lf core.LaborForce) []Field {
	return []Field{
		{Key: "labor_force_part_rate", Label: "Labor Force Participation Rate (%)", Value: Value(lf.ParticipationRate)},
		{Key: "employment_to_pop_ratio", Label: "Employment to Population Ratio (%)", Value: Value(lf.EmploymentToPop)},
		{Key: "unemployment_rate", Label: "Unemployment Rate (%)", Value: Value(lf.UnemploymentRate)},
		{Key: "inactivity_rate", Label: "Inactivity Rate (%)", Value: Value(lf.InactivityRate)},
		{Key: "youth_unemp_15_24", Label: "Youth Unemployment 15-24 (%)", Value: Value(lf.YouthUnemp15To24)},
		{Key: "youth_unemp_18_35", Label: "Youth Unemployment 18-35 (%)", Value: Value(lf.YouthUnemp18To35)},
		{Key: "neet_rate_15_24", Label: "NEET Rate 15-24 (%)", Value: Value(lf.NEETRate15To24)},
		{Key: "neet_rate_18_35", Label: "NEET Rate 18-35 (%)", Value: Value(lf.NEETRate18To35)},
		{Key: "combined_unemp_pot_lf", Label: "Combined Unemploy. Potential LF (%)", Value: Value(lf.CombinedUnempPotLF)},
	}
}

// HouseholdFields lists the housing census counts.
func HouseholdFields(h core.Household) []Field {
	return []Field{
		{Key: "total_households", Label: "Total Households", Value: Value(h.TotalHouseholds)},
		{Key: "total_housing_units", Label: "Total Housing Units", Value: Value(h.TotalHousingUnits)},
		{Key: "house_flat_apartment", Label: "Houses/Flats/Apartments", Value: Value(h.HouseFlatApartment)},
		{Key: "boats_mobile_units", Label: "Boats/Mobile Units", Value: Value(h.BoatsMobileUnits)},
		{Key: "buildings_not_habitable", Label: "Buildings Not Habitable", Value: Value(h.BuildingsNotHabitable)},
		{Key: "other_household_units", Label: "Other Household Units", Value: Value(h.OtherHouseholdUnits)},
		{Key: "collective_living_qtrs", Label: "Collective Living Quarters", Value: Value(h.CollectiveLivingQtrs)},
		{Key: "labor_staff_quarters", Label: "Labor/Staff Quarters", Value: Value(h.LaborStaffQuarters)},
		{Key: "other_clq", Label: "Other CLQ", Value: Value(h.OtherCLQ)},
		{Key: "avg_household_size", Label: "Average Household Size", Value: Value(h.AvgHouseholdSize)},
	}
}

// AccommodationFields lists an accommodation's details, skipping fields the
// record does not carry (free-form sections omit empty values).
func AccommodationFields(a core.Accommodation) []Field {
	candidates := []struct {
		key, label, raw string
	}{
		{"rooms", "Rooms", a.Rooms},
		{"beds", "Beds", a.Beds},
		{"berths", "Berths", a.Berths},
		{"phone", "Phone", a.Phone},
		{"email", "Email", a.Email},
		{"website", "Website", a.Website},
		{"fax", "Fax", a.Fax},
		{"resort_phone", "Resort Phone", a.ResortPhone},
		{"resort_email", "Resort Email", a.ResortEmail},
		{"address", "Address", a.Address},
		{"operator", "Operator", a.Operator},
		{"owner_lessee", "Owner/Lessee", a.OwnerLessee},
		{"management", "Management", a.Management},
	}
	fields := []Field{}
	for _, c := range candidates {
		if Missing(c.raw) {
			continue
		}
		fields = append(fields, Field{Key: c.key, Label: c.label, Value: Value(c.raw)})
	}
	return fields
}

// CSOFields lists an organization's contact details, skipping absent ones.
func CSOFields(c core.CSOOrganization) []Field {
	candidates := []struct {
		key, label, raw string
	}{
		{"phone", "Phone", c.Phone},
		{"email", "Email", c.Email},
		{"web_presence", "Web Presence", c.WebPresence},
		{"registration_number", "Registration Number", c.RegistrationNumber},
	}
	fields := []Field{}
	for _, f := range candidates {
		if Missing(f.raw) {
			continue
		}
		fields = append(fields, Field{Key: f.key, Label: f.label, Value: Value(f.raw)})
	}
	return fields
}
