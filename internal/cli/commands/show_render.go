package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/atolldata/islandatlas/internal/format"
	"github.com/atolldata/islandatlas/internal/resolver"
)

// renderView writes the island view as a sequence of titled sections, one
// table per section, mirroring the layout of the published island cards.
func renderView(w io.Writer, view *resolver.IslandView) {
	fmt.Fprintln(w, view.Title)
	if view.Subtitle != "" {
		fmt.Fprintln(w, view.Subtitle)
	}
	fmt.Fprintln(w)

	atollName := ""
	if view.Atoll != nil {
		atollName = view.Atoll.Name
	}
	renderFields(w, "Geographic Information", format.GeographicFields(view.Island, atollName))

	if view.Distances != nil {
		renderFields(w, "Distance & Travel Information", format.ExtraFields(view.Distances.Extra))
	}
	if view.Services != nil {
		renderFields(w, "Travel & Contact Services", format.ExtraFields(view.Services.Extra))
	}

	if view.DemographicsLatest != nil {
		renderFields(w, "Demographics (2022 Census)", format.DemographicsFields(*view.DemographicsLatest))
	}
	if change := view.PopulationChange; change != nil {
		fmt.Fprintln(w, "Population Change (2014-2022):")
		fmt.Fprintf(w, "  2014 Population: %s -> 2022 Population: %s\n",
			format.Number(float64(change.Earlier)), format.Number(float64(change.Latest)))
		sign := ""
		if change.Change > 0 {
			sign = "+"
		}
		fmt.Fprintf(w, "  Change: %s%s (%s%%)\n\n", sign, format.Number(float64(change.Change)), change.Percent)
	}

	for _, group := range view.LaborForceGroups {
		renderFields(w, "Labor Force: "+group.Key, format.LaborForceFields(group.Record))
	}

	if view.Household != nil {
		renderFields(w, "Household Statistics", format.HouseholdFields(*view.Household))
	}

	for _, hf := range view.HealthFacilities {
		name := hf.FacilityName
		if name == "" {
			name = "Unnamed Facility"
		}
		renderFields(w, "Health Facility: "+name, format.ExtraFields(hf.Extra))
	}
	for _, ss := range view.SocialServices {
		name := ss.ProviderName
		if name == "" {
			name = "Unnamed Service"
		}
		renderFields(w, "Social Service: "+name, format.ExtraFields(ss.Extra))
	}

	if len(view.Schools) > 0 {
		fmt.Fprintf(w, "Schools (%d)\n", len(view.Schools))
		for _, school := range view.Schools {
			name := school.SchoolName
			if name == "" {
				name = "Unnamed School"
			}
			fmt.Fprintf(w, "  - %s\n", name)
			if !format.Missing(school.OriginalLocation) {
				fmt.Fprintf(w, "    %s\n", school.OriginalLocation)
			}
		}
		fmt.Fprintln(w)
	}
	if view.SchoolStatistics != nil {
		renderFields(w, "School Statistics", format.ExtraFields(view.SchoolStatistics.Extra))
	}

	for _, acc := range view.Accommodations {
		name := acc.FacilityName
		if name == "" {
			name = "Unnamed Facility"
		}
		title := "Accommodation: " + name
		if acc.FacilityType != "" {
			title += " [" + acc.FacilityType + "]"
		}
		renderFields(w, title, format.AccommodationFields(acc))
	}

	if len(view.ActivityGroups) > 0 {
		fmt.Fprintln(w, "Activities & Things To Do")
		for _, group := range view.ActivityGroups {
			fmt.Fprintf(w, "  %s:\n", format.Label(group.Category))
			for _, a := range group.Activities {
				fmt.Fprintf(w, "    - %s\n", a.Name)
			}
		}
		fmt.Fprintln(w)
	}

	for _, cso := range view.CSOOrganizations {
		renderFields(w, "Civil Society Organization: "+cso.DisplayName(), format.CSOFields(cso))
	}
}

// renderFields prints one titled label/value table. Sections with no
// fields still print their title so absence is visible.
func renderFields(w io.Writer, title string, fields []format.Field) {
	fmt.Fprintln(w, title)
	if len(fields) == 0 {
		fmt.Fprintf(w, "  (%s)\n\n", format.NoData)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	for _, f := range fields {
		t.AppendRow(table.Row{f.Label, f.Value})
	}
	t.Render()
	fmt.Fprintln(w)
}
