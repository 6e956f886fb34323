package resolver

import (
	"sort"
	"strings"

	"github.com/atolldata/islandatlas/pkg/core"
)

// MinQueryLen is the minimum query length for an active search. Shorter
// queries report an inactive search, which is distinct from a search that
// matched nothing.
const MinQueryLen = 2

// MaxResults caps search output.
const MaxResults = 10

// SearchResult pairs a matched island with its atoll's name for display.
type SearchResult struct {
	Island    core.Island `json:"island"`
	AtollName string      `json:"atollName"`
}

// Search returns up to MaxResults islands whose name contains the
// lowercased query case-insensitively, or whose Dhivehi name contains the
// lowercased query as-is (Thaana has no case, so lowering only affects
// Latin characters stored there), in original collection order (not
// ranked, not alphabetized). The second return is false when the trimmed
// query is too short to activate search.
func Search(snap *core.Snapshot, query string) ([]SearchResult, bool) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < MinQueryLen {
		return nil, false
	}
	lowered := strings.ToLower(trimmed)

	results := []SearchResult{}
	for _, island := range snap.Islands {
		if !strings.Contains(strings.ToLower(island.Name), lowered) &&
			!strings.Contains(island.NameDhivehi, lowered) {
			continue
		}
		results = append(results, SearchResult{
			Island:    island,
			AtollName: atollName(snap, island.AtollID),
		})
		if len(results) == MaxResults {
			break
		}
	}
	return results, true
}

// Atolls returns all atolls sorted by name.
func Atolls(snap *core.Snapshot) []core.Atoll {
	atolls := make([]core.Atoll, len(snap.Atolls))
	copy(atolls, snap.Atolls)
	sort.Slice(atolls, func(i, j int) bool {
		return atolls[i].Name < atolls[j].Name
	})
	return atolls
}

// IslandsInAtoll returns the islands of one atoll sorted by name. The
// atoll id comparison is raw: it comes from the atoll collection itself.
func IslandsInAtoll(snap *core.Snapshot, atollID string) []core.Island {
	islands := []core.Island{}
	for _, island := range snap.Islands {
		if island.AtollID == atollID {
			islands = append(islands, island)
		}
	}
	sort.Slice(islands, func(i, j int) bool {
		return islands[i].Name < islands[j].Name
	})
	return islands
}

func atollName(snap *core.Snapshot, atollID string) string {
	for _, a := range snap.Atolls {
		if a.ID == atollID {
			return a.Name
		}
	}
	return ""
}
