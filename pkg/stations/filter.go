// Package stations narrows the NOAA catalog to the stations a run asked for.
package stations

import (
	"sort"

	"github.com/spencer-p/tidestations/pkg/noaa"
)

// Filter keeps the stations whose id is in ids, in catalog order. Missing
// lists the requested ids the catalog does not have, sorted.
func Filter(all []noaa.Station, ids []string) (kept []noaa.Station, missing []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	seen := make(map[string]bool, len(ids))
	kept = []noaa.Station{}
	for _, s := range all {
		if id := s.ID(); want[id] {
			kept = append(kept, s)
			seen[id] = true
		}
	}

	for id := range want {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	return kept, missing
}
