package stations

import (
	"log"

	"github.com/spencer-p/tidestations/pkg/config"
	"github.com/spencer-p/tidestations/pkg/noaa"
)

// Select applies sel to the catalog. Requested ids the catalog lacks are
// reported to warn; the run carries on without them. debug, if non-nil, gets
// a note on how far the catalog was narrowed.
func Select(all []noaa.Station, sel config.Selection, warn, debug *log.Logger) []noaa.Station {
	if sel.All() {
		return all
	}

	kept, missing := Filter(all, sel.IDs)
	if len(missing) > 0 {
		warn.Printf("Warning: %d requested station(s) not found:", len(missing))
		for _, id := range missing {
			warn.Printf("  - %s", id)
		}
	}
	if debug != nil {
		debug.Printf("Filtered %d stations to %d stations", len(all), len(kept))
	}
	return kept
}
