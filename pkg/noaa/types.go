package noaa

import (
	"encoding/json"
	"fmt"
)

// Station is a catalog record exactly as NOAA returned it. Only "id" and
// "name" are interpreted; everything else is passed through.
type Station map[string]any

// ID returns the station id, or "" when the record has none.
func (s Station) ID() string {
	return stringField(s, "id")
}

// Name returns the station name, or "Unknown" when the record has none.
func (s Station) Name() string {
	if name := stringField(s, "name"); name != "" {
		return name
	}
	return "Unknown"
}

func stringField(s Station, key string) string {
	switch v := s[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Harmonics is a harcon.json response body. The constituents live under the
// HarmonicConstituents key, each with a name, amplitude, phase and speed.
type Harmonics map[string]any

// Constituents returns the ordered constituent entries.
func (h Harmonics) Constituents() []any {
	list, _ := h["HarmonicConstituents"].([]any)
	return list
}

// StationType tells whether a station has its own harmonic constituents.
type StationType string

const (
	Harmonic    StationType = "harmonic"
	Subordinate StationType = "subordinate"
)

// Keys added to a Station during enrichment.
const (
	TypeKey      = "type"
	HarmonicsKey = "harmonics"
)

// catalog is the body of the stations.json endpoint.
type catalog struct {
	Stations []Station `json:"stations"`
}
