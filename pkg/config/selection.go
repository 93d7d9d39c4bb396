package config

import (
	"errors"
	"fmt"
)

var ErrEmptySelection = errors.New("no stations to process")

// Selection says which catalog stations a run keeps. A nil IDs slice means
// every station.
type Selection struct {
	IDs         []string
	Description string
}

// All reports whether the selection keeps the whole catalog.
func (s Selection) All() bool {
	return s.IDs == nil
}

// Select resolves the run options into a Selection. catalogSize is only used
// to describe a production run.
func (o Options) Select(catalogSize int) Selection {
	switch {
	case len(o.Stations) > 0:
		return Selection{
			IDs:         o.Stations,
			Description: fmt.Sprintf("Custom mode: Processing %d specified stations", len(o.Stations)),
		}
	case o.Mode == ProductionMode:
		return Selection{
			Description: fmt.Sprintf("Production mode: Processing all %d stations", catalogSize),
		}
	default:
		return Selection{
			IDs:         TestStations,
			Description: fmt.Sprintf("Test mode: Processing %d test stations", len(TestStations)),
		}
	}
}
