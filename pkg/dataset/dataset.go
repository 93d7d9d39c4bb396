// Package dataset writes the enriched station list consumed by the database
// build.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spencer-p/tidestations/pkg/noaa"
)

// Write stores records at path as a two-space indented JSON array. The file
// appears complete or not at all.
func Write(path string, records []noaa.Station) error {
	if records == nil {
		records = []noaa.Station{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
