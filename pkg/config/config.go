// Package config holds the settings fixed at startup: where the NOAA service
// lives, how politely to talk to it, and which stations a run should cover.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "TIDES"

// Service describes the remote NOAA metadata service. It is read from the
// environment once and passed by value afterwards.
type Service struct {
	// BaseURL of the CO-OPS metadata API, without a trailing slash.
	BaseURL string `split_words:"true" default:"https://api.tidesandcurrents.noaa.gov/mdapi/prod/webapi"`
	// Timeout for a single HTTP request.
	RequestTimeout time.Duration `split_words:"true" default:"30s"`
	// Pause before every harmonics request.
	RequestDelay time.Duration `split_words:"true" default:"500ms"`
	// How long a definitive harmonics answer is remembered.
	CacheTTL time.Duration `split_words:"true" default:"1h"`
}

// FromEnv loads Service from TIDES_* environment variables.
func FromEnv() (Service, error) {
	var s Service
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return Service{}, fmt.Errorf("read environment: %w", err)
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	return s, nil
}

// StationsURL is the catalog endpoint.
func (s Service) StationsURL() string {
	return s.BaseURL + "/stations.json"
}

// HarmonicsURL is the harmonic constituents endpoint for one station.
func (s Service) HarmonicsURL(stationID string) string {
	return fmt.Sprintf("%s/stations/%s/harcon.json", s.BaseURL, stationID)
}

type Mode string

const (
	TestMode       Mode = "test"
	ProductionMode Mode = "production"

	DefaultOutput = "stations.json"
)

var ErrInvalidMode = errors.New("invalid mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case TestMode, ProductionMode:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q: want %q or %q", ErrInvalidMode, s, TestMode, ProductionMode)
	}
}

// TestStations is a small set with diverse geographic coverage.
var TestStations = []string{
	"9414290", // San Francisco, CA
	"8454000", // Providence, RI
	"8518750", // The Battery, NY
	"8658120", // Wilmington, NC
	"8636580", // Cape Hatteras, NC
}

// Options are the per-run choices made on the command line.
type Options struct {
	Mode        Mode
	Stations    []string // overrides Mode when non-empty
	Output      string
	Verbose     bool
	MetricsFile string
}

// ParseStationList splits a comma separated id list, dropping blanks.
func ParseStationList(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
