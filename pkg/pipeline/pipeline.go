package pipeline

import (
	"io"
	"log"
	"time"

	"github.com/spencer-p/tidestations/pkg/metrics"
	"github.com/spencer-p/tidestations/pkg/noaa"
)

const (
	// Selections smaller than this get a line per station.
	detailedProgressLimit = 100
	// Otherwise progress is reported every this many stations.
	progressEvery = 100
)

// Fetcher returns a station's harmonic constituents, or nil when it has none.
type Fetcher interface {
	Fetch(stationID string) noaa.Harmonics
}

type Pipeline struct {
	fetcher Fetcher
	delay   time.Duration
	sleep   func(time.Duration)
	out     *log.Logger
	verbose bool
}

type Option func(*Pipeline)

// WithSleep replaces time.Sleep for the pause between requests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Pipeline) {
		p.sleep = sleep
	}
}

// WithProgress sets where progress is written. Defaults to nowhere.
func WithProgress(l *log.Logger) Option {
	return func(p *Pipeline) {
		p.out = l
	}
}

// Verbose reports every station regardless of selection size.
func Verbose(v bool) Option {
	return func(p *Pipeline) {
		p.verbose = v
	}
}

// New makes a Pipeline that waits delay before every harmonics request.
func New(fetcher Fetcher, delay time.Duration, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher: fetcher,
		delay:   delay,
		sleep:   time.Sleep,
		out:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run enriches every selected station in order. The result has exactly one
// record per selected station; the input records are not modified.
func (p *Pipeline) Run(selected []noaa.Station) ([]noaa.Station, Summary) {
	total := len(selected)
	detailed := p.verbose || total < detailedProgressLimit
	enriched := make([]noaa.Station, 0, total)

	for i, station := range selected {
		id := station.ID()
		if detailed {
			p.out.Printf("[%d/%d] Processing station %s: %s...", i+1, total, id, station.Name())
		} else if (i+1)%progressEvery == 0 {
			p.out.Printf("[%d/%d] Progress: %d%% complete...", i+1, total, (i+1)*100/total)
		}

		p.sleep(p.delay)
		harmonics := p.fetcher.Fetch(id)

		record := Enrich(station, harmonics)
		if detailed {
			if harmonics != nil {
				p.out.Printf("  ✓ Found %d constituents", len(harmonics.Constituents()))
			} else {
				p.out.Printf("  - No harmonic data (subordinate station)")
			}
		}
		metrics.ObserveEnriched(string(TypeOf(record)))
		enriched = append(enriched, record)
	}

	return enriched, Summarize(enriched)
}

// Enrich returns a copy of station marked harmonic with h attached, or
// subordinate when h is nil.
func Enrich(station noaa.Station, h noaa.Harmonics) noaa.Station {
	record := make(noaa.Station, len(station)+2)
	for k, v := range station {
		record[k] = v
	}

	if h != nil {
		record[noaa.TypeKey] = noaa.Harmonic
		record[noaa.HarmonicsKey] = h
	} else {
		record[noaa.TypeKey] = noaa.Subordinate
		delete(record, noaa.HarmonicsKey)
	}
	return record
}

// TypeOf reads the type set by Enrich.
func TypeOf(record noaa.Station) noaa.StationType {
	t, _ := record[noaa.TypeKey].(noaa.StationType)
	return t
}
