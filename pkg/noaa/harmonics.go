package noaa

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/spencer-p/tidestations/pkg/cache"
	"github.com/spencer-p/tidestations/pkg/metrics"
)

// MaxAttempts is the number of requests made for one station before giving
// up.
const MaxAttempts = 3

// Backoff is the pause after failed attempt n (counting from zero): 1s, 2s,
// 4s.
func Backoff(n int) time.Duration {
	return time.Second << uint(n)
}

// fetchState is a step in the per-station retry machine:
//
//	attempting(n) -> found | absent | attempting(n+1)
//
// found and absent are terminal.
type fetchState int

const (
	attempting fetchState = iota
	found
	absent
)

// attempt is the machine's state after some number of requests.
type attempt struct {
	state     fetchState
	n         int // requests made so far
	harmonics Harmonics
	err       error // last failure, if any
}

// HarmonicsFetcher retrieves harmonic constituents for one station at a
// time, retrying transient failures with exponential backoff. It is not safe
// for concurrent use.
type HarmonicsFetcher struct {
	client *Client
	sleep  func(time.Duration)
	seen   *cache.Timed[Harmonics]
	warn   *log.Logger
	debug  *log.Logger
}

type Option func(*HarmonicsFetcher)

// WithSleep replaces time.Sleep for the backoff pauses.
func WithSleep(sleep func(time.Duration)) Option {
	return func(f *HarmonicsFetcher) {
		f.sleep = sleep
	}
}

// WithWarnings sets where exhausted retries are reported. Defaults to stderr.
func WithWarnings(l *log.Logger) Option {
	return func(f *HarmonicsFetcher) {
		f.warn = l
	}
}

// WithRetryLog reports every retry to l. Retries are silent by default.
func WithRetryLog(l *log.Logger) Option {
	return func(f *HarmonicsFetcher) {
		f.debug = l
	}
}

// WithCacheTTL sets how long definitive answers are remembered per station.
func WithCacheTTL(ttl time.Duration) Option {
	return func(f *HarmonicsFetcher) {
		f.seen = cache.NewTimed[Harmonics](ttl)
	}
}

func NewHarmonicsFetcher(client *Client, opts ...Option) *HarmonicsFetcher {
	f := &HarmonicsFetcher{
		client: client,
		sleep:  time.Sleep,
		seen:   cache.NewTimed[Harmonics](time.Hour),
		warn:   log.New(os.Stderr, "", 0),
		debug:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the harmonic constituents for stationID, or nil when there
// are none. A 404 is a definitive answer and ends the attempt at once; other
// failures are retried up to MaxAttempts requests in total. Failure is never
// returned to the caller.
func (f *HarmonicsFetcher) Fetch(stationID string) Harmonics {
	return f.fetch(stationID).harmonics
}

func (f *HarmonicsFetcher) fetch(stationID string) attempt {
	if h, ok := f.seen.Get(stationID); ok {
		if len(h) == 0 {
			return attempt{state: absent}
		}
		return attempt{state: found, harmonics: h}
	}

	st := attempt{state: attempting}
	for st.state == attempting {
		st = f.step(stationID, st)
	}
	return st
}

// step makes one request and decides the next state.
func (f *HarmonicsFetcher) step(stationID string, st attempt) attempt {
	h, err := f.client.FetchHarmonics(stationID)
	n := st.n + 1

	switch {
	case err == nil && len(h) == 0:
		metrics.ObserveHarmonicsAttempt(metrics.NotFound)
		f.seen.Set(stationID, nil)
		return attempt{state: absent, n: n}

	case err == nil:
		metrics.ObserveHarmonicsAttempt(metrics.Found)
		f.seen.Set(stationID, h)
		return attempt{state: found, n: n, harmonics: h}

	case errors.Is(err, ErrNotFound):
		metrics.ObserveHarmonicsAttempt(metrics.NotFound)
		f.seen.Set(stationID, nil)
		return attempt{state: absent, n: n}
	}

	metrics.ObserveHarmonicsAttempt(metrics.Failed)
	if n >= MaxAttempts {
		f.warn.Printf("Warning: Could not fetch harmonics for %s after %d attempts: %v", stationID, n, err)
		return attempt{state: absent, n: n, err: err}
	}

	wait := Backoff(st.n)
	f.debug.Printf("  Retry %d/%d after %s (error: %v)", n, MaxAttempts, wait, err)
	f.sleep(wait)
	return attempt{state: attempting, n: n, err: err}
}
