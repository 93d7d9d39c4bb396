package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "tidestations"

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: subsystem,
			Help:      "NOAA request latencies in seconds.",
			Buckets:   []float64{0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"endpoint", "code"},
	)

	harmonicsAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "harmonics_attempts_total",
			Subsystem: subsystem,
			Help:      "Harmonics requests by result: found, not_found or failed.",
		},
		[]string{"result"},
	)

	stationsEnriched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "stations_enriched_total",
			Subsystem: subsystem,
			Help:      "Stations written to the dataset by type.",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		harmonicsAttempts,
		stationsEnriched,
	)
}

// Endpoint labels.
const (
	Catalog   = "catalog"
	Harmonics = "harmonics"
)

// Harmonics attempt results.
const (
	Found    = "found"
	NotFound = "not_found"
	Failed   = "failed"
)

// ObserveRequestLatency records one round trip. code is the HTTP status, or
// "error" when no response arrived.
func ObserveRequestLatency(endpoint, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"endpoint": endpoint,
		"code":     code,
	}).Observe(latency)
}

func ObserveHarmonicsAttempt(result string) {
	harmonicsAttempts.WithLabelValues(result).Inc()
}

func ObserveEnriched(stationType string) {
	stationsEnriched.WithLabelValues(stationType).Inc()
}

// WriteTextfile dumps every registered metric in the text exposition format,
// for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
