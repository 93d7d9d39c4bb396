package noaa

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/spencer-p/tidestations/pkg/config"
)

// fakeNOAA serves a catalog and per station harmonics responses. Stations
// missing from harcon get a 404.
type fakeNOAA struct {
	mu sync.Mutex

	stations []map[string]any
	// harcon maps station id to the list of statuses to answer with, one per
	// request; the last entry repeats.
	harcon map[string][]int

	catalogHits int
	hits        map[string]int
	lastQuery   map[string]string
}

func newFakeNOAA(t *testing.T) (*fakeNOAA, config.Service) {
	f := &fakeNOAA{
		harcon: make(map[string][]int),
		hits:   make(map[string]int),
	}

	r := mux.NewRouter()
	r.HandleFunc("/stations.json", f.serveCatalog)
	r.HandleFunc("/stations/{id}/harcon.json", f.serveHarcon)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return f, config.Service{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		CacheTTL:       time.Hour,
	}
}

func (f *fakeNOAA) count(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[id]
}

func (f *fakeNOAA) serveCatalog(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogHits++
	f.lastQuery = map[string]string{
		"type":   r.FormValue("type"),
		"expand": r.FormValue("expand"),
	}
	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":    len(f.stations),
		"stations": f.stations,
	})
}

func (f *fakeNOAA) serveHarcon(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := mux.Vars(r)["id"]
	n := f.hits[id]
	f.hits[id]++

	codes, ok := f.harcon[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	code := codes[len(codes)-1]
	if n < len(codes) {
		code = codes[n]
	}
	if code != http.StatusOK {
		w.WriteHeader(code)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"units": "feet",
		"HarmonicConstituents": []map[string]any{
			{"number": 1, "name": "M2", "amplitude": 1.8, "phaseGMT": 193.5, "speed": 28.984104},
			{"number": 2, "name": "S2", "amplitude": 0.42, "phaseGMT": 191.3, "speed": 30.0},
		},
	})
}

// recordSleep collects requested pauses instead of waiting.
type recordSleep struct {
	waits []time.Duration
}

func (s *recordSleep) sleep(d time.Duration) {
	s.waits = append(s.waits, d)
}

func newRawServer(t *testing.T, h http.HandlerFunc) config.Service {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return config.Service{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
}
