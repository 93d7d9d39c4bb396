package noaa

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spencer-p/tidestations/pkg/config"
	"github.com/spencer-p/tidestations/pkg/metrics"
)

// ErrNotFound means NOAA has no harmonic constituents for a station.
var ErrNotFound = errors.New("not found")

// StatusError is a response with a status other than 2xx.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.URL, e.Status)
}

// Client issues single requests against the NOAA metadata API. It never
// retries; see HarmonicsFetcher for that.
type Client struct {
	svc        config.Service
	httpClient *http.Client
}

func NewClient(svc config.Service) *Client {
	return NewClientWithHTTP(svc, &http.Client{
		Timeout: svc.RequestTimeout,
	})
}

// NewClientWithHTTP is like NewClient but with a caller supplied http.Client.
func NewClientWithHTTP(svc config.Service, httpClient *http.Client) *Client {
	return &Client{
		svc:        svc,
		httpClient: httpClient,
	}
}

// FetchStations retrieves every tide prediction station with expanded
// details. Any failure is returned as is; the catalog is never retried.
func (c *Client) FetchStations() ([]Station, error) {
	addr, err := url.Parse(c.svc.StationsURL())
	if err != nil {
		return nil, err
	}
	addr.RawQuery = catalogQuery().Encode()

	var result catalog
	if err := c.getJSON(metrics.Catalog, addr.String(), &result); err != nil {
		return nil, fmt.Errorf("fetch station catalog: %w", err)
	}

	if result.Stations == nil {
		return []Station{}, nil
	}
	return result.Stations, nil
}

func catalogQuery() url.Values {
	vals := make(url.Values)
	vals.Add("type", "tidepredictions")
	vals.Add("expand", "details")
	return vals
}

// FetchHarmonics makes one attempt at a station's harmonic constituents. A
// 404 is reported as ErrNotFound.
func (c *Client) FetchHarmonics(stationID string) (Harmonics, error) {
	var result Harmonics
	addr := c.svc.HarmonicsURL(url.PathEscape(stationID))
	if err := c.getJSON(metrics.Harmonics, addr, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) getJSON(endpoint, addr string, v any) error {
	start := time.Now()
	resp, err := c.httpClient.Get(addr)
	if err != nil {
		metrics.ObserveRequestLatency(endpoint, "error", time.Since(start).Seconds())
		return err
	}
	defer resp.Body.Close()
	metrics.ObserveRequestLatency(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: %w", addr, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: addr, Code: resp.StatusCode, Status: resp.Status}
	}

	dec := json.NewDecoder(resp.Body)
	// Keep numbers exactly as NOAA wrote them.
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", addr, err)
	}
	return nil
}
