// Package noaa talks to the NOAA CO-OPS metadata API. It retrieves the
// catalog of tide prediction stations (see Client.FetchStations) and the
// harmonic constituents published for a single station (see
// HarmonicsFetcher). Station records are kept as opaque JSON objects so that
// every field NOAA returns is passed through untouched.
package noaa
