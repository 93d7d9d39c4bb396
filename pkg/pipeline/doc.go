// Package pipeline enriches catalog stations with harmonic constituents.
//
// Stations are handled strictly one at a time with a fixed pause before every
// harmonics request, so the request rate seen by NOAA never exceeds one per
// delay. Do not parallelize the loop.
package pipeline
