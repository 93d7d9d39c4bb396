// Command harcon prints the harmonic constituents NOAA publishes for one
// station, using the same retry policy as the dataset build.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spencer-p/tidestations/pkg/config"
	"github.com/spencer-p/tidestations/pkg/noaa"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s STATION_ID\n", os.Args[0])
		os.Exit(2)
	}
	id := os.Args[1]

	svc, err := config.FromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	h := noaa.NewHarmonicsFetcher(noaa.NewClient(svc)).Fetch(id)
	if h == nil {
		fmt.Printf("%s: no harmonic data (subordinate station)\n", id)
		return
	}
	for _, c := range h.Constituents() {
		entry, _ := c.(map[string]any)
		fmt.Printf("%v\tamplitude=%v\tphase=%v\tspeed=%v\n",
			entry["name"], entry["amplitude"], entry["phaseGMT"], entry["speed"])
	}
}
