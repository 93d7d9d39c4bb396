// Command tidestations builds the station dataset for the tide database: it
// reads NOAA's catalog of tide prediction stations, keeps the requested ones,
// attaches each station's harmonic constituents and writes the result as
// JSON.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spencer-p/tidestations/pkg/config"
	"github.com/spencer-p/tidestations/pkg/dataset"
	"github.com/spencer-p/tidestations/pkg/metrics"
	"github.com/spencer-p/tidestations/pkg/noaa"
	"github.com/spencer-p/tidestations/pkg/pipeline"
	"github.com/spencer-p/tidestations/pkg/stations"
	"github.com/spencer-p/tidestations/pkg/timetricks"
)

// app is what a run needs from the process.
type app struct {
	stdout io.Writer
	stderr io.Writer
	sleep  func(time.Duration)
}

func main() {
	cmd := newRootCommand(app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		sleep:  time.Sleep,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(a app) *cobra.Command {
	var mode, stationList string
	opts := config.Options{Output: config.DefaultOutput}

	cmd := &cobra.Command{
		Use:   "tidestations",
		Short: "Fetch tide station data from the NOAA CO-OPS API",
		Example: `  tidestations                              # Test mode (5 stations)
  tidestations --mode production            # Production mode (all stations)
  tidestations --stations 9414290,8454000   # Custom station list
  tidestations --mode test --verbose        # Test mode with detailed logging`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.ParseMode(mode)
			if err != nil {
				return err
			}
			opts.Mode = m
			opts.Stations = config.ParseStationList(stationList)

			svc, err := config.FromEnv()
			if err != nil {
				return err
			}
			return a.run(svc, opts)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.Flags().StringVar(&mode, "mode", string(config.TestMode), "Database mode: 'test' for 5 stations, 'production' for all stations")
	cmd.Flags().StringVar(&stationList, "stations", "", "Comma-separated list of station IDs (overrides --mode)")
	cmd.Flags().StringVar(&opts.Output, "output", opts.Output, "Output filename")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable detailed logging")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	return cmd
}

func (a app) run(svc config.Service, opts config.Options) error {
	out := log.New(a.stdout, "", 0)
	warn := log.New(a.stderr, "", 0)
	var debug *log.Logger
	if opts.Verbose {
		debug = out
	}

	rule := strings.Repeat("=", 60)
	out.Println(rule)
	out.Println("NOAA Tide Data Fetcher")
	out.Println(rule)
	out.Println()

	client := noaa.NewClient(svc)

	out.Println("Fetching tide stations from NOAA API...")
	all, err := client.FetchStations()
	if err != nil {
		return err
	}
	out.Printf("Found %d tide prediction stations", len(all))

	sel := opts.Select(len(all))
	out.Println(sel.Description)
	selected := stations.Select(all, sel, warn, debug)
	if len(selected) == 0 {
		return config.ErrEmptySelection
	}

	out.Println()
	out.Printf("Fetching harmonic constituents for %d stations...", len(selected))
	out.Println(timetricks.DescribeEstimate(len(selected), svc.RequestDelay))
	out.Println()

	fetchOpts := []noaa.Option{
		noaa.WithSleep(a.sleep),
		noaa.WithWarnings(warn),
		noaa.WithCacheTTL(svc.CacheTTL),
	}
	if debug != nil {
		fetchOpts = append(fetchOpts, noaa.WithRetryLog(debug))
	}
	fetcher := noaa.NewHarmonicsFetcher(client, fetchOpts...)

	p := pipeline.New(fetcher, svc.RequestDelay,
		pipeline.WithSleep(a.sleep),
		pipeline.WithProgress(out),
		pipeline.Verbose(opts.Verbose))
	records, summary := p.Run(selected)

	if err := dataset.Write(opts.Output, records); err != nil {
		return err
	}

	out.Println()
	out.Printf("✓ Data saved to %s", opts.Output)
	out.Println(summary.Table())
	if summary.Subordinate == 0 {
		out.Println("Note: All NOAA stations currently provide harmonic data (network modernization)")
	}

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			warn.Printf("Warning: could not write metrics: %v", err)
		}
	}
	return nil
}
