package pipeline

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spencer-p/tidestations/pkg/noaa"
)

type Summary struct {
	Total       int
	Harmonic    int
	Subordinate int
}

func Summarize(records []noaa.Station) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch TypeOf(r) {
		case noaa.Harmonic:
			s.Harmonic++
		case noaa.Subordinate:
			s.Subordinate++
		}
	}
	return s
}

// Table renders the counts for the terminal.
func (s Summary) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Stations", "Count"})
	tw.AppendRows([]table.Row{
		{"Total", strconv.Itoa(s.Total)},
		{"Harmonic", strconv.Itoa(s.Harmonic)},
		{"Subordinate", strconv.Itoa(s.Subordinate)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
