// Package report summarizes a set of stored records into a single HTML page.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"stat-scanner/src/pkg/record"
)

type Options struct {
	Title       string
	MaxRows     int // rows per breakdown before the rest is grouped into "Other"
	GeneratedAt time.Time
}

// Row is one bar of a breakdown.
type Row struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percent    float64 `json:"percent"`
	BarPercent int     `json:"bar_percent"`
	Color      string  `json:"color"`
}

type Summary struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`

	RecordCount        int `json:"record_count"`
	ShinyCount         int `json:"shiny_count"`
	AlphaCount         int `json:"alpha_count"`
	HiddenAbilityCount int `json:"hidden_ability_count"`

	Names   []Row `json:"names"`
	Natures []Row `json:"natures"`
	Moves   []Row `json:"moves"`

	// mean IV per stat over records whose IVs were read
	AverageIVs    [6]float64 `json:"average_ivs"`
	IVSampleCount int        `json:"iv_sample_count"`

	Notes []string `json:"notes"`
}

var barColors = []string{
	"#2563EB", "#7C3AED", "#059669", "#DB2777", "#D97706",
	"#0EA5E9", "#65A30D", "#9333EA", "#F43F5E", "#14B8A6",
	"#4F46E5", "#B45309",
}

// Build aggregates records. Sentinel values are counted in the notes, not in the breakdowns.
func Build(records []record.Record, opts Options) Summary {
	summary := Summary{
		Title:       opts.Title,
		GeneratedAt: opts.GeneratedAt,
		RecordCount: len(records),
	}

	names := map[string]int{}
	natures := map[string]int{}
	moves := map[string]int{}
	var ivTotals [6]int
	unknownNames := 0

	for _, r := range records {
		if r.IsShiny {
			summary.ShinyCount++
		}
		if r.IsAlpha {
			summary.AlphaCount++
		}
		if r.IsHiddenAbility {
			summary.HiddenAbilityCount++
		}

		if r.Name == record.Unknown || r.Name == "" {
			unknownNames++
		} else {
			names[r.Name]++
		}
		if r.Nature != record.NotFound && r.Nature != "" {
			natures[r.Nature]++
		}
		for _, move := range r.Moves {
			if move != record.NotFound && move != "" {
				moves[move]++
			}
		}

		if values, ok := r.IVs.Ints(); ok {
			summary.IVSampleCount++
			for i, v := range values {
				ivTotals[i] += v
			}
		}
	}

	if summary.IVSampleCount > 0 {
		for i, total := range ivTotals {
			summary.AverageIVs[i] = float64(total) / float64(summary.IVSampleCount)
		}
	}

	summary.Names = buildRows(names, len(records), opts.MaxRows)
	summary.Natures = buildRows(natures, len(records), opts.MaxRows)
	summary.Moves = buildRows(moves, len(records), opts.MaxRows)

	summary.Notes = append(summary.Notes, "Percentages are shares of all records; a record can list up to four moves.")
	if unknownNames > 0 {
		summary.Notes = append(summary.Notes, fmt.Sprintf("%d records have no recognized name.", unknownNames))
	}
	if missing := len(records) - summary.IVSampleCount; missing > 0 {
		summary.Notes = append(summary.Notes, fmt.Sprintf("%d records have no readable IVs and are left out of the averages.", missing))
	}
	return summary
}

/*
buildRows sorts counts (largest first, then by label), keeps maxRows-1 rows
and folds the remainder into "Other" when there are more than maxRows.
*/
func buildRows(counts map[string]int, total int, maxRows int) []Row {
	rows := make([]Row, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, newRow(label, count, total))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})

	maxRows = max(maxRows, 3)
	if len(rows) > maxRows {
		otherCount := 0
		for _, row := range rows[maxRows-1:] {
			otherCount += row.Count
		}
		rows = append(rows[:maxRows-1], newRow("Other", otherCount, total))
	}

	for i := range rows {
		rows[i].Color = barColors[i%len(barColors)]
	}
	return rows
}

func newRow(label string, count int, total int) Row {
	percent := 0.0
	if total > 0 {
		percent = float64(count) / float64(total) * 100
	}
	bar := min(max(int(math.Round(percent)), 0), 100)
	if count > 0 && bar == 0 {
		bar = 1
	}
	return Row{Label: label, Count: count, Percent: percent, BarPercent: bar}
}
