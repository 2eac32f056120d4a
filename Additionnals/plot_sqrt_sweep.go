package main

// plot_sqrt_sweep renders the JSONL output of cmd/sqrt_sweep as an HTML
// page: square-root timing against prime size, split by 2-adicity, and
// residue ratio against prime size as a sanity view (should hover at 50%
// plus the zero residue).

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type SweepRow struct {
	Prime      string  `json:"Prime"`
	Bits       int     `json:"Bits"`
	Adicity    int     `json:"Adicity"`
	Samples    int     `json:"Samples"`
	Residues   int     `json:"Residues"`
	AvgMicros  float64 `json:"AvgMicros"`
	MaxMicros  float64 `json:"MaxMicros"`
	FastPath   bool    `json:"FastPath"`
	ResiduePct float64 `json:"ResiduePct"`
}

func readRows(path string) ([]SweepRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows []SweepRow
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var r SweepRow
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("bad row %q: %w", string(line), err)
		}
		rows = append(rows, r)
	}
	return rows, sc.Err()
}

func timingChart(rows []SweepRow) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Tonelli–Shanks timing",
			Subtitle: "avg µs per root vs prime bits, one series per descent depth class",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "prime bits", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "avg µs", Type: "value"}),
	)

	bySeries := map[string][]opts.ScatterData{}
	for _, r := range rows {
		key := "deep descent (s > 8)"
		switch {
		case r.FastPath:
			key = "fast path (p ≡ 3 mod 4)"
		case r.Adicity <= 8:
			key = "shallow descent (s ≤ 8)"
		}
		bySeries[key] = append(bySeries[key], opts.ScatterData{
			Value: []interface{}{r.Bits, r.AvgMicros, r.Adicity, r.Prime},
		})
	}
	names := make([]string, 0, len(bySeries))
	for name := range bySeries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sc.AddSeries(name, bySeries[name],
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 7}),
		)
	}
	return sc
}

func residueChart(rows []SweepRow) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Residue ratio",
			Subtitle: "% of sampled radicands with a root; ~50% expected for prime moduli",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "prime bits", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "residue %", Type: "value", Min: 0, Max: 100}),
	)
	items := make([]opts.ScatterData, 0, len(rows))
	for _, r := range rows {
		items = append(items, opts.ScatterData{
			Value: []interface{}{r.Bits, r.ResiduePct, r.Prime},
		})
	}
	sc.AddSeries("residue %", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 7}),
	)
	return sc
}

func main() {
	inPath := flag.String("in", "Additionnals/sqrt_sweep.jsonl", "sweep JSONL input")
	outPath := flag.String("out", "Additionnals/sqrt_sweep.html", "HTML output")
	flag.Parse()

	rows, err := readRows(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plot_sqrt_sweep: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "plot_sqrt_sweep: no rows, run cmd/sqrt_sweep first")
		os.Exit(1)
	}

	page := components.NewPage().SetPageTitle("Modular square-root sweep")
	page.AddCharts(timingChart(rows), residueChart(rows))

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plot_sqrt_sweep: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "plot_sqrt_sweep: render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d rows)\n", *outPath, len(rows))
}
