package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"KZG-Commitment/curve"
	"KZG-Commitment/field"
	"KZG-Commitment/kzg"
	"KZG-Commitment/poly"
	"KZG-Commitment/prof"
)

type sweepRow struct {
	Degree      int     `json:"degree"`
	Trials      int     `json:"trials"`
	SetupUS     float64 `json:"setup_us"`
	CommitUS    float64 `json:"commit_us"`
	OpenUS      float64 `json:"open_us"`
	VerifyUS    float64 `json:"verify_us"`
	RoundTripOK bool    `json:"round_trip_ok"`
}

func main() {
	var (
		maxDegree = flag.Int("maxdegree", 8, "largest SRS degree to sweep")
		trials    = flag.Int("trials", 16, "timing trials per degree")
		outHTML   = flag.String("out", "kzg_sweep.html", "output HTML chart (empty = skip)")
		jsonPath  = flag.String("jsonl", "", "write jsonl results to path")
	)
	flag.Parse()

	if *maxDegree < 1 {
		log.Fatalf("maxdegree must be >= 1, got %d", *maxDegree)
	}
	if *trials < 1 {
		log.Fatalf("trials must be >= 1, got %d", *trials)
	}

	c, err := curve.Toy101()
	if err != nil {
		log.Fatalf("curve setup: %v", err)
	}
	log.Printf("[kzg-sweep] sweeping degrees 1..%d, %d trials each", *maxDegree, *trials)

	var jsonEnc *json.Encoder
	if *jsonPath != "" {
		f, err := os.Create(*jsonPath)
		if err != nil {
			log.Fatalf("create jsonl: %v", err)
		}
		defer f.Close()
		jsonEnc = json.NewEncoder(f)
	}

	rows := make([]sweepRow, 0, *maxDegree)
	for d := 1; d <= *maxDegree; d++ {
		row, err := runDegree(c, d, *trials)
		if err != nil {
			log.Fatalf("degree %d: %v", d, err)
		}
		log.Printf("[kzg-sweep] degree=%d setup=%.1fus commit=%.1fus open=%.1fus verify=%.1fus",
			row.Degree, row.SetupUS, row.CommitUS, row.OpenUS, row.VerifyUS)
		if jsonEnc != nil {
			if err := jsonEnc.Encode(row); err != nil {
				log.Fatalf("write jsonl: %v", err)
			}
		}
		rows = append(rows, row)
	}

	if *outHTML != "" {
		if err := renderChart(rows, *outHTML); err != nil {
			log.Fatalf("render chart: %v", err)
		}
		log.Printf("[kzg-sweep] wrote %s", *outHTML)
	}

	fmt.Println("[kzg-sweep] done")
}

// runDegree times the full protocol at a fixed SRS degree, averaging over
// trials. Each trial commits to a polynomial interpolated through trial-indexed
// samples so the MSM sees dense coefficient vectors rather than sparse ones.
func runDegree(c *curve.Curve, degree, trials int) (sweepRow, error) {
	row := sweepRow{Degree: degree, Trials: trials, RoundTripOK: true}

	for trial := 0; trial < trials; trial++ {
		prng, err := utils.NewPRNG()
		if err != nil {
			return row, err
		}

		start := time.Now()
		srs, err := kzg.Setup(c, degree, prng)
		if err != nil {
			return row, err
		}
		prof.Track(start, "setup")

		p, err := densePolynomial(c.Modulus(), degree, uint64(trial))
		if err != nil {
			return row, err
		}
		z, err := field.New(uint64(3+trial)%c.Modulus(), c.Modulus())
		if err != nil {
			return row, err
		}

		start = time.Now()
		com, err := srs.Commit(p)
		if err != nil {
			return row, err
		}
		prof.Track(start, "commit")

		start = time.Now()
		y, proof, err := srs.Open(p, z)
		if err != nil {
			return row, err
		}
		prof.Track(start, "open")

		start = time.Now()
		ok, err := srs.Verify(com, z, y, proof)
		if err != nil {
			return row, err
		}
		prof.Track(start, "verify")
		if !ok {
			row.RoundTripOK = false
		}
	}

	totals := prof.Totals(prof.SnapshotAndReset())
	per := float64(trials)
	row.SetupUS = float64(totals["setup"].Microseconds()) / per
	row.CommitUS = float64(totals["commit"].Microseconds()) / per
	row.OpenUS = float64(totals["open"].Microseconds()) / per
	row.VerifyUS = float64(totals["verify"].Microseconds()) / per
	return row, nil
}

// densePolynomial interpolates through degree+1 samples derived from the trial
// index, yielding a full-length coefficient vector of the requested degree.
func densePolynomial(modulus uint64, degree int, salt uint64) (poly.Polynomial, error) {
	samples := make([]poly.Sample, degree+1)
	for i := range samples {
		x, err := field.New(uint64(i), modulus)
		if err != nil {
			return poly.Polynomial{}, err
		}
		y, err := field.New((salt+uint64(i)*uint64(i)+1)%modulus, modulus)
		if err != nil {
			return poly.Polynomial{}, err
		}
		samples[i] = poly.Sample{X: x, Y: y}
	}
	return poly.LagrangeInterpolate(samples)
}

func renderChart(rows []sweepRow, outPath string) error {
	page := components.NewPage().SetPageTitle("KZG Timing Sweep")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Protocol timing vs. SRS degree",
			Subtitle: "toy curve over F_101, averaged per trial",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "SRS degree"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "time (us)", Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)

	xAxis := make([]string, len(rows))
	setup := make([]opts.LineData, len(rows))
	commit := make([]opts.LineData, len(rows))
	open := make([]opts.LineData, len(rows))
	verify := make([]opts.LineData, len(rows))
	for i, r := range rows {
		xAxis[i] = fmt.Sprintf("%d", r.Degree)
		setup[i] = opts.LineData{Value: r.SetupUS}
		commit[i] = opts.LineData{Value: r.CommitUS}
		open[i] = opts.LineData{Value: r.OpenUS}
		verify[i] = opts.LineData{Value: r.VerifyUS}
	}

	line.SetXAxis(xAxis).
		AddSeries("setup", setup).
		AddSeries("commit", commit).
		AddSeries("open", open).
		AddSeries("verify", verify)

	page.AddCharts(line)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
