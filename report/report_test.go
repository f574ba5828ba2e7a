package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rmera/gyration"
	"github.com/rmera/gyration/gyrostat"
)

//TestAnalyze runs the whole pipeline on the fixture trajectory and writes
//the text report and the three figures to the test directory.
func TestAnalyze(Te *testing.T) {
	rep, err := Analyze("../test/gyration.txt", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if rep.Series.Len() != 400 {
		Te.Errorf("read %d samples, want 400", rep.Series.Len())
	}
	if rep.Summary.N != 200 || rep.Window.Start() != 200 {
		Te.Errorf("default half-tail window should cover the last 200 samples, got %d from %d", rep.Summary.N, rep.Window.Start())
	}
	//the running average is over the full series, and its last element is
	//the full-series mean, not the window mean
	if len(rep.Running) != rep.Series.Len() {
		Te.Errorf("running average has %d elements, want %d", len(rep.Running), rep.Series.Len())
	}
	full, err := gyrostat.Mean(rep.Series.Values())
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(rep.Running[len(rep.Running)-1]-full) > 1e-12 {
		Te.Error("last running average should equal the full-series mean")
	}
	//the equilibrated tail of this fixture sits around 12.4
	if rep.Summary.Mean < 12.0 || rep.Summary.Mean > 12.8 {
		Te.Errorf("window mean %v outside the expected band around 12.4", rep.Summary.Mean)
	}
	if rep.Summary.CILow >= rep.Summary.Mean || rep.Summary.CIHigh <= rep.Summary.Mean {
		Te.Errorf("CI [%v, %v] should bracket the mean %v", rep.Summary.CILow, rep.Summary.CIHigh, rep.Summary.Mean)
	}
	var b bytes.Buffer
	if err := rep.WriteText(&b); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(b.String(), "Computed g-factor") || !strings.Contains(b.String(), "excellent") {
		Te.Errorf("report text missing expected content:\n%s", b.String())
	}
	fmt.Println(b.String())
	if err := rep.SaveText("../test/g_factor_results.txt"); err != nil {
		Te.Error(err)
	}
	if err := rep.SavePlots("../test"); err != nil {
		Te.Error(err)
	}
}

//TestAnalyzeMissing: a nonexistent input fails with NotFoundError and
//produces no artifacts, because a Report is never assembled.
func TestAnalyzeMissing(Te *testing.T) {
	rep, err := Analyze("../test/no_such_file.txt", nil)
	if err == nil {
		Te.Fatal("analyzing a nonexistent file should fail")
	}
	if _, ok := err.(*gyration.NotFoundError); !ok {
		Te.Fatalf("expected a NotFoundError, got %T: %v", err, err)
	}
	if rep != nil {
		Te.Error("no Report should be returned on failure")
	}
}

//TestAnalyzeOneRow: the half-tail policy on a single-row table must fail
//explicitly.
func TestAnalyzeOneRow(Te *testing.T) {
	_, err := Analyze("../test/short.txt", nil)
	if err == nil {
		Te.Fatal("half-tail on a 1-row table should fail")
	}
	if _, ok := err.(*gyration.InsufficientDataError); !ok {
		Te.Fatalf("expected an InsufficientDataError, got %T: %v", err, err)
	}
}

//TestAnalyzeSeriesScenario is the constant-series scenario: full-series
//mean 10, std 0, min = max = 10; half-tail gives the same mean.
func TestAnalyzeSeriesScenario(Te *testing.T) {
	S := gyration.NewSeries([]float64{0, 1, 2, 3}, []float64{10, 10, 10, 10})
	opts := DefaultOptions()
	opts.Policy = gyration.FullSeries
	rep, err := AnalyzeSeries(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	s := rep.Summary
	if s.Mean != 10 || s.Std != 0 || s.Min != 10 || s.Max != 10 || s.N != 4 {
		Te.Errorf("full-series summary: %+v", s)
	}
	opts.Policy = gyration.HalfTail
	rep, err = AnalyzeSeries(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if rep.Summary.Mean != 10 || rep.Summary.N != 2 {
		Te.Errorf("half-tail summary: %+v", rep.Summary)
	}
}
