package gyrostat

import (
	"fmt"
	"math"
	"testing"

	"github.com/rmera/gyration"
)

//TestSummarizeConstant: the population standard deviation of identical
//values is exactly 0, and the confidence interval collapses onto the mean.
func TestSummarizeConstant(Te *testing.T) {
	s, err := Summarize([]float64{10, 10, 10, 10}, DefaultLevel)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Mean != 10 || s.Std != 0 || s.Min != 10 || s.Max != 10 || s.N != 4 {
		Te.Errorf("constant series: %+v", s)
	}
	if s.CILow != 10 || s.CIHigh != 10 {
		Te.Errorf("CI of a constant series should collapse to the mean, got [%v, %v]", s.CILow, s.CIHigh)
	}
}

func TestSummarize(Te *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	s, err := Summarize(vals, 0.95)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Mean != 5.5 {
		Te.Errorf("mean %v, want 5.5", s.Mean)
	}
	//population std: sqrt(8.25)
	if math.Abs(s.Std-math.Sqrt(8.25)) > 1e-12 {
		Te.Errorf("population std %v, want sqrt(8.25)", s.Std)
	}
	if s.Min != 1 || s.Max != 10 {
		Te.Errorf("extrema [%v, %v], want [1, 10]", s.Min, s.Max)
	}
	//the interval must be symmetric around the mean, and its half-width
	//must sit between the normal z=1.96 scale and a loose upper bound,
	//since t(9) is a bit over 2.26
	se := s.Std / math.Sqrt(10)
	half := s.CIHigh - s.Mean
	if math.Abs((s.Mean-s.CILow)-half) > 1e-12 {
		Te.Errorf("CI not symmetric: [%v, %v] around %v", s.CILow, s.CIHigh, s.Mean)
	}
	if half < 1.96*se || half > 2.5*se {
		Te.Errorf("CI half-width %v outside the t(9) plausible range, se=%v", half, se)
	}
	fmt.Printf("mean %.4f +/- %.4f, 95%% CI [%.4f, %.4f]\n", s.Mean, s.Std, s.CILow, s.CIHigh)
}

func TestSummarizeInsufficient(Te *testing.T) {
	for _, vals := range [][]float64{nil, {12.3}} {
		_, err := Summarize(vals, DefaultLevel)
		if err == nil {
			Te.Fatalf("%d samples should not summarize", len(vals))
		}
		if _, ok := err.(*gyration.InsufficientDataError); !ok {
			Te.Fatalf("expected an InsufficientDataError, got %T: %v", err, err)
		}
	}
}

func TestSummarizeBadLevel(Te *testing.T) {
	for _, level := range []float64{0, 1, -0.5, 1.2, math.NaN()} {
		_, err := Summarize([]float64{1, 2, 3}, level)
		if _, ok := err.(*gyration.ConfigurationError); !ok {
			Te.Fatalf("level %v: expected a ConfigurationError, got %T: %v", level, err, err)
		}
	}
}

func TestMean(Te *testing.T) {
	m, err := Mean([]float64{12.5})
	if err != nil || m != 12.5 {
		Te.Errorf("single-sample mean: %v, %v", m, err)
	}
	if _, err := Mean(nil); err == nil {
		Te.Error("mean of an empty slice should fail")
	}
}

//TestRunningMean checks the cumulative-average sequence: element 0 is the
//first value, and the last element is the full mean, for every length down
//to 1.
func TestRunningMean(Te *testing.T) {
	vals := []float64{9.2, 10.1, 10.8, 11.5, 12.0, 12.2, 12.3}
	for n := 1; n <= len(vals); n++ {
		r := RunningMean(vals[:n])
		if len(r) != n {
			Te.Fatalf("N=%d: running mean has %d elements", n, len(r))
		}
		if r[0] != vals[0] {
			Te.Errorf("N=%d: first element %v, want %v", n, r[0], vals[0])
		}
		mean, err := Mean(vals[:n])
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(r[n-1]-mean) > 1e-12 {
			Te.Errorf("N=%d: last running mean %v, full mean %v", n, r[n-1], mean)
		}
	}
	if len(RunningMean(nil)) != 0 {
		Te.Error("running mean of an empty slice should be empty")
	}
}

//TestRunningMeanReuse checks the destination-slice convention.
func TestRunningMeanReuse(Te *testing.T) {
	vals := []float64{1, 2, 3, 4}
	dst := make([]float64, 10)
	r := RunningMean(vals, dst)
	if len(r) != 4 || &r[0] != &dst[0] {
		Te.Error("a big enough dst should be reused")
	}
	small := make([]float64, 2)
	r = RunningMean(vals, small)
	if len(r) != 4 {
		Te.Error("a too-small dst should be replaced by a fresh slice")
	}
}
