//Package gyrostat computes summary statistics for radius-of-gyration series:
//point estimate, dispersion, Student-t confidence interval and the running
//average used as a convergence diagnostic. Everything here is a pure
//function of its input slice.
package gyrostat

import (
	"math"

	"github.com/rmera/gyration"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

//DefaultLevel is the two-sided confidence level used when nothing else is
//requested.
const DefaultLevel = 0.95

//Summary holds the statistics of one selection window. It is computed once
//and never mutated.
type Summary struct {
	N      int     //number of samples
	Mean   float64 //arithmetic mean
	Std    float64 //population standard deviation (denominator N)
	Min    float64
	Max    float64
	Level  float64 //confidence level of the interval below, e.g. 0.95
	CILow  float64
	CIHigh float64
}

//Summarize computes the Summary of vals at the given confidence level. The
//standard deviation is the population one (denominator N, not N-1), and the
//confidence interval is centered at the mean with scale Std/sqrt(N), using
//the Student-t quantile for N-1 degrees of freedom. It returns an
//InsufficientDataError for fewer than 2 samples (with 1 sample the interval
//would need a non-positive number of degrees of freedom) and a
//ConfigurationError for a confidence level outside (0,1).
func Summarize(vals []float64, level float64) (*Summary, error) {
	n := len(vals)
	if n < 2 {
		return nil, gyration.NewInsufficientData("mean, standard deviation and confidence interval", n, "gyrostat.Summarize")
	}
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return nil, gyration.NewConfiguration("confidence level must be in (0,1)", "gyrostat.Summarize")
	}
	mean := stat.Mean(vals, nil)
	std := stat.PopStdDev(vals, nil)
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	//two-sided: half of (1-level) in each tail
	q := t.Quantile(0.5 + level/2)
	half := q * std / math.Sqrt(float64(n))
	return &Summary{
		N:      n,
		Mean:   mean,
		Std:    std,
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Level:  level,
		CILow:  mean - half,
		CIHigh: mean + half,
	}, nil
}

//Mean returns the arithmetic mean of vals. Unlike Summarize it works on a
//single sample, but an empty slice is still an InsufficientDataError.
func Mean(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, gyration.NewInsufficientData("mean", 0, "gyrostat.Mean")
	}
	return stat.Mean(vals, nil), nil
}

//RunningMean returns the cumulative averages of vals: element i of the
//returned slice is the mean of vals[0..i], so element 0 is vals[0] and the
//last element is the mean of the whole slice. If a dst slice with enough
//capacity is given it is reused, otherwise a new slice is allocated. An
//empty vals yields an empty result.
func RunningMean(vals []float64, dst ...[]float64) []float64 {
	var r []float64
	if len(dst) > 0 && cap(dst[0]) >= len(vals) {
		r = dst[0][:len(vals)]
	} else {
		r = make([]float64, len(vals))
	}
	var sum float64
	for i, v := range vals {
		sum += v
		r[i] = sum / float64(i+1)
	}
	return r
}
